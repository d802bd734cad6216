package pairing

// PastPairing is a finalized assignment from an earlier drawing.
type PastPairing struct {
	GiverID    string
	ReceiverID string
	Year       int
}

// History maps a giver id to the receivers they drew inside the lookback
// window. Receivers may repeat; the engine only asks whether one is present.
type History map[string][]string

// Window restricts records to the lookback window for year and indexes them
// by giver. A record counts as recent when year-lookback < r.Year < year: the
// target year itself and the boundary year year-lookback are both outside.
func Window(records []PastPairing, lookback, year int) History {
	boundary := year - lookback
	h := make(History)
	for _, r := range records {
		if r.Year <= boundary || r.Year >= year {
			continue
		}
		h[r.GiverID] = append(h[r.GiverID], r.ReceiverID)
	}
	return h
}

// Contains reports whether giver drew receiver in the window.
func (h History) Contains(giverID, receiverID string) bool {
	for _, id := range h[giverID] {
		if id == receiverID {
			return true
		}
	}
	return false
}

// recentIndex is History flattened into sets for constant-time lookups
// inside the matching loop.
type recentIndex map[string]map[string]struct{}

func (h History) index() recentIndex {
	idx := make(recentIndex, len(h))
	for giver, receivers := range h {
		set := make(map[string]struct{}, len(receivers))
		for _, r := range receivers {
			set[r] = struct{}{}
		}
		idx[giver] = set
	}
	return idx
}

func (idx recentIndex) has(giverID, receiverID string) bool {
	_, ok := idx[giverID][receiverID]
	return ok
}
