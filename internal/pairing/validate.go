package pairing

import (
	"errors"
	"fmt"
)

// ErrInvalidPairing is returned by Validate for a pairing set that breaks a
// drawing rule.
var ErrInvalidPairing = errors.New("invalid pairing")

// Validate checks a hand-submitted pairing set against the drawing rules: every
// giver gives once, every receiver receives once, the givers and receivers are
// the same people, and no pairing is a self, same-household or recent-repeat
// assignment. Age is not checked here; ValidateDrawing checks the set against a
// roster.
func Validate(pairings []Pairing, past History) error {
	if len(pairings) < MinParticipants {
		return fmt.Errorf("%w: need at least %d pairings, got %d", ErrInvalidPairing, MinParticipants, len(pairings))
	}

	givers := make(map[string]struct{}, len(pairings))
	receivers := make(map[string]struct{}, len(pairings))

	for _, p := range pairings {
		if _, dup := givers[p.Giver.ID]; dup {
			return fmt.Errorf("%w: %s gives more than once", ErrInvalidPairing, p.Giver.ID)
		}
		givers[p.Giver.ID] = struct{}{}

		if _, dup := receivers[p.Receiver.ID]; dup {
			return fmt.Errorf("%w: %s receives more than once", ErrInvalidPairing, p.Receiver.ID)
		}
		receivers[p.Receiver.ID] = struct{}{}

		switch {
		case p.Giver.ID == p.Receiver.ID:
			return fmt.Errorf("%w: %s gives to themselves", ErrInvalidPairing, p.Giver.ID)
		case p.Giver.HouseholdID == p.Receiver.HouseholdID:
			return fmt.Errorf("%w: %s and %s share a household", ErrInvalidPairing, p.Giver.ID, p.Receiver.ID)
		case past.Contains(p.Giver.ID, p.Receiver.ID):
			return fmt.Errorf("%w: %s drew %s within the lookback window", ErrInvalidPairing, p.Giver.ID, p.Receiver.ID)
		}
	}

	for id := range givers {
		if _, ok := receivers[id]; !ok {
			return fmt.Errorf("%w: %s gives but never receives", ErrInvalidPairing, id)
		}
	}
	return nil
}

// ValidateDrawing runs Validate and then checks that the givers are exactly the
// eligible members of roster, so a finalized drawing covers everyone a
// generated one would.
func (e *Engine) ValidateDrawing(pairings []Pairing, roster []Participant, past History) error {
	if err := checkUnique(roster); err != nil {
		return err
	}
	if err := Validate(pairings, past); err != nil {
		return err
	}

	eligible := make(map[string]struct{}, len(roster))
	for _, p := range e.Eligible(roster) {
		eligible[p.ID] = struct{}{}
	}
	for _, p := range pairings {
		if _, ok := eligible[p.Giver.ID]; !ok {
			return fmt.Errorf("%w: %s is not an eligible participant", ErrInvalidPairing, p.Giver.ID)
		}
	}
	if len(pairings) != len(eligible) {
		return fmt.Errorf("%w: %d of %d eligible participants paired", ErrInvalidPairing, len(pairings), len(eligible))
	}
	return nil
}
