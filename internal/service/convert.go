package service

import (
	"github.com/mmynk/giftdraw/internal/models"
	"github.com/mmynk/giftdraw/internal/pairing"
	"github.com/mmynk/giftdraw/pkg/api"
)

func householdToAPI(h *models.Household) *api.Household {
	return &api.Household{
		ID:        h.ID,
		Name:      h.Name,
		CreatedAt: h.CreatedAt,
	}
}

func participantToAPI(p *models.Participant) *api.Participant {
	return &api.Participant{
		ID:          p.ID,
		HouseholdID: p.HouseholdID,
		Name:        p.Name,
		BirthDate:   p.BirthDate,
		CreatedAt:   p.CreatedAt,
	}
}

func drawingToAPI(d *models.Drawing, draft bool) *api.Drawing {
	out := &api.Drawing{
		Year:     d.Year,
		Pairings: make([]*api.Pairing, 0, len(d.Pairings)),
		IsDraft:  draft,
	}
	for i := range d.Pairings {
		p := &d.Pairings[i]
		out.Pairings = append(out.Pairings, &api.Pairing{
			Giver:    participantToAPI(&p.Giver),
			Receiver: participantToAPI(&p.Receiver),
			Year:     p.Year,
		})
	}
	return out
}

// rosterEntry converts a stored participant to the engine's view. An
// unparseable birth date leaves BirthDate zero, which the engine treats as
// ineligible.
func rosterEntry(p *models.Participant) (pairing.Participant, error) {
	entry := pairing.Participant{
		ID:          p.ID,
		HouseholdID: p.HouseholdID,
		Name:        p.Name,
	}
	birth, err := models.ParseBirthDate(p.BirthDate)
	if err != nil {
		return entry, err
	}
	entry.BirthDate = birth
	return entry, nil
}

// resolvePairings maps engine pairings back to the stored participants in byID.
func resolvePairings(year int, pairings []pairing.Pairing, byID map[string]*models.Participant) *models.Drawing {
	d := &models.Drawing{
		Year:     year,
		Pairings: make([]models.Pairing, 0, len(pairings)),
	}
	for _, p := range pairings {
		d.Pairings = append(d.Pairings, models.Pairing{
			Giver:    *byID[p.Giver.ID],
			Receiver: *byID[p.Receiver.ID],
			Year:     p.Year,
		})
	}
	return d
}
