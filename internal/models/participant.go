package models

import "time"

// BirthDateLayout is the wire and storage format of Participant.BirthDate.
const BirthDateLayout = time.DateOnly

// Participant is a person who may take part in a drawing.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// HouseholdID references the participant's household.
	HouseholdID string

	// Name is the display name.
	Name string

	// BirthDate is the calendar birth date in YYYY-MM-DD form.
	// Only participants old enough on the day of the drawing take part.
	BirthDate string

	// CreatedAt is the Unix timestamp when the participant was added.
	CreatedAt int64
}

// ParseBirthDate parses a YYYY-MM-DD birth date.
func ParseBirthDate(s string) (time.Time, error) {
	return time.Parse(BirthDateLayout, s)
}
