package models

// Household groups participants who live together. Members of the same
// household are never paired with each other.
type Household struct {
	// ID is the unique identifier for the household (UUID format).
	ID string

	// Name is the display name (e.g., "The Smiths").
	Name string

	// CreatedAt is the Unix timestamp when the household was created.
	CreatedAt int64
}
