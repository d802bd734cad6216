package api

// Household is a group of participants who never draw each other.
type Household struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// Participant is a roster member.
type Participant struct {
	ID          string `json:"id"`
	HouseholdID string `json:"household_id"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD
	CreatedAt   int64  `json:"created_at"`
}

// Pairing is one giver -> receiver assignment.
type Pairing struct {
	Giver    *Participant `json:"giver"`
	Receiver *Participant `json:"receiver"`
	Year     int          `json:"year"`
}

// Drawing is the pairing set of one year, either a draft or finalized.
type Drawing struct {
	Year     int        `json:"year"`
	Pairings []*Pairing `json:"pairings"`
	IsDraft  bool       `json:"is_draft"`
}

// Settings exposes the engine configuration to the admin UI.
type Settings struct {
	YearsLookback int `json:"years_lookback"`
	MinimumAge    int `json:"minimum_age"`
	CurrentYear   int `json:"current_year"`
}

// User is a signed-in account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
	CreatedAt   int64  `json:"created_at,omitempty"`
}
