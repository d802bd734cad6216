package models

// Pairing is one finalized giver -> receiver assignment.
type Pairing struct {
	Giver    Participant
	Receiver Participant
	Year     int
}

// Drawing is the authoritative set of pairings for one year.
type Drawing struct {
	Year     int
	Pairings []Pairing
}
