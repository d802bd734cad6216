package pairing

import "time"

// Age returns the number of whole years between birth and now using calendar
// arithmetic: the year only counts once the month and day have been reached.
// A person born on 29 February turns a year older on 1 March in common years.
func Age(birth, now time.Time) int {
	by, bm, bd := birth.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
