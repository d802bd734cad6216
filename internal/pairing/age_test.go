package pairing

import (
	"testing"
	"time"
)

func TestAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  int
	}{
		{"day before birthday", date(2007, time.March, 15), date(2025, time.March, 14), 17},
		{"on birthday", date(2007, time.March, 15), date(2025, time.March, 15), 18},
		{"month before birthday", date(2007, time.April, 1), date(2025, time.March, 31), 17},
		{"leap day, common year Feb 28", date(2008, time.February, 29), date(2026, time.February, 28), 17},
		{"leap day, common year Mar 1", date(2008, time.February, 29), date(2026, time.March, 1), 18},
		{"born today", date(2025, time.March, 15), date(2025, time.March, 15), 0},
		{"birth date in the future", date(2030, time.January, 1), date(2025, time.March, 15), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(tt.birth, tt.now); got != tt.want {
				t.Errorf("Age(%s, %s) = %d, want %d",
					tt.birth.Format(time.DateOnly), tt.now.Format(time.DateOnly), got, tt.want)
			}
		})
	}
}
