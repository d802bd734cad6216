package pairing

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func adult(id, household string) Participant {
	return Participant{ID: id, HouseholdID: household, Name: id, BirthDate: date(1980, time.June, 1)}
}

func newTestEngine(t *testing.T, cfg Config, seed uint64) *Engine {
	t.Helper()
	e, err := NewEngine(cfg,
		WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		WithClock(func() time.Time { return today }),
	)
	require.NoError(t, err)
	return e
}

// requireValidDrawing checks every drawing property against the eligible roster.
func requireValidDrawing(t *testing.T, eligible []Participant, past History, year int, pairings []Pairing) {
	t.Helper()
	require.Len(t, pairings, len(eligible))

	givers := map[string]int{}
	receivers := map[string]int{}
	for _, p := range pairings {
		givers[p.Giver.ID]++
		receivers[p.Receiver.ID]++
		assert.Equal(t, year, p.Year)
		assert.NotEqual(t, p.Giver.ID, p.Receiver.ID, "self pairing")
		assert.NotEqual(t, p.Giver.HouseholdID, p.Receiver.HouseholdID, "same household %s -> %s", p.Giver.ID, p.Receiver.ID)
		assert.False(t, past.Contains(p.Giver.ID, p.Receiver.ID), "recent repeat %s -> %s", p.Giver.ID, p.Receiver.ID)
	}
	for _, p := range eligible {
		assert.Equal(t, 1, givers[p.ID], "%s should give exactly once", p.ID)
		assert.Equal(t, 1, receivers[p.ID], "%s should receive exactly once", p.ID)
	}
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"zero lookback and age", Config{}, false},
		{"negative lookback", Config{YearsLookback: -1, MinimumAge: 18}, true},
		{"negative age", Config{YearsLookback: 3, MinimumAge: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(tt.cfg)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cfg, e.Config())
		})
	}
}

func TestNowFollowsClock(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), 1)
	assert.Equal(t, today, e.Now())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3, cfg.YearsLookback)
	assert.Equal(t, 18, cfg.MinimumAge)
}

func TestGenerate_ThreeHouseholds(t *testing.T) {
	roster := []Participant{adult("A", "1"), adult("B", "2"), adult("C", "3")}

	for seed := uint64(0); seed < 200; seed++ {
		e := newTestEngine(t, DefaultConfig(), seed)
		res, err := e.Generate(roster, nil, 2025)
		require.NoError(t, err, "seed %d", seed)
		requireValidDrawing(t, roster, nil, 2025, res.Pairings)
		assert.Equal(t, 3, res.Eligible)
		assert.GreaterOrEqual(t, res.Attempts, 1)
		assert.LessOrEqual(t, res.Attempts, MaxRetries)

		// Three people with no self pairing form a single 3-cycle.
		next := map[string]string{}
		for _, p := range res.Pairings {
			next[p.Giver.ID] = p.Receiver.ID
		}
		assert.Equal(t, "A", next[next[next["A"]]], "seed %d: not a 3-cycle: %v", seed, next)
	}
}

func TestGenerate_Properties(t *testing.T) {
	roster := []Participant{
		adult("ann", "smith"), adult("bob", "smith"), adult("cal", "smith"),
		adult("dee", "jones"), adult("eve", "jones"),
		adult("fay", "brown"), adult("gus", "brown"),
		adult("hal", "green"), adult("ida", "green"),
		{ID: "kid", HouseholdID: "green", Name: "kid", BirthDate: date(2015, time.January, 1)},
	}
	eligible := roster[:9]
	past := Window([]PastPairing{
		{GiverID: "ann", ReceiverID: "dee", Year: 2024},
		{GiverID: "ann", ReceiverID: "fay", Year: 2023},
		{GiverID: "dee", ReceiverID: "ann", Year: 2024},
		{GiverID: "hal", ReceiverID: "bob", Year: 2024},
	}, 3, 2025)

	for seed := uint64(0); seed < 200; seed++ {
		e := newTestEngine(t, DefaultConfig(), seed)
		res, err := e.Generate(roster, past, 2025)
		require.NoError(t, err, "seed %d", seed)
		requireValidDrawing(t, eligible, past, 2025, res.Pairings)
		assert.Equal(t, len(eligible), res.Eligible)
	}
}

func TestGenerate_InsufficientParticipants(t *testing.T) {
	tests := []struct {
		name   string
		roster []Participant
	}{
		{"empty roster", nil},
		{"one adult", []Participant{adult("A", "1")}},
		{"one adult and minors", []Participant{
			adult("A", "1"),
			{ID: "B", HouseholdID: "2", BirthDate: date(2012, time.May, 5)},
			{ID: "C", HouseholdID: "3", BirthDate: date(2010, time.May, 5)},
		}},
		{"missing birth date", []Participant{adult("A", "1"), {ID: "B", HouseholdID: "2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, DefaultConfig(), 1)
			res, err := e.Generate(tt.roster, nil, 2025)
			require.ErrorIs(t, err, ErrInsufficientParticipants)
			assert.Empty(t, res.Pairings)
			assert.Zero(t, res.Attempts)
		})
	}
}

func TestGenerate_SameHouseholdFails(t *testing.T) {
	roster := []Participant{adult("A", "1"), adult("B", "1")}

	e := newTestEngine(t, DefaultConfig(), 7)
	res, err := e.Generate(roster, nil, 2025)
	require.ErrorIs(t, err, ErrGenerationFailed)
	assert.False(t, errors.Is(err, ErrInsufficientParticipants))
	assert.Empty(t, res.Pairings)
	assert.Equal(t, MaxRetries, res.Attempts)
	assert.Equal(t, 2, res.Eligible)
}

func TestGenerate_HistoryForcesAssignment(t *testing.T) {
	// With A->B and B->C blocked the only 3-cycle left is A->C->B->A.
	roster := []Participant{adult("A", "1"), adult("B", "2"), adult("C", "3")}
	past := History{"A": {"B"}, "B": {"C"}}

	for seed := uint64(0); seed < 50; seed++ {
		e := newTestEngine(t, DefaultConfig(), seed)
		res, err := e.Generate(roster, past, 2025)
		require.NoError(t, err)

		got := map[string]string{}
		for _, p := range res.Pairings {
			got[p.Giver.ID] = p.Receiver.ID
		}
		assert.Equal(t, map[string]string{"A": "C", "C": "B", "B": "A"}, got)
	}
}

func TestGenerate_LookbackFencepost(t *testing.T) {
	roster := []Participant{adult("A", "1"), adult("B", "2")}

	tests := []struct {
		name        string
		pastYear    int
		wantBlocked bool
	}{
		{"boundary year may repeat", 2022, false},
		{"year after boundary is recent", 2023, true},
		{"previous year is recent", 2024, true},
		{"target year is ignored", 2025, false},
		{"older than window", 2019, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			past := Window([]PastPairing{{GiverID: "A", ReceiverID: "B", Year: tt.pastYear}}, 3, 2025)
			e := newTestEngine(t, DefaultConfig(), 3)

			res, err := e.Generate(roster, past, 2025)
			if tt.wantBlocked {
				require.ErrorIs(t, err, ErrGenerationFailed)
				return
			}
			require.NoError(t, err)
			requireValidDrawing(t, roster, past, 2025, res.Pairings)
		})
	}
}

func TestGenerate_AgeBoundary(t *testing.T) {
	tests := []struct {
		name      string
		birthDate time.Time
		eligible  bool
	}{
		{"turns 18 today", date(2007, time.March, 15), true},
		{"turns 18 tomorrow", date(2007, time.March, 16), false},
		{"turned 18 yesterday", date(2007, time.March, 14), true},
		{"same birth year, later month", date(2007, time.December, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := []Participant{
				adult("A", "1"),
				{ID: "B", HouseholdID: "2", BirthDate: tt.birthDate},
			}
			e := newTestEngine(t, DefaultConfig(), 11)

			res, err := e.Generate(roster, nil, 2025)
			if !tt.eligible {
				require.ErrorIs(t, err, ErrInsufficientParticipants)
				assert.Equal(t, 1, res.Eligible)
				return
			}
			require.NoError(t, err)
			assert.Len(t, res.Pairings, 2)
		})
	}
}

func TestGenerate_MinimumAgeZeroAdmitsEveryone(t *testing.T) {
	roster := []Participant{
		{ID: "A", HouseholdID: "1", BirthDate: date(2024, time.January, 1)},
		{ID: "B", HouseholdID: "2", BirthDate: date(2020, time.January, 1)},
	}
	e := newTestEngine(t, Config{YearsLookback: 3, MinimumAge: 0}, 5)

	res, err := e.Generate(roster, nil, 2025)
	require.NoError(t, err)
	assert.Len(t, res.Pairings, 2)
}

func TestGenerate_DuplicateParticipant(t *testing.T) {
	roster := []Participant{adult("A", "1"), adult("B", "2"), adult("A", "3")}
	e := newTestEngine(t, DefaultConfig(), 1)

	_, err := e.Generate(roster, nil, 2025)
	require.ErrorIs(t, err, ErrDuplicateParticipant)
}

func TestGenerate_SeedIsDeterministic(t *testing.T) {
	roster := []Participant{
		adult("A", "1"), adult("B", "2"), adult("C", "3"), adult("D", "4"), adult("E", "5"),
	}

	first, err := newTestEngine(t, DefaultConfig(), 42).Generate(roster, nil, 2025)
	require.NoError(t, err)
	second, err := newTestEngine(t, DefaultConfig(), 42).Generate(roster, nil, 2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_DoesNotMutateRoster(t *testing.T) {
	roster := []Participant{adult("A", "1"), adult("B", "2"), adult("C", "3"), adult("D", "4")}
	before := append([]Participant(nil), roster...)

	_, err := newTestEngine(t, DefaultConfig(), 9).Generate(roster, nil, 2025)
	require.NoError(t, err)
	assert.Equal(t, before, roster)
}

func TestGenerate_DefaultSourceConcurrent(t *testing.T) {
	e, err := NewEngine(DefaultConfig(), WithClock(func() time.Time { return today }))
	require.NoError(t, err)
	roster := []Participant{adult("A", "1"), adult("B", "2"), adult("C", "3"), adult("D", "4")}

	errs := make(chan error, 16)
	for i := 0; i < cap(errs); i++ {
		go func() {
			_, err := e.Generate(roster, nil, 2025)
			errs <- err
		}()
	}
	for i := 0; i < cap(errs); i++ {
		require.NoError(t, <-errs)
	}
}
