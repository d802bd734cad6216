// Package pairing generates yearly gift-giving assignments.
//
// The engine filters a roster down to adult participants and then builds a
// perfect giver/receiver matching by randomized greedy search: each attempt
// shuffles the givers and the receiver pool independently, hands every giver
// the first acceptable receiver left in the pool, and abandons the attempt as
// soon as some giver has nobody left to draw. Up to MaxRetries attempts are
// made before the engine gives up with ErrGenerationFailed.
//
// The search is deliberately incomplete. It can report ErrGenerationFailed for
// a roster that does have a valid matching; callers surface that to a human who
// redraws or changes the data.
package pairing

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	// MaxRetries bounds the number of randomized attempts per Generate call.
	MaxRetries = 100

	// MinParticipants is the smallest eligible roster a drawing can be made from.
	MinParticipants = 2

	// DefaultYearsLookback is how many prior years count as "recent".
	DefaultYearsLookback = 3

	// DefaultMinimumAge is the age in whole years required to take part.
	DefaultMinimumAge = 18
)

var (
	// ErrInsufficientParticipants is returned when fewer than MinParticipants
	// participants are old enough to take part. No attempt is made.
	ErrInsufficientParticipants = errors.New("insufficient eligible participants")

	// ErrGenerationFailed is returned when every attempt dead-ended. The data
	// may be fine; drawing again can succeed.
	ErrGenerationFailed = errors.New("could not generate valid pairings with the current constraints")

	// ErrDuplicateParticipant is returned when the roster lists the same id twice.
	ErrDuplicateParticipant = errors.New("duplicate participant in roster")

	// ErrInvalidConfig is returned by NewEngine for negative settings.
	ErrInvalidConfig = errors.New("invalid pairing config")
)

// Participant is one member of the roster as seen by the engine.
type Participant struct {
	ID          string
	HouseholdID string
	Name        string
	BirthDate   time.Time
}

// Pairing assigns Giver to buy a gift for Receiver in Year.
type Pairing struct {
	Giver    Participant
	Receiver Participant
	Year     int
}

// Config holds the settings fixed at engine construction.
type Config struct {
	// YearsLookback is how many years before the target year a prior
	// pairing still blocks a repeat. Zero disables repeat avoidance.
	YearsLookback int

	// MinimumAge is the age in whole years, as of today, needed to take part.
	MinimumAge int
}

// DefaultConfig returns the stock settings: three years of lookback, adults only.
func DefaultConfig() Config {
	return Config{
		YearsLookback: DefaultYearsLookback,
		MinimumAge:    DefaultMinimumAge,
	}
}

// Result is a successful drawing.
type Result struct {
	// Pairings covers every eligible participant once as giver and once as receiver.
	Pairings []Pairing

	// Attempts is how many randomized passes were needed (1..MaxRetries).
	Attempts int

	// Eligible is the number of participants that passed the age filter.
	Eligible int
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand makes the engine draw from r instead of the global source.
// A *rand.Rand is not safe for concurrent use, so an engine built with this
// option must not be shared between goroutines.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.shuffle = r.Shuffle
	}
}

// WithClock sets the function used to find "today" for age checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine generates pairings. It holds no mutable state; with the default
// random source it is safe for concurrent use.
type Engine struct {
	cfg     Config
	shuffle func(n int, swap func(i, j int))
	now     func() time.Time
}

// NewEngine builds an engine with the given settings.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.YearsLookback < 0 {
		return nil, fmt.Errorf("%w: years lookback must be >= 0, got %d", ErrInvalidConfig, cfg.YearsLookback)
	}
	if cfg.MinimumAge < 0 {
		return nil, fmt.Errorf("%w: minimum age must be >= 0, got %d", ErrInvalidConfig, cfg.MinimumAge)
	}

	e := &Engine{
		cfg:     cfg,
		shuffle: rand.Shuffle,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine's settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// Now returns the engine's idea of today, the date ages are measured on.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Eligible returns the participants old enough to take part, in roster order.
func (e *Engine) Eligible(participants []Participant) []Participant {
	today := e.now()
	eligible := make([]Participant, 0, len(participants))
	for _, p := range participants {
		if p.BirthDate.IsZero() {
			continue
		}
		if Age(p.BirthDate, today) >= e.cfg.MinimumAge {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// Generate draws pairings for year.
//
// past must already be restricted to the lookback window ending before year
// (see Window and the storage layer's PastPairings). Generate returns
// ErrInsufficientParticipants when fewer than two participants are eligible
// and ErrGenerationFailed when MaxRetries attempts all dead-end.
func (e *Engine) Generate(participants []Participant, past History, year int) (Result, error) {
	if err := checkUnique(participants); err != nil {
		return Result{}, err
	}

	eligible := e.Eligible(participants)
	if len(eligible) < MinParticipants {
		return Result{Eligible: len(eligible)}, ErrInsufficientParticipants
	}

	recent := past.index()
	for attempt := 1; attempt <= MaxRetries; attempt++ {
		if pairings, ok := e.attempt(eligible, recent, year); ok {
			return Result{
				Pairings: pairings,
				Attempts: attempt,
				Eligible: len(eligible),
			}, nil
		}
	}

	return Result{Attempts: MaxRetries, Eligible: len(eligible)}, ErrGenerationFailed
}

// attempt runs one shuffled greedy pass. It reports false as soon as a giver
// has no acceptable receiver left.
func (e *Engine) attempt(eligible []Participant, recent recentIndex, year int) ([]Pairing, bool) {
	givers := shuffled(eligible, e.shuffle)
	pool := shuffled(eligible, e.shuffle)

	pairings := make([]Pairing, 0, len(givers))
	for _, giver := range givers {
		match := -1
		for i, receiver := range pool {
			if allowed(giver, receiver, recent) {
				match = i
				break
			}
		}
		if match < 0 {
			return nil, false
		}

		pairings = append(pairings, Pairing{Giver: giver, Receiver: pool[match], Year: year})
		pool = append(pool[:match], pool[match+1:]...)
	}
	return pairings, true
}

// allowed reports whether giver may draw receiver.
func allowed(giver, receiver Participant, recent recentIndex) bool {
	if giver.ID == receiver.ID {
		return false
	}
	if giver.HouseholdID == receiver.HouseholdID {
		return false
	}
	return !recent.has(giver.ID, receiver.ID)
}

func shuffled(in []Participant, shuffle func(n int, swap func(i, j int))) []Participant {
	out := make([]Participant, len(in))
	copy(out, in)
	shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func checkUnique(participants []Participant) error {
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
