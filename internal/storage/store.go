// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/giftdraw/internal/models"
	"github.com/mmynk/giftdraw/internal/pairing"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the persistence operations of the service.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	HouseholdStore
	ParticipantStore
	DrawingStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}

// HouseholdStore persists households.
type HouseholdStore interface {
	// CreateHousehold persists a new household.
	// The household.ID and CreatedAt fields are populated by the store.
	CreateHousehold(ctx context.Context, household *models.Household) error

	// GetHousehold retrieves a household by ID. Returns ErrNotFound if missing.
	GetHousehold(ctx context.Context, householdID string) (*models.Household, error)

	// ListHouseholds returns all households ordered by name.
	ListHouseholds(ctx context.Context) ([]*models.Household, error)

	// UpdateHousehold renames an existing household. Returns ErrNotFound if missing.
	UpdateHousehold(ctx context.Context, household *models.Household) error

	// DeleteHousehold removes a household and its participants.
	// Returns ErrNotFound if missing.
	DeleteHousehold(ctx context.Context, householdID string) error
}

// ParticipantStore persists participants. It is the directory the pairing
// engine draws its roster from.
type ParticipantStore interface {
	// CreateParticipant persists a new participant.
	// The participant.ID and CreatedAt fields are populated by the store.
	CreateParticipant(ctx context.Context, participant *models.Participant) error

	// GetParticipant retrieves a participant by ID. Returns ErrNotFound if missing.
	GetParticipant(ctx context.Context, participantID string) (*models.Participant, error)

	// ListParticipants returns every participant ordered by name.
	ListParticipants(ctx context.Context) ([]*models.Participant, error)

	// ListParticipantsByHousehold returns the members of one household ordered by name.
	ListParticipantsByHousehold(ctx context.Context, householdID string) ([]*models.Participant, error)

	// UpdateParticipant replaces a participant's fields. Returns ErrNotFound if missing.
	UpdateParticipant(ctx context.Context, participant *models.Participant) error

	// DeleteParticipant removes a participant. Returns ErrNotFound if missing.
	DeleteParticipant(ctx context.Context, participantID string) error
}

// DrawingStore persists finalized drawings and answers history queries.
type DrawingStore interface {
	// SaveDrawing replaces every pairing stored for year with pairings in a
	// single transaction. Readers never observe a partially written year.
	SaveDrawing(ctx context.Context, year int, pairings []models.Pairing) error

	// GetDrawing returns the pairings of year joined to their participants.
	// Pairings whose participants were deleted are skipped. Returns ErrNotFound
	// when nothing is stored for year.
	GetDrawing(ctx context.Context, year int) (*models.Drawing, error)

	// ListDrawingYears returns the years with a stored drawing, newest first.
	ListDrawingYears(ctx context.Context) ([]int, error)

	// DrawingExists reports whether any pairing is stored for year.
	DrawingExists(ctx context.Context, year int) (bool, error)

	// DeleteDrawing removes every pairing stored for year.
	DeleteDrawing(ctx context.Context, year int) error

	// PastPairings returns giver -> receivers for drawings in the years
	// strictly between year-lookback and year.
	PastPairings(ctx context.Context, lookback, year int) (pairing.History, error)
}

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns ErrNotFound if missing.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns ErrNotFound if missing.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
