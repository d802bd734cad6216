package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmynk/giftdraw/internal/models"
	"github.com/mmynk/giftdraw/internal/storage"
)

const participantColumns = "id, household_id, name, birth_date, created_at"

// CreateParticipant persists a new participant to the database.
func (s *SQLiteStore) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}
	if participant.CreatedAt == 0 {
		participant.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO participants ("+participantColumns+") VALUES (?, ?, ?, ?, ?)",
		participant.ID, participant.HouseholdID, participant.Name, participant.BirthDate, participant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// GetParticipant retrieves a participant by ID.
func (s *SQLiteStore) GetParticipant(ctx context.Context, participantID string) (*models.Participant, error) {
	participant := &models.Participant{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+participantColumns+" FROM participants WHERE id = ?",
		participantID,
	).Scan(&participant.ID, &participant.HouseholdID, &participant.Name, &participant.BirthDate, &participant.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("participant %s: %w", participantID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return participant, nil
}

// ListParticipants returns every participant ordered by name.
func (s *SQLiteStore) ListParticipants(ctx context.Context) ([]*models.Participant, error) {
	return s.queryParticipants(ctx,
		"SELECT "+participantColumns+" FROM participants ORDER BY name, id",
	)
}

// ListParticipantsByHousehold returns the members of a household ordered by name.
func (s *SQLiteStore) ListParticipantsByHousehold(ctx context.Context, householdID string) ([]*models.Participant, error) {
	return s.queryParticipants(ctx,
		"SELECT "+participantColumns+" FROM participants WHERE household_id = ? ORDER BY name, id",
		householdID,
	)
}

// UpdateParticipant replaces a participant's household, name and birth date.
func (s *SQLiteStore) UpdateParticipant(ctx context.Context, participant *models.Participant) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE participants SET household_id = ?, name = ?, birth_date = ? WHERE id = ?",
		participant.HouseholdID, participant.Name, participant.BirthDate, participant.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}
	return expectAffected(result, "participant", participant.ID)
}

// DeleteParticipant removes a participant. Finalized drawings keep their rows;
// GetDrawing skips pairings whose participants no longer exist.
func (s *SQLiteStore) DeleteParticipant(ctx context.Context, participantID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", participantID)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	return expectAffected(result, "participant", participantID)
}

func (s *SQLiteStore) queryParticipants(ctx context.Context, query string, args ...any) ([]*models.Participant, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		p := &models.Participant{}
		if err := rows.Scan(&p.ID, &p.HouseholdID, &p.Name, &p.BirthDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}
