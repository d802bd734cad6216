package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/giftdraw/internal/models"
	"github.com/mmynk/giftdraw/internal/pairing"
	"github.com/mmynk/giftdraw/internal/storage"
)

// SaveDrawing replaces the pairings stored for year inside one transaction.
func (s *SQLiteStore) SaveDrawing(ctx context.Context, year int, pairings []models.Pairing) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM drawings WHERE year = ?", year); err != nil {
		return fmt.Errorf("failed to clear drawing for %d: %w", year, err)
	}

	createdAt := time.Now().Unix()
	for _, p := range pairings {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO drawings (year, giver_id, receiver_id, created_at) VALUES (?, ?, ?, ?)",
			year, p.Giver.ID, p.Receiver.ID, createdAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert pairing %s -> %s: %w", p.Giver.ID, p.Receiver.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetDrawing returns the pairings of year with both participants loaded.
// Rows whose giver or receiver has since been deleted are dropped by the join.
func (s *SQLiteStore) GetDrawing(ctx context.Context, year int) (*models.Drawing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.household_id, g.name, g.birth_date, g.created_at,
		       r.id, r.household_id, r.name, r.birth_date, r.created_at
		FROM drawings d
		JOIN participants g ON g.id = d.giver_id
		JOIN participants r ON r.id = d.receiver_id
		WHERE d.year = ?
		ORDER BY g.name, g.id`,
		year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get drawing: %w", err)
	}
	defer rows.Close()

	drawing := &models.Drawing{Year: year}
	for rows.Next() {
		p := models.Pairing{Year: year}
		if err := rows.Scan(
			&p.Giver.ID, &p.Giver.HouseholdID, &p.Giver.Name, &p.Giver.BirthDate, &p.Giver.CreatedAt,
			&p.Receiver.ID, &p.Receiver.HouseholdID, &p.Receiver.Name, &p.Receiver.BirthDate, &p.Receiver.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pairing: %w", err)
		}
		drawing.Pairings = append(drawing.Pairings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pairings: %w", err)
	}

	if len(drawing.Pairings) == 0 {
		return nil, fmt.Errorf("drawing %d: %w", year, storage.ErrNotFound)
	}
	return drawing, nil
}

// ListDrawingYears returns every year with a stored drawing, newest first.
func (s *SQLiteStore) ListDrawingYears(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT year FROM drawings ORDER BY year DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list drawing years: %w", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate years: %w", err)
	}
	return years, nil
}

// DrawingExists reports whether any pairing is stored for year.
func (s *SQLiteStore) DrawingExists(ctx context.Context, year int) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM drawings WHERE year = ?", year).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count drawing rows: %w", err)
	}
	return count > 0, nil
}

// DeleteDrawing removes every pairing stored for year.
func (s *SQLiteStore) DeleteDrawing(ctx context.Context, year int) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM drawings WHERE year = ?", year); err != nil {
		return fmt.Errorf("failed to delete drawing: %w", err)
	}
	return nil
}

// PastPairings loads the history window for a drawing in year. The window
// itself is applied by pairing.Window.
func (s *SQLiteStore) PastPairings(ctx context.Context, lookback, year int) (pairing.History, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT giver_id, receiver_id, year FROM drawings ORDER BY year",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get past pairings: %w", err)
	}
	defer rows.Close()

	var records []pairing.PastPairing
	for rows.Next() {
		var r pairing.PastPairing
		if err := rows.Scan(&r.GiverID, &r.ReceiverID, &r.Year); err != nil {
			return nil, fmt.Errorf("failed to scan past pairing: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate past pairings: %w", err)
	}
	return pairing.Window(records, lookback, year), nil
}
