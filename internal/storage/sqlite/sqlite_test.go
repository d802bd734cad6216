package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mmynk/giftdraw/internal/models"
	"github.com/mmynk/giftdraw/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "giftdraw-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustHousehold(t *testing.T, store *SQLiteStore, name string) *models.Household {
	t.Helper()
	h := &models.Household{Name: name}
	if err := store.CreateHousehold(context.Background(), h); err != nil {
		t.Fatalf("CreateHousehold failed: %v", err)
	}
	return h
}

func mustParticipant(t *testing.T, store *SQLiteStore, householdID, name, birthDate string) models.Participant {
	t.Helper()
	p := &models.Participant{HouseholdID: householdID, Name: name, BirthDate: birthDate}
	if err := store.CreateParticipant(context.Background(), p); err != nil {
		t.Fatalf("CreateParticipant failed: %v", err)
	}
	return *p
}

func TestHouseholds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateHousehold generates ID and timestamp", func(t *testing.T) {
		h := mustHousehold(t, store, "Smiths")
		if h.ID == "" {
			t.Error("Expected household ID to be generated")
		}
		if h.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetHousehold round trip", func(t *testing.T) {
		original := mustHousehold(t, store, "Joneses")
		got, err := store.GetHousehold(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetHousehold failed: %v", err)
		}
		if *got != *original {
			t.Errorf("GetHousehold = %+v, want %+v", got, original)
		}
	})

	t.Run("GetHousehold returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetHousehold(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListHouseholds orders by name", func(t *testing.T) {
		households, err := store.ListHouseholds(ctx)
		if err != nil {
			t.Fatalf("ListHouseholds failed: %v", err)
		}
		if len(households) != 2 {
			t.Fatalf("Expected 2 households, got %d", len(households))
		}
		if households[0].Name != "Joneses" || households[1].Name != "Smiths" {
			t.Errorf("Unexpected order: %s, %s", households[0].Name, households[1].Name)
		}
	})

	t.Run("UpdateHousehold renames", func(t *testing.T) {
		h := mustHousehold(t, store, "Old Name")
		h.Name = "New Name"
		if err := store.UpdateHousehold(ctx, h); err != nil {
			t.Fatalf("UpdateHousehold failed: %v", err)
		}
		got, _ := store.GetHousehold(ctx, h.ID)
		if got.Name != "New Name" {
			t.Errorf("Name = %q, want %q", got.Name, "New Name")
		}
	})

	t.Run("UpdateHousehold returns ErrNotFound", func(t *testing.T) {
		err := store.UpdateHousehold(ctx, &models.Household{ID: "missing", Name: "x"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteHousehold cascades to participants", func(t *testing.T) {
		h := mustHousehold(t, store, "Doomed")
		p := mustParticipant(t, store, h.ID, "Dora", "1980-01-01")

		if err := store.DeleteHousehold(ctx, h.ID); err != nil {
			t.Fatalf("DeleteHousehold failed: %v", err)
		}
		if _, err := store.GetParticipant(ctx, p.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected participant to be deleted, got %v", err)
		}
		if err := store.DeleteHousehold(ctx, h.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestParticipants(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	smiths := mustHousehold(t, store, "Smiths")
	joneses := mustHousehold(t, store, "Joneses")

	alice := mustParticipant(t, store, smiths.ID, "Alice", "1980-05-01")
	bob := mustParticipant(t, store, smiths.ID, "Bob", "1982-07-12")
	carol := mustParticipant(t, store, joneses.ID, "Carol", "2012-02-29")

	t.Run("GetParticipant round trip", func(t *testing.T) {
		got, err := store.GetParticipant(ctx, alice.ID)
		if err != nil {
			t.Fatalf("GetParticipant failed: %v", err)
		}
		if *got != alice {
			t.Errorf("GetParticipant = %+v, want %+v", got, alice)
		}
	})

	t.Run("ListParticipants returns everyone by name", func(t *testing.T) {
		all, err := store.ListParticipants(ctx)
		if err != nil {
			t.Fatalf("ListParticipants failed: %v", err)
		}
		var names []string
		for _, p := range all {
			names = append(names, p.Name)
		}
		if !reflect.DeepEqual(names, []string{"Alice", "Bob", "Carol"}) {
			t.Errorf("names = %v", names)
		}
	})

	t.Run("ListParticipantsByHousehold filters", func(t *testing.T) {
		members, err := store.ListParticipantsByHousehold(ctx, smiths.ID)
		if err != nil {
			t.Fatalf("ListParticipantsByHousehold failed: %v", err)
		}
		if len(members) != 2 {
			t.Fatalf("Expected 2 members, got %d", len(members))
		}
		for _, m := range members {
			if m.HouseholdID != smiths.ID {
				t.Errorf("member %s has household %s", m.Name, m.HouseholdID)
			}
		}
	})

	t.Run("UpdateParticipant moves household", func(t *testing.T) {
		moved := bob
		moved.HouseholdID = joneses.ID
		moved.Name = "Robert"
		if err := store.UpdateParticipant(ctx, &moved); err != nil {
			t.Fatalf("UpdateParticipant failed: %v", err)
		}
		got, _ := store.GetParticipant(ctx, bob.ID)
		if got.HouseholdID != joneses.ID || got.Name != "Robert" {
			t.Errorf("UpdateParticipant did not persist: %+v", got)
		}
	})

	t.Run("CreateParticipant rejects unknown household", func(t *testing.T) {
		err := store.CreateParticipant(ctx, &models.Participant{HouseholdID: "missing", Name: "X", BirthDate: "1990-01-01"})
		if err == nil {
			t.Error("Expected foreign key error, got nil")
		}
	})

	t.Run("DeleteParticipant", func(t *testing.T) {
		if err := store.DeleteParticipant(ctx, carol.ID); err != nil {
			t.Fatalf("DeleteParticipant failed: %v", err)
		}
		if err := store.DeleteParticipant(ctx, carol.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestDrawings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	h1 := mustHousehold(t, store, "One")
	h2 := mustHousehold(t, store, "Two")
	h3 := mustHousehold(t, store, "Three")
	a := mustParticipant(t, store, h1.ID, "A", "1980-01-01")
	b := mustParticipant(t, store, h2.ID, "B", "1980-01-01")
	c := mustParticipant(t, store, h3.ID, "C", "1980-01-01")

	cycle := func(year int) []models.Pairing {
		return []models.Pairing{
			{Giver: a, Receiver: b, Year: year},
			{Giver: b, Receiver: c, Year: year},
			{Giver: c, Receiver: a, Year: year},
		}
	}

	t.Run("GetDrawing returns ErrNotFound for empty year", func(t *testing.T) {
		_, err := store.GetDrawing(ctx, 1999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("SaveDrawing then GetDrawing round trip", func(t *testing.T) {
		saved := cycle(2024)
		if err := store.SaveDrawing(ctx, 2024, saved); err != nil {
			t.Fatalf("SaveDrawing failed: %v", err)
		}
		got, err := store.GetDrawing(ctx, 2024)
		if err != nil {
			t.Fatalf("GetDrawing failed: %v", err)
		}
		if got.Year != 2024 {
			t.Errorf("Year = %d, want 2024", got.Year)
		}
		// Rows come back ordered by giver name, same as saved.
		if !reflect.DeepEqual(got.Pairings, saved) {
			t.Errorf("GetDrawing pairings = %+v, want %+v", got.Pairings, saved)
		}
	})

	t.Run("SaveDrawing replaces the whole year", func(t *testing.T) {
		swapped := []models.Pairing{
			{Giver: a, Receiver: c, Year: 2024},
			{Giver: c, Receiver: b, Year: 2024},
			{Giver: b, Receiver: a, Year: 2024},
		}
		if err := store.SaveDrawing(ctx, 2024, swapped); err != nil {
			t.Fatalf("SaveDrawing failed: %v", err)
		}
		got, _ := store.GetDrawing(ctx, 2024)
		if len(got.Pairings) != 3 {
			t.Fatalf("Expected 3 pairings, got %d", len(got.Pairings))
		}
		for _, p := range got.Pairings {
			if p.Giver.ID == a.ID && p.Receiver.ID != c.ID {
				t.Errorf("A should now give to C, got %s", p.Receiver.Name)
			}
		}
	})

	t.Run("SaveDrawing is atomic", func(t *testing.T) {
		// The duplicate giver violates the (year, giver_id) key halfway through.
		bad := []models.Pairing{
			{Giver: a, Receiver: b, Year: 2024},
			{Giver: a, Receiver: c, Year: 2024},
		}
		if err := store.SaveDrawing(ctx, 2024, bad); err == nil {
			t.Fatal("Expected SaveDrawing to fail on duplicate giver")
		}
		got, err := store.GetDrawing(ctx, 2024)
		if err != nil {
			t.Fatalf("GetDrawing failed: %v", err)
		}
		if len(got.Pairings) != 3 {
			t.Errorf("Expected the previous 3 pairings to survive, got %d", len(got.Pairings))
		}
	})

	t.Run("ListDrawingYears newest first", func(t *testing.T) {
		for _, year := range []int{2022, 2023} {
			if err := store.SaveDrawing(ctx, year, cycle(year)); err != nil {
				t.Fatalf("SaveDrawing failed: %v", err)
			}
		}
		years, err := store.ListDrawingYears(ctx)
		if err != nil {
			t.Fatalf("ListDrawingYears failed: %v", err)
		}
		if !reflect.DeepEqual(years, []int{2024, 2023, 2022}) {
			t.Errorf("years = %v", years)
		}
	})

	t.Run("PastPairings honors the window", func(t *testing.T) {
		// Drawings exist for 2022, 2023 and 2024. For 2025 with lookback 3
		// only 2023 and 2024 are recent.
		history, err := store.PastPairings(ctx, 3, 2025)
		if err != nil {
			t.Fatalf("PastPairings failed: %v", err)
		}
		if len(history[a.ID]) != 2 {
			t.Errorf("Expected 2 recent receivers for A, got %v", history[a.ID])
		}
		if !history.Contains(a.ID, b.ID) || !history.Contains(a.ID, c.ID) {
			t.Errorf("history for A = %v", history[a.ID])
		}

		history, err = store.PastPairings(ctx, 3, 2024)
		if err != nil {
			t.Fatalf("PastPairings failed: %v", err)
		}
		// 2021 is the boundary, 2024 is the target: only 2022 and 2023 count.
		if got := len(history[a.ID]); got != 2 {
			t.Errorf("Expected 2 recent receivers for A in 2024, got %d", got)
		}
		if history.Contains(a.ID, c.ID) {
			t.Error("the target year's own drawing must not be part of its history")
		}

		history, err = store.PastPairings(ctx, 0, 2025)
		if err != nil {
			t.Fatalf("PastPairings failed: %v", err)
		}
		if len(history) != 0 {
			t.Errorf("Expected no history with zero lookback, got %v", history)
		}

		// Later drawings never count toward an earlier year.
		history, err = store.PastPairings(ctx, 3, 2023)
		if err != nil {
			t.Fatalf("PastPairings failed: %v", err)
		}
		if got := len(history[a.ID]); got != 1 {
			t.Errorf("Expected 1 recent receiver for A in 2023, got %v", history[a.ID])
		}
	})

	t.Run("GetDrawing skips deleted participants", func(t *testing.T) {
		if err := store.DeleteParticipant(ctx, c.ID); err != nil {
			t.Fatalf("DeleteParticipant failed: %v", err)
		}
		got, err := store.GetDrawing(ctx, 2023)
		if err != nil {
			t.Fatalf("GetDrawing failed: %v", err)
		}
		if len(got.Pairings) != 1 {
			t.Errorf("Expected only A -> B to survive, got %d pairings", len(got.Pairings))
		}
	})

	t.Run("DrawingExists and DeleteDrawing", func(t *testing.T) {
		exists, err := store.DrawingExists(ctx, 2022)
		if err != nil || !exists {
			t.Fatalf("DrawingExists(2022) = %v, %v", exists, err)
		}
		if err := store.DeleteDrawing(ctx, 2022); err != nil {
			t.Fatalf("DeleteDrawing failed: %v", err)
		}
		exists, err = store.DrawingExists(ctx, 2022)
		if err != nil || exists {
			t.Errorf("DrawingExists after delete = %v, %v", exists, err)
		}
	})
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("admin@example.com", "Admin", "hash", true)
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if *byEmail != *user {
		t.Errorf("GetUserByEmail = %+v, want %+v", byEmail, user)
	}

	byID, err := store.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if !byID.IsAdmin {
		t.Error("Expected IsAdmin to round trip")
	}

	if _, err := store.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := store.CreateUser(ctx, models.NewUser("admin@example.com", "Dup", "hash", false)); err == nil {
		t.Error("Expected duplicate email to fail")
	}
}
