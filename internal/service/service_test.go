package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/giftdraw/internal/metrics"
	"github.com/mmynk/giftdraw/internal/pairing"
	"github.com/mmynk/giftdraw/internal/storage/sqlite"
	"github.com/mmynk/giftdraw/pkg/api"
	"github.com/mmynk/giftdraw/pkg/api/apiconnect"
)

// testNow is the evaluation date for ages and the current year in tests.
var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

type testClients struct {
	households   apiconnect.HouseholdServiceClient
	participants apiconnect.ParticipantServiceClient
	drawings     apiconnect.DrawingServiceClient
	metrics      *metrics.Collector
}

// setupTestServer creates a test server with the household, participant and
// drawing services over a temporary database.
func setupTestServer(t *testing.T) (*testClients, func()) {
	t.Helper()
	return setupTestServerWith(t, func(s *sqlite.SQLiteStore) DrawingStore { return s })
}

// setupTestServerWith is setupTestServer with the drawing service's store
// wrapped by wrap.
func setupTestServerWith(t *testing.T, wrap func(*sqlite.SQLiteStore) DrawingStore) (*testClients, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "giftdraw-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	engine, err := pairing.NewEngine(pairing.DefaultConfig(),
		pairing.WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	collector := metrics.NewCollector()
	drawingSvc := NewDrawingService(wrap(store), engine, collector)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewHouseholdServiceHandler(NewHouseholdService(store)))
	mux.Handle(apiconnect.NewParticipantServiceHandler(NewParticipantService(store)))
	mux.Handle(apiconnect.NewDrawingServiceHandler(drawingSvc))

	server := httptest.NewServer(mux)

	clients := &testClients{
		households:   apiconnect.NewHouseholdServiceClient(http.DefaultClient, server.URL),
		participants: apiconnect.NewParticipantServiceClient(http.DefaultClient, server.URL),
		drawings:     apiconnect.NewDrawingServiceClient(http.DefaultClient, server.URL),
		metrics:      collector,
	}

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return clients, cleanup
}

func (c *testClients) createHousehold(t *testing.T, name string) *api.Household {
	t.Helper()
	resp, err := c.households.CreateHousehold(context.Background(), connect.NewRequest(&api.CreateHouseholdRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreateHousehold(%s) failed: %v", name, err)
	}
	return resp.Msg.Household
}

func (c *testClients) createParticipant(t *testing.T, householdID, name, birthDate string) *api.Participant {
	t.Helper()
	resp, err := c.participants.CreateParticipant(context.Background(), connect.NewRequest(&api.CreateParticipantRequest{
		HouseholdID: householdID,
		Name:        name,
		BirthDate:   birthDate,
	}))
	if err != nil {
		t.Fatalf("CreateParticipant(%s) failed: %v", name, err)
	}
	return resp.Msg.Participant
}

// expectError checks the Connect code and failure reason of err.
func expectError(t *testing.T, err error, code connect.Code, reason string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Errorf("code: expected %v, got %v (%v)", code, got, err)
	}
	if reason != "" {
		if got := ErrorReason(err); got != reason {
			t.Errorf("reason: expected %q, got %q", reason, got)
		}
	}
}
