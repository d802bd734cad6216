package apiconnect

import (
	"testing"

	"github.com/mmynk/giftdraw/pkg/api"
)

func TestCodecEmptyBody(t *testing.T) {
	var req api.ListParticipantsRequest
	if err := (Codec{}).Unmarshal(nil, &req); err != nil {
		t.Fatalf("empty body: %v", err)
	}
	if req.HouseholdID != "" {
		t.Errorf("expected zero message, got %+v", req)
	}
}

func TestCodecFieldNames(t *testing.T) {
	data, err := (Codec{}).Marshal(&api.FinalizeDrawingRequest{
		Year:     2025,
		Pairings: []*api.PairingRef{{GiverID: "a", ReceiverID: "b"}},
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"year":2025,"pairings":[{"giver_id":"a","receiver_id":"b"}]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestCodecRejectsMalformedJSON(t *testing.T) {
	var req api.GetDrawingRequest
	if err := (Codec{}).Unmarshal([]byte(`{"year":`), &req); err == nil {
		t.Error("expected an error for truncated JSON")
	}
}
