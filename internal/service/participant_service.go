package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/giftdraw/internal/models"
	"github.com/mmynk/giftdraw/internal/storage"
	"github.com/mmynk/giftdraw/pkg/api"
	"github.com/mmynk/giftdraw/pkg/api/apiconnect"
)

var _ apiconnect.ParticipantServiceHandler = (*ParticipantService)(nil)

// ParticipantStore is what ParticipantService needs from storage.
type ParticipantStore interface {
	storage.ParticipantStore
	GetHousehold(ctx context.Context, householdID string) (*models.Household, error)
}

// ParticipantService implements the Connect ParticipantService.
type ParticipantService struct {
	store ParticipantStore
}

// NewParticipantService creates a new ParticipantService with the given storage backend.
func NewParticipantService(store ParticipantStore) *ParticipantService {
	return &ParticipantService{store: store}
}

// CreateParticipant adds a participant to an existing household.
func (s *ParticipantService) CreateParticipant(ctx context.Context, req *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error) {
	slog.Info("CreateParticipant request received",
		"name", req.Msg.Name,
		"household_id", req.Msg.HouseholdID,
	)
	if err := validate(req.Msg); err != nil {
		return nil, err
	}
	if err := s.checkHousehold(ctx, req.Msg.HouseholdID); err != nil {
		return nil, err
	}

	participant := &models.Participant{
		HouseholdID: req.Msg.HouseholdID,
		Name:        req.Msg.Name,
		BirthDate:   req.Msg.BirthDate,
	}
	if err := s.store.CreateParticipant(ctx, participant); err != nil {
		slog.Error("CreateParticipant failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Participant created", "participant_id", participant.ID)
	return connect.NewResponse(&api.CreateParticipantResponse{
		Participant: participantToAPI(participant),
	}), nil
}

// GetParticipant retrieves a participant by ID.
func (s *ParticipantService) GetParticipant(ctx context.Context, req *connect.Request[api.GetParticipantRequest]) (*connect.Response[api.GetParticipantResponse], error) {
	if err := validate(req.Msg); err != nil {
		return nil, err
	}

	participant, err := s.store.GetParticipant(ctx, req.Msg.ParticipantID)
	if err != nil {
		slog.Error("GetParticipant failed", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetParticipantResponse{
		Participant: participantToAPI(participant),
	}), nil
}

// ListParticipants returns every participant, or the members of one household.
func (s *ParticipantService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	var (
		participants []*models.Participant
		err          error
	)
	if req.Msg.HouseholdID != "" {
		participants, err = s.store.ListParticipantsByHousehold(ctx, req.Msg.HouseholdID)
	} else {
		participants, err = s.store.ListParticipants(ctx)
	}
	if err != nil {
		slog.Error("ListParticipants failed", "household_id", req.Msg.HouseholdID, "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Participant, 0, len(participants))
	for _, p := range participants {
		out = append(out, participantToAPI(p))
	}

	slog.Info("ListParticipants successful", "count", len(out), "household_id", req.Msg.HouseholdID)
	return connect.NewResponse(&api.ListParticipantsResponse{Participants: out}), nil
}

// UpdateParticipant replaces a participant's household, name and birth date.
func (s *ParticipantService) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	slog.Info("UpdateParticipant request received", "participant_id", req.Msg.ParticipantID)
	if err := validate(req.Msg); err != nil {
		return nil, err
	}

	participant, err := s.store.GetParticipant(ctx, req.Msg.ParticipantID)
	if err != nil {
		return nil, storageError(err)
	}
	if err := s.checkHousehold(ctx, req.Msg.HouseholdID); err != nil {
		return nil, err
	}

	participant.HouseholdID = req.Msg.HouseholdID
	participant.Name = req.Msg.Name
	participant.BirthDate = req.Msg.BirthDate
	if err := s.store.UpdateParticipant(ctx, participant); err != nil {
		slog.Error("UpdateParticipant failed", "participant_id", participant.ID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.UpdateParticipantResponse{
		Participant: participantToAPI(participant),
	}), nil
}

// DeleteParticipant removes a participant. Stored drawings that name them
// stop showing those pairings.
func (s *ParticipantService) DeleteParticipant(ctx context.Context, req *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	slog.Info("DeleteParticipant request received", "participant_id", req.Msg.ParticipantID)
	if err := validate(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteParticipant(ctx, req.Msg.ParticipantID); err != nil {
		slog.Error("DeleteParticipant failed", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.DeleteParticipantResponse{}), nil
}

// checkHousehold rejects a participant write that names a missing household.
func (s *ParticipantService) checkHousehold(ctx context.Context, householdID string) error {
	_, err := s.store.GetHousehold(ctx, householdID)
	if errors.Is(err, storage.ErrNotFound) {
		return newError(connect.CodeInvalidArgument, ReasonInvalidHousehold,
			fmt.Errorf("household %s does not exist", householdID))
	}
	if err != nil {
		return storageError(err)
	}
	return nil
}
