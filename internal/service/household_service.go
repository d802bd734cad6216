package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/giftdraw/internal/models"
	"github.com/mmynk/giftdraw/internal/storage"
	"github.com/mmynk/giftdraw/pkg/api"
	"github.com/mmynk/giftdraw/pkg/api/apiconnect"
)

var _ apiconnect.HouseholdServiceHandler = (*HouseholdService)(nil)

// HouseholdService implements the Connect HouseholdService.
type HouseholdService struct {
	store storage.HouseholdStore
}

// NewHouseholdService creates a new HouseholdService with the given storage backend.
func NewHouseholdService(store storage.HouseholdStore) *HouseholdService {
	return &HouseholdService{store: store}
}

// CreateHousehold creates a new household.
func (s *HouseholdService) CreateHousehold(ctx context.Context, req *connect.Request[api.CreateHouseholdRequest]) (*connect.Response[api.CreateHouseholdResponse], error) {
	slog.Info("CreateHousehold request received", "name", req.Msg.Name)
	if err := validate(req.Msg); err != nil {
		return nil, err
	}

	household := &models.Household{Name: req.Msg.Name}
	if err := s.store.CreateHousehold(ctx, household); err != nil {
		slog.Error("CreateHousehold failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Household created", "household_id", household.ID)
	return connect.NewResponse(&api.CreateHouseholdResponse{
		Household: householdToAPI(household),
	}), nil
}

// GetHousehold retrieves a household by ID.
func (s *HouseholdService) GetHousehold(ctx context.Context, req *connect.Request[api.GetHouseholdRequest]) (*connect.Response[api.GetHouseholdResponse], error) {
	if err := validate(req.Msg); err != nil {
		return nil, err
	}

	household, err := s.store.GetHousehold(ctx, req.Msg.HouseholdID)
	if err != nil {
		slog.Error("GetHousehold failed", "household_id", req.Msg.HouseholdID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetHouseholdResponse{
		Household: householdToAPI(household),
	}), nil
}

// ListHouseholds retrieves all households ordered by name.
func (s *HouseholdService) ListHouseholds(ctx context.Context, req *connect.Request[api.ListHouseholdsRequest]) (*connect.Response[api.ListHouseholdsResponse], error) {
	households, err := s.store.ListHouseholds(ctx)
	if err != nil {
		slog.Error("ListHouseholds failed", "error", err)
		return nil, storageError(err)
	}

	out := make([]*api.Household, 0, len(households))
	for _, h := range households {
		out = append(out, householdToAPI(h))
	}

	slog.Info("ListHouseholds successful", "count", len(out))
	return connect.NewResponse(&api.ListHouseholdsResponse{Households: out}), nil
}

// UpdateHousehold renames a household.
func (s *HouseholdService) UpdateHousehold(ctx context.Context, req *connect.Request[api.UpdateHouseholdRequest]) (*connect.Response[api.UpdateHouseholdResponse], error) {
	slog.Info("UpdateHousehold request received", "household_id", req.Msg.HouseholdID)
	if err := validate(req.Msg); err != nil {
		return nil, err
	}

	household, err := s.store.GetHousehold(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, storageError(err)
	}
	household.Name = req.Msg.Name

	if err := s.store.UpdateHousehold(ctx, household); err != nil {
		slog.Error("UpdateHousehold failed", "household_id", household.ID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.UpdateHouseholdResponse{
		Household: householdToAPI(household),
	}), nil
}

// DeleteHousehold removes a household together with its participants.
func (s *HouseholdService) DeleteHousehold(ctx context.Context, req *connect.Request[api.DeleteHouseholdRequest]) (*connect.Response[api.DeleteHouseholdResponse], error) {
	slog.Info("DeleteHousehold request received", "household_id", req.Msg.HouseholdID)
	if err := validate(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteHousehold(ctx, req.Msg.HouseholdID); err != nil {
		slog.Error("DeleteHousehold failed", "household_id", req.Msg.HouseholdID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Household deleted", "household_id", req.Msg.HouseholdID)
	return connect.NewResponse(&api.DeleteHouseholdResponse{}), nil
}
