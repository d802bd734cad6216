package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mmynk/giftdraw/internal/metrics"
	"github.com/mmynk/giftdraw/internal/models"
	"github.com/mmynk/giftdraw/internal/pairing"
	"github.com/mmynk/giftdraw/internal/storage"
	"github.com/mmynk/giftdraw/internal/telemetry"
	"github.com/mmynk/giftdraw/pkg/api"
	"github.com/mmynk/giftdraw/pkg/api/apiconnect"
)

var _ apiconnect.DrawingServiceHandler = (*DrawingService)(nil)

// DrawingStore is what DrawingService needs from storage: the participant
// directory, finalized drawings and their history.
type DrawingStore interface {
	storage.DrawingStore
	ListParticipants(ctx context.Context) ([]*models.Participant, error)
	GetParticipant(ctx context.Context, participantID string) (*models.Participant, error)
}

// DrawingService implements the Connect DrawingService on top of the pairing engine.
type DrawingService struct {
	store   DrawingStore
	engine  *pairing.Engine
	metrics *metrics.Collector
	tracer  trace.Tracer
}

// NewDrawingService creates a DrawingService. collector may be nil.
func NewDrawingService(store DrawingStore, engine *pairing.Engine, collector *metrics.Collector) *DrawingService {
	return &DrawingService{
		store:   store,
		engine:  engine,
		metrics: collector,
		tracer:  telemetry.Tracer(),
	}
}

// ListYears returns every year with a finalized drawing, newest first.
func (s *DrawingService) ListYears(ctx context.Context, req *connect.Request[api.ListYearsRequest]) (*connect.Response[api.ListYearsResponse], error) {
	years, err := s.store.ListDrawingYears(ctx)
	if err != nil {
		slog.Error("ListYears failed", "error", err)
		return nil, storageError(err)
	}
	return connect.NewResponse(&api.ListYearsResponse{Years: years}), nil
}

// GetDrawing returns the finalized drawing for a year.
func (s *DrawingService) GetDrawing(ctx context.Context, req *connect.Request[api.GetDrawingRequest]) (*connect.Response[api.GetDrawingResponse], error) {
	if err := validate(req.Msg); err != nil {
		return nil, err
	}

	drawing, err := s.store.GetDrawing(ctx, req.Msg.Year)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Error("GetDrawing failed", "year", req.Msg.Year, "error", err)
		}
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetDrawingResponse{
		Drawing: drawingToAPI(drawing, false),
	}), nil
}

// GenerateDraft runs the pairing engine over the whole roster and returns the
// result without storing it.
func (s *DrawingService) GenerateDraft(ctx context.Context, req *connect.Request[api.GenerateDraftRequest]) (*connect.Response[api.GenerateDraftResponse], error) {
	if err := validate(req.Msg); err != nil {
		return nil, err
	}
	year := req.Msg.Year

	ctx, span := s.tracer.Start(ctx, "DrawingService.GenerateDraft",
		trace.WithAttributes(attribute.Int("giftdraw.year", year)))
	defer span.End()

	slog.Info("GenerateDraft request received", "year", year)

	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		return nil, s.spanError(span, storageError(err))
	}
	if len(participants) == 0 {
		s.recordGeneration(metrics.OutcomeInsufficient, 0, 0)
		return nil, s.spanError(span, newError(connect.CodeFailedPrecondition, ReasonNoParticipants,
			errors.New("no participants found")))
	}

	past, err := s.store.PastPairings(ctx, s.engine.Config().YearsLookback, year)
	if err != nil {
		return nil, s.spanError(span, storageError(err))
	}

	byID := make(map[string]*models.Participant, len(participants))
	roster := make([]pairing.Participant, 0, len(participants))
	for _, p := range participants {
		entry, err := rosterEntry(p)
		if err != nil {
			slog.Warn("Participant has an unreadable birth date and is skipped",
				"participant_id", p.ID, "birth_date", p.BirthDate, "error", err)
		}
		byID[p.ID] = p
		roster = append(roster, entry)
	}

	result, err := s.engine.Generate(roster, past, year)
	span.SetAttributes(
		attribute.Int("giftdraw.roster", len(roster)),
		attribute.Int("giftdraw.eligible", result.Eligible),
		attribute.Int("giftdraw.attempts", result.Attempts),
	)
	switch {
	case errors.Is(err, pairing.ErrInsufficientParticipants):
		s.recordGeneration(metrics.OutcomeInsufficient, 0, result.Eligible)
		slog.Warn("GenerateDraft: not enough eligible participants", "year", year, "eligible", result.Eligible)
		return nil, s.spanError(span, newError(connect.CodeFailedPrecondition, ReasonInsufficient, err))
	case errors.Is(err, pairing.ErrGenerationFailed):
		s.recordGeneration(metrics.OutcomeFailed, result.Attempts, result.Eligible)
		slog.Warn("GenerateDraft: constraints could not be met", "year", year, "attempts", result.Attempts)
		return nil, s.spanError(span, newError(connect.CodeAborted, ReasonGenerationFailed, err))
	case err != nil:
		return nil, s.spanError(span, newError(connect.CodeInternal, ReasonInternal, err))
	}

	s.recordGeneration(metrics.OutcomeGenerated, result.Attempts, result.Eligible)
	slog.Info("Draft generated",
		"year", year,
		"pairings", len(result.Pairings),
		"attempts", result.Attempts,
	)

	return connect.NewResponse(&api.GenerateDraftResponse{
		Drawing:  drawingToAPI(resolvePairings(year, result.Pairings, byID), true),
		Attempts: result.Attempts,
	}), nil
}

// FinalizeDrawing validates a submitted pairing set against the directory and
// the drawing rules, including that every eligible participant is paired, then
// stores it as the drawing for the year, replacing any
// earlier one.
func (s *DrawingService) FinalizeDrawing(ctx context.Context, req *connect.Request[api.FinalizeDrawingRequest]) (*connect.Response[api.FinalizeDrawingResponse], error) {
	if err := validate(req.Msg); err != nil {
		return nil, err
	}
	year := req.Msg.Year

	ctx, span := s.tracer.Start(ctx, "DrawingService.FinalizeDrawing",
		trace.WithAttributes(
			attribute.Int("giftdraw.year", year),
			attribute.Int("giftdraw.pairings", len(req.Msg.Pairings)),
		))
	defer span.End()

	slog.Info("FinalizeDrawing request received", "year", year, "pairings", len(req.Msg.Pairings))

	drawing := &models.Drawing{Year: year}
	candidate := make([]pairing.Pairing, 0, len(req.Msg.Pairings))
	for _, ref := range req.Msg.Pairings {
		giver, err := s.lookup(ctx, ref.GiverID)
		if err != nil {
			return nil, s.spanError(span, err)
		}
		receiver, err := s.lookup(ctx, ref.ReceiverID)
		if err != nil {
			return nil, s.spanError(span, err)
		}

		drawing.Pairings = append(drawing.Pairings, models.Pairing{Giver: *giver, Receiver: *receiver, Year: year})
		candidate = append(candidate, pairing.Pairing{
			Giver:    pairing.Participant{ID: giver.ID, HouseholdID: giver.HouseholdID, Name: giver.Name},
			Receiver: pairing.Participant{ID: receiver.ID, HouseholdID: receiver.HouseholdID, Name: receiver.Name},
			Year:     year,
		})
	}

	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		return nil, s.spanError(span, storageError(err))
	}
	roster := make([]pairing.Participant, 0, len(participants))
	for _, p := range participants {
		entry, _ := rosterEntry(p)
		roster = append(roster, entry)
	}

	past, err := s.store.PastPairings(ctx, s.engine.Config().YearsLookback, year)
	if err != nil {
		return nil, s.spanError(span, storageError(err))
	}
	if err := s.engine.ValidateDrawing(candidate, roster, past); err != nil {
		s.recordFinalize(metrics.OutcomeInvalid)
		slog.Warn("FinalizeDrawing rejected", "year", year, "error", err)
		return nil, s.spanError(span, newError(connect.CodeInvalidArgument, ReasonInvalidPairing, err))
	}

	if err := s.store.SaveDrawing(ctx, year, drawing.Pairings); err != nil {
		s.recordFinalize(metrics.OutcomeSaveFailed)
		slog.Error("FinalizeDrawing save failed", "year", year, "error", err)
		return nil, s.spanError(span, newError(connect.CodeInternal, ReasonSaveFailed, err))
	}

	s.recordFinalize(metrics.OutcomeFinalized)
	slog.Info("Drawing finalized", "year", year, "pairings", len(drawing.Pairings))
	return connect.NewResponse(&api.FinalizeDrawingResponse{
		Drawing: drawingToAPI(drawing, false),
	}), nil
}

// DeleteDrawing removes the finalized drawing for a year.
func (s *DrawingService) DeleteDrawing(ctx context.Context, req *connect.Request[api.DeleteDrawingRequest]) (*connect.Response[api.DeleteDrawingResponse], error) {
	if err := validate(req.Msg); err != nil {
		return nil, err
	}
	year := req.Msg.Year
	slog.Info("DeleteDrawing request received", "year", year)

	exists, err := s.store.DrawingExists(ctx, year)
	if err != nil {
		return nil, storageError(err)
	}
	if !exists {
		return nil, storageError(fmt.Errorf("drawing %d: %w", year, storage.ErrNotFound))
	}

	if err := s.store.DeleteDrawing(ctx, year); err != nil {
		slog.Error("DeleteDrawing failed", "year", year, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Drawing deleted", "year", year)
	return connect.NewResponse(&api.DeleteDrawingResponse{}), nil
}

// GetSettings reports the engine settings and the current calendar year on the
// engine's clock.
func (s *DrawingService) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	cfg := s.engine.Config()
	return connect.NewResponse(&api.GetSettingsResponse{
		Settings: &api.Settings{
			YearsLookback: cfg.YearsLookback,
			MinimumAge:    cfg.MinimumAge,
			CurrentYear:   s.engine.Now().Year(),
		},
	}), nil
}

// lookup resolves a participant named in a finalize request. Unknown ids are
// the caller's mistake, not a missing resource.
func (s *DrawingService) lookup(ctx context.Context, participantID string) (*models.Participant, error) {
	p, err := s.store.GetParticipant(ctx, participantID)
	if errors.Is(err, storage.ErrNotFound) {
		s.recordFinalize(metrics.OutcomeInvalid)
		return nil, newError(connect.CodeInvalidArgument, ReasonInvalidPairing,
			fmt.Errorf("invalid participant in pairing: %s", participantID))
	}
	if err != nil {
		return nil, storageError(err)
	}
	return p, nil
}

func (s *DrawingService) spanError(span trace.Span, err *connect.Error) *connect.Error {
	span.RecordError(err)
	span.SetStatus(codes.Error, ErrorReason(err))
	return err
}

func (s *DrawingService) recordGeneration(outcome string, attempts, eligible int) {
	if s.metrics != nil {
		s.metrics.RecordGeneration(outcome, attempts, eligible)
	}
}

func (s *DrawingService) recordFinalize(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordFinalize(outcome)
	}
}
