package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mmynk/giftdraw/pkg/api"
)

// DrawingServiceName is the fully-qualified name of the DrawingService service.
const DrawingServiceName = "giftdraw.v1.DrawingService"

const (
	DrawingServiceListYearsProcedure       = "/giftdraw.v1.DrawingService/ListYears"
	DrawingServiceGetDrawingProcedure      = "/giftdraw.v1.DrawingService/GetDrawing"
	DrawingServiceGenerateDraftProcedure   = "/giftdraw.v1.DrawingService/GenerateDraft"
	DrawingServiceFinalizeDrawingProcedure = "/giftdraw.v1.DrawingService/FinalizeDrawing"
	DrawingServiceDeleteDrawingProcedure   = "/giftdraw.v1.DrawingService/DeleteDrawing"
	DrawingServiceGetSettingsProcedure     = "/giftdraw.v1.DrawingService/GetSettings"
)

// DrawingServiceHandler is implemented by the drawing service.
type DrawingServiceHandler interface {
	ListYears(context.Context, *connect.Request[api.ListYearsRequest]) (*connect.Response[api.ListYearsResponse], error)
	GetDrawing(context.Context, *connect.Request[api.GetDrawingRequest]) (*connect.Response[api.GetDrawingResponse], error)
	GenerateDraft(context.Context, *connect.Request[api.GenerateDraftRequest]) (*connect.Response[api.GenerateDraftResponse], error)
	FinalizeDrawing(context.Context, *connect.Request[api.FinalizeDrawingRequest]) (*connect.Response[api.FinalizeDrawingResponse], error)
	DeleteDrawing(context.Context, *connect.Request[api.DeleteDrawingRequest]) (*connect.Response[api.DeleteDrawingResponse], error)
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
}

// NewDrawingServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewDrawingServiceHandler(svc DrawingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + DrawingServiceName + "/", route(map[string]http.Handler{
		DrawingServiceListYearsProcedure:       connect.NewUnaryHandler(DrawingServiceListYearsProcedure, svc.ListYears, opts...),
		DrawingServiceGetDrawingProcedure:      connect.NewUnaryHandler(DrawingServiceGetDrawingProcedure, svc.GetDrawing, opts...),
		DrawingServiceGenerateDraftProcedure:   connect.NewUnaryHandler(DrawingServiceGenerateDraftProcedure, svc.GenerateDraft, opts...),
		DrawingServiceFinalizeDrawingProcedure: connect.NewUnaryHandler(DrawingServiceFinalizeDrawingProcedure, svc.FinalizeDrawing, opts...),
		DrawingServiceDeleteDrawingProcedure:   connect.NewUnaryHandler(DrawingServiceDeleteDrawingProcedure, svc.DeleteDrawing, opts...),
		DrawingServiceGetSettingsProcedure:     connect.NewUnaryHandler(DrawingServiceGetSettingsProcedure, svc.GetSettings, opts...),
	})
}

// DrawingServiceClient is a client for the DrawingService service.
type DrawingServiceClient interface {
	ListYears(context.Context, *connect.Request[api.ListYearsRequest]) (*connect.Response[api.ListYearsResponse], error)
	GetDrawing(context.Context, *connect.Request[api.GetDrawingRequest]) (*connect.Response[api.GetDrawingResponse], error)
	GenerateDraft(context.Context, *connect.Request[api.GenerateDraftRequest]) (*connect.Response[api.GenerateDraftResponse], error)
	FinalizeDrawing(context.Context, *connect.Request[api.FinalizeDrawingRequest]) (*connect.Response[api.FinalizeDrawingResponse], error)
	DeleteDrawing(context.Context, *connect.Request[api.DeleteDrawingRequest]) (*connect.Response[api.DeleteDrawingResponse], error)
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error)
}

// NewDrawingServiceClient constructs a client for the DrawingService service.
func NewDrawingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DrawingServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &drawingServiceClient{
		listYears:       connect.NewClient[api.ListYearsRequest, api.ListYearsResponse](httpClient, baseURL+DrawingServiceListYearsProcedure, opts...),
		getDrawing:      connect.NewClient[api.GetDrawingRequest, api.GetDrawingResponse](httpClient, baseURL+DrawingServiceGetDrawingProcedure, opts...),
		generateDraft:   connect.NewClient[api.GenerateDraftRequest, api.GenerateDraftResponse](httpClient, baseURL+DrawingServiceGenerateDraftProcedure, opts...),
		finalizeDrawing: connect.NewClient[api.FinalizeDrawingRequest, api.FinalizeDrawingResponse](httpClient, baseURL+DrawingServiceFinalizeDrawingProcedure, opts...),
		deleteDrawing:   connect.NewClient[api.DeleteDrawingRequest, api.DeleteDrawingResponse](httpClient, baseURL+DrawingServiceDeleteDrawingProcedure, opts...),
		getSettings:     connect.NewClient[api.GetSettingsRequest, api.GetSettingsResponse](httpClient, baseURL+DrawingServiceGetSettingsProcedure, opts...),
	}
}

type drawingServiceClient struct {
	listYears       *connect.Client[api.ListYearsRequest, api.ListYearsResponse]
	getDrawing      *connect.Client[api.GetDrawingRequest, api.GetDrawingResponse]
	generateDraft   *connect.Client[api.GenerateDraftRequest, api.GenerateDraftResponse]
	finalizeDrawing *connect.Client[api.FinalizeDrawingRequest, api.FinalizeDrawingResponse]
	deleteDrawing   *connect.Client[api.DeleteDrawingRequest, api.DeleteDrawingResponse]
	getSettings     *connect.Client[api.GetSettingsRequest, api.GetSettingsResponse]
}

func (c *drawingServiceClient) ListYears(ctx context.Context, req *connect.Request[api.ListYearsRequest]) (*connect.Response[api.ListYearsResponse], error) {
	return c.listYears.CallUnary(ctx, req)
}

func (c *drawingServiceClient) GetDrawing(ctx context.Context, req *connect.Request[api.GetDrawingRequest]) (*connect.Response[api.GetDrawingResponse], error) {
	return c.getDrawing.CallUnary(ctx, req)
}

func (c *drawingServiceClient) GenerateDraft(ctx context.Context, req *connect.Request[api.GenerateDraftRequest]) (*connect.Response[api.GenerateDraftResponse], error) {
	return c.generateDraft.CallUnary(ctx, req)
}

func (c *drawingServiceClient) FinalizeDrawing(ctx context.Context, req *connect.Request[api.FinalizeDrawingRequest]) (*connect.Response[api.FinalizeDrawingResponse], error) {
	return c.finalizeDrawing.CallUnary(ctx, req)
}

func (c *drawingServiceClient) DeleteDrawing(ctx context.Context, req *connect.Request[api.DeleteDrawingRequest]) (*connect.Response[api.DeleteDrawingResponse], error) {
	return c.deleteDrawing.CallUnary(ctx, req)
}

func (c *drawingServiceClient) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	return c.getSettings.CallUnary(ctx, req)
}
