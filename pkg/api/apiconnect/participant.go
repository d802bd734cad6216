package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mmynk/giftdraw/pkg/api"
)

// ParticipantServiceName is the fully-qualified name of the ParticipantService service.
const ParticipantServiceName = "giftdraw.v1.ParticipantService"

const (
	ParticipantServiceCreateParticipantProcedure = "/giftdraw.v1.ParticipantService/CreateParticipant"
	ParticipantServiceGetParticipantProcedure    = "/giftdraw.v1.ParticipantService/GetParticipant"
	ParticipantServiceListParticipantsProcedure  = "/giftdraw.v1.ParticipantService/ListParticipants"
	ParticipantServiceUpdateParticipantProcedure = "/giftdraw.v1.ParticipantService/UpdateParticipant"
	ParticipantServiceDeleteParticipantProcedure = "/giftdraw.v1.ParticipantService/DeleteParticipant"
)

// ParticipantServiceHandler is implemented by the participant service.
type ParticipantServiceHandler interface {
	CreateParticipant(context.Context, *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error)
	GetParticipant(context.Context, *connect.Request[api.GetParticipantRequest]) (*connect.Response[api.GetParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	UpdateParticipant(context.Context, *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error)
	DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error)
}

// NewParticipantServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewParticipantServiceHandler(svc ParticipantServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ParticipantServiceName + "/", route(map[string]http.Handler{
		ParticipantServiceCreateParticipantProcedure: connect.NewUnaryHandler(ParticipantServiceCreateParticipantProcedure, svc.CreateParticipant, opts...),
		ParticipantServiceGetParticipantProcedure:    connect.NewUnaryHandler(ParticipantServiceGetParticipantProcedure, svc.GetParticipant, opts...),
		ParticipantServiceListParticipantsProcedure:  connect.NewUnaryHandler(ParticipantServiceListParticipantsProcedure, svc.ListParticipants, opts...),
		ParticipantServiceUpdateParticipantProcedure: connect.NewUnaryHandler(ParticipantServiceUpdateParticipantProcedure, svc.UpdateParticipant, opts...),
		ParticipantServiceDeleteParticipantProcedure: connect.NewUnaryHandler(ParticipantServiceDeleteParticipantProcedure, svc.DeleteParticipant, opts...),
	})
}

// ParticipantServiceClient is a client for the ParticipantService service.
type ParticipantServiceClient interface {
	CreateParticipant(context.Context, *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error)
	GetParticipant(context.Context, *connect.Request[api.GetParticipantRequest]) (*connect.Response[api.GetParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	UpdateParticipant(context.Context, *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error)
	DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error)
}

// NewParticipantServiceClient constructs a client for the ParticipantService
// service. baseURL is the server root, e.g. http://localhost:8080.
func NewParticipantServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ParticipantServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &participantServiceClient{
		createParticipant: connect.NewClient[api.CreateParticipantRequest, api.CreateParticipantResponse](httpClient, baseURL+ParticipantServiceCreateParticipantProcedure, opts...),
		getParticipant:    connect.NewClient[api.GetParticipantRequest, api.GetParticipantResponse](httpClient, baseURL+ParticipantServiceGetParticipantProcedure, opts...),
		listParticipants:  connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](httpClient, baseURL+ParticipantServiceListParticipantsProcedure, opts...),
		updateParticipant: connect.NewClient[api.UpdateParticipantRequest, api.UpdateParticipantResponse](httpClient, baseURL+ParticipantServiceUpdateParticipantProcedure, opts...),
		deleteParticipant: connect.NewClient[api.DeleteParticipantRequest, api.DeleteParticipantResponse](httpClient, baseURL+ParticipantServiceDeleteParticipantProcedure, opts...),
	}
}

type participantServiceClient struct {
	createParticipant *connect.Client[api.CreateParticipantRequest, api.CreateParticipantResponse]
	getParticipant    *connect.Client[api.GetParticipantRequest, api.GetParticipantResponse]
	listParticipants  *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	updateParticipant *connect.Client[api.UpdateParticipantRequest, api.UpdateParticipantResponse]
	deleteParticipant *connect.Client[api.DeleteParticipantRequest, api.DeleteParticipantResponse]
}

func (c *participantServiceClient) CreateParticipant(ctx context.Context, req *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error) {
	return c.createParticipant.CallUnary(ctx, req)
}

func (c *participantServiceClient) GetParticipant(ctx context.Context, req *connect.Request[api.GetParticipantRequest]) (*connect.Response[api.GetParticipantResponse], error) {
	return c.getParticipant.CallUnary(ctx, req)
}

func (c *participantServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

func (c *participantServiceClient) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	return c.updateParticipant.CallUnary(ctx, req)
}

func (c *participantServiceClient) DeleteParticipant(ctx context.Context, req *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	return c.deleteParticipant.CallUnary(ctx, req)
}
