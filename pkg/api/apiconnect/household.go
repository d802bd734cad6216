package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mmynk/giftdraw/pkg/api"
)

// HouseholdServiceName is the fully-qualified name of the HouseholdService service.
const HouseholdServiceName = "giftdraw.v1.HouseholdService"

const (
	HouseholdServiceCreateHouseholdProcedure = "/giftdraw.v1.HouseholdService/CreateHousehold"
	HouseholdServiceGetHouseholdProcedure    = "/giftdraw.v1.HouseholdService/GetHousehold"
	HouseholdServiceListHouseholdsProcedure  = "/giftdraw.v1.HouseholdService/ListHouseholds"
	HouseholdServiceUpdateHouseholdProcedure = "/giftdraw.v1.HouseholdService/UpdateHousehold"
	HouseholdServiceDeleteHouseholdProcedure = "/giftdraw.v1.HouseholdService/DeleteHousehold"
)

// HouseholdServiceHandler is implemented by the household service.
type HouseholdServiceHandler interface {
	CreateHousehold(context.Context, *connect.Request[api.CreateHouseholdRequest]) (*connect.Response[api.CreateHouseholdResponse], error)
	GetHousehold(context.Context, *connect.Request[api.GetHouseholdRequest]) (*connect.Response[api.GetHouseholdResponse], error)
	ListHouseholds(context.Context, *connect.Request[api.ListHouseholdsRequest]) (*connect.Response[api.ListHouseholdsResponse], error)
	UpdateHousehold(context.Context, *connect.Request[api.UpdateHouseholdRequest]) (*connect.Response[api.UpdateHouseholdResponse], error)
	DeleteHousehold(context.Context, *connect.Request[api.DeleteHouseholdRequest]) (*connect.Response[api.DeleteHouseholdResponse], error)
}

// NewHouseholdServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewHouseholdServiceHandler(svc HouseholdServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + HouseholdServiceName + "/", route(map[string]http.Handler{
		HouseholdServiceCreateHouseholdProcedure: connect.NewUnaryHandler(HouseholdServiceCreateHouseholdProcedure, svc.CreateHousehold, opts...),
		HouseholdServiceGetHouseholdProcedure:    connect.NewUnaryHandler(HouseholdServiceGetHouseholdProcedure, svc.GetHousehold, opts...),
		HouseholdServiceListHouseholdsProcedure:  connect.NewUnaryHandler(HouseholdServiceListHouseholdsProcedure, svc.ListHouseholds, opts...),
		HouseholdServiceUpdateHouseholdProcedure: connect.NewUnaryHandler(HouseholdServiceUpdateHouseholdProcedure, svc.UpdateHousehold, opts...),
		HouseholdServiceDeleteHouseholdProcedure: connect.NewUnaryHandler(HouseholdServiceDeleteHouseholdProcedure, svc.DeleteHousehold, opts...),
	})
}

// HouseholdServiceClient is a client for the HouseholdService service.
type HouseholdServiceClient interface {
	CreateHousehold(context.Context, *connect.Request[api.CreateHouseholdRequest]) (*connect.Response[api.CreateHouseholdResponse], error)
	GetHousehold(context.Context, *connect.Request[api.GetHouseholdRequest]) (*connect.Response[api.GetHouseholdResponse], error)
	ListHouseholds(context.Context, *connect.Request[api.ListHouseholdsRequest]) (*connect.Response[api.ListHouseholdsResponse], error)
	UpdateHousehold(context.Context, *connect.Request[api.UpdateHouseholdRequest]) (*connect.Response[api.UpdateHouseholdResponse], error)
	DeleteHousehold(context.Context, *connect.Request[api.DeleteHouseholdRequest]) (*connect.Response[api.DeleteHouseholdResponse], error)
}

// NewHouseholdServiceClient constructs a client for the HouseholdService
// service. baseURL is the server root, e.g. http://localhost:8080.
func NewHouseholdServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) HouseholdServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &householdServiceClient{
		createHousehold: connect.NewClient[api.CreateHouseholdRequest, api.CreateHouseholdResponse](httpClient, baseURL+HouseholdServiceCreateHouseholdProcedure, opts...),
		getHousehold:    connect.NewClient[api.GetHouseholdRequest, api.GetHouseholdResponse](httpClient, baseURL+HouseholdServiceGetHouseholdProcedure, opts...),
		listHouseholds:  connect.NewClient[api.ListHouseholdsRequest, api.ListHouseholdsResponse](httpClient, baseURL+HouseholdServiceListHouseholdsProcedure, opts...),
		updateHousehold: connect.NewClient[api.UpdateHouseholdRequest, api.UpdateHouseholdResponse](httpClient, baseURL+HouseholdServiceUpdateHouseholdProcedure, opts...),
		deleteHousehold: connect.NewClient[api.DeleteHouseholdRequest, api.DeleteHouseholdResponse](httpClient, baseURL+HouseholdServiceDeleteHouseholdProcedure, opts...),
	}
}

type householdServiceClient struct {
	createHousehold *connect.Client[api.CreateHouseholdRequest, api.CreateHouseholdResponse]
	getHousehold    *connect.Client[api.GetHouseholdRequest, api.GetHouseholdResponse]
	listHouseholds  *connect.Client[api.ListHouseholdsRequest, api.ListHouseholdsResponse]
	updateHousehold *connect.Client[api.UpdateHouseholdRequest, api.UpdateHouseholdResponse]
	deleteHousehold *connect.Client[api.DeleteHouseholdRequest, api.DeleteHouseholdResponse]
}

func (c *householdServiceClient) CreateHousehold(ctx context.Context, req *connect.Request[api.CreateHouseholdRequest]) (*connect.Response[api.CreateHouseholdResponse], error) {
	return c.createHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) GetHousehold(ctx context.Context, req *connect.Request[api.GetHouseholdRequest]) (*connect.Response[api.GetHouseholdResponse], error) {
	return c.getHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) ListHouseholds(ctx context.Context, req *connect.Request[api.ListHouseholdsRequest]) (*connect.Response[api.ListHouseholdsResponse], error) {
	return c.listHouseholds.CallUnary(ctx, req)
}

func (c *householdServiceClient) UpdateHousehold(ctx context.Context, req *connect.Request[api.UpdateHouseholdRequest]) (*connect.Response[api.UpdateHouseholdResponse], error) {
	return c.updateHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) DeleteHousehold(ctx context.Context, req *connect.Request[api.DeleteHouseholdRequest]) (*connect.Response[api.DeleteHouseholdResponse], error) {
	return c.deleteHousehold.CallUnary(ctx, req)
}
