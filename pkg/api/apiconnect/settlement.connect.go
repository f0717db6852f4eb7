package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
)

// SettlementServiceName is the fully-qualified name of the SettlementService service.
const SettlementServiceName = "splitkaro.v1.SettlementService"

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// SettlementServiceRecordSettlementProcedure is the fully-qualified name of the SettlementService's RecordSettlement RPC.
	SettlementServiceRecordSettlementProcedure = "/splitkaro.v1.SettlementService/RecordSettlement"
	// SettlementServiceListSettlementsProcedure is the fully-qualified name of the SettlementService's ListSettlements RPC.
	SettlementServiceListSettlementsProcedure = "/splitkaro.v1.SettlementService/ListSettlements"
	// SettlementServiceGetNetBalancesProcedure is the fully-qualified name of the SettlementService's GetNetBalances RPC.
	SettlementServiceGetNetBalancesProcedure = "/splitkaro.v1.SettlementService/GetNetBalances"
)

// SettlementServiceClient is a client for the splitkaro.v1.SettlementService service.
type SettlementServiceClient interface {
	RecordSettlement(context.Context, *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error)
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	GetNetBalances(context.Context, *connect.Request[api.GetNetBalancesRequest]) (*connect.Response[api.GetNetBalancesResponse], error)
}

// NewSettlementServiceClient constructs a client for the splitkaro.v1.SettlementService service.
// Messages are sent with the JSON codec; baseURL is the server's address,
// e.g. http://localhost:8080.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &settlementServiceClient{
		recordSettlement: connect.NewClient[api.RecordSettlementRequest, api.RecordSettlementResponse](
			httpClient,
			baseURL+SettlementServiceRecordSettlementProcedure,
			opts...,
		),
		listSettlements: connect.NewClient[api.ListSettlementsRequest, api.ListSettlementsResponse](
			httpClient,
			baseURL+SettlementServiceListSettlementsProcedure,
			opts...,
		),
		getNetBalances: connect.NewClient[api.GetNetBalancesRequest, api.GetNetBalancesResponse](
			httpClient,
			baseURL+SettlementServiceGetNetBalancesProcedure,
			opts...,
		),
	}
}

// settlementServiceClient implements SettlementServiceClient.
type settlementServiceClient struct {
	recordSettlement *connect.Client[api.RecordSettlementRequest, api.RecordSettlementResponse]
	listSettlements  *connect.Client[api.ListSettlementsRequest, api.ListSettlementsResponse]
	getNetBalances   *connect.Client[api.GetNetBalancesRequest, api.GetNetBalancesResponse]
}

// RecordSettlement calls splitkaro.v1.SettlementService.RecordSettlement.
func (c *settlementServiceClient) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	return c.recordSettlement.CallUnary(ctx, req)
}

// ListSettlements calls splitkaro.v1.SettlementService.ListSettlements.
func (c *settlementServiceClient) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

// GetNetBalances calls splitkaro.v1.SettlementService.GetNetBalances.
func (c *settlementServiceClient) GetNetBalances(ctx context.Context, req *connect.Request[api.GetNetBalancesRequest]) (*connect.Response[api.GetNetBalancesResponse], error) {
	return c.getNetBalances.CallUnary(ctx, req)
}

// SettlementServiceHandler is an implementation of the splitkaro.v1.SettlementService service.
// Settlements and net balances.
type SettlementServiceHandler interface {
	RecordSettlement(context.Context, *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error)
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	GetNetBalances(context.Context, *connect.Request[api.GetNetBalancesRequest]) (*connect.Response[api.GetNetBalancesResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	settlementServiceRecordSettlementHandler := connect.NewUnaryHandler(
		SettlementServiceRecordSettlementProcedure,
		svc.RecordSettlement,
		opts...,
	)
	settlementServiceListSettlementsHandler := connect.NewUnaryHandler(
		SettlementServiceListSettlementsProcedure,
		svc.ListSettlements,
		opts...,
	)
	settlementServiceGetNetBalancesHandler := connect.NewUnaryHandler(
		SettlementServiceGetNetBalancesProcedure,
		svc.GetNetBalances,
		opts...,
	)
	return "/splitkaro.v1.SettlementService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettlementServiceRecordSettlementProcedure:
			settlementServiceRecordSettlementHandler.ServeHTTP(w, r)
		case SettlementServiceListSettlementsProcedure:
			settlementServiceListSettlementsHandler.ServeHTTP(w, r)
		case SettlementServiceGetNetBalancesProcedure:
			settlementServiceGetNetBalancesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSettlementServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSettlementServiceHandler struct{}

func (UnimplementedSettlementServiceHandler) RecordSettlement(context.Context, *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.SettlementService.RecordSettlement is not implemented"))
}

func (UnimplementedSettlementServiceHandler) ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.SettlementService.ListSettlements is not implemented"))
}

func (UnimplementedSettlementServiceHandler) GetNetBalances(context.Context, *connect.Request[api.GetNetBalancesRequest]) (*connect.Response[api.GetNetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.SettlementService.GetNetBalances is not implemented"))
}
