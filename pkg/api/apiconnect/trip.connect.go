package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "splitkaro.v1.TripService"

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// TripServiceCreateTripProcedure is the fully-qualified name of the TripService's CreateTrip RPC.
	TripServiceCreateTripProcedure = "/splitkaro.v1.TripService/CreateTrip"
	// TripServiceGetTripProcedure is the fully-qualified name of the TripService's GetTrip RPC.
	TripServiceGetTripProcedure = "/splitkaro.v1.TripService/GetTrip"
	// TripServiceListTripsProcedure is the fully-qualified name of the TripService's ListTrips RPC.
	TripServiceListTripsProcedure = "/splitkaro.v1.TripService/ListTrips"
	// TripServiceDeleteTripProcedure is the fully-qualified name of the TripService's DeleteTrip RPC.
	TripServiceDeleteTripProcedure = "/splitkaro.v1.TripService/DeleteTrip"
	// TripServiceJoinTripProcedure is the fully-qualified name of the TripService's JoinTrip RPC.
	TripServiceJoinTripProcedure = "/splitkaro.v1.TripService/JoinTrip"
	// TripServiceRequestToJoinProcedure is the fully-qualified name of the TripService's RequestToJoin RPC.
	TripServiceRequestToJoinProcedure = "/splitkaro.v1.TripService/RequestToJoin"
	// TripServiceInviteMemberProcedure is the fully-qualified name of the TripService's InviteMember RPC.
	TripServiceInviteMemberProcedure = "/splitkaro.v1.TripService/InviteMember"
	// TripServiceRespondToInviteProcedure is the fully-qualified name of the TripService's RespondToInvite RPC.
	TripServiceRespondToInviteProcedure = "/splitkaro.v1.TripService/RespondToInvite"
	// TripServiceApproveMemberProcedure is the fully-qualified name of the TripService's ApproveMember RPC.
	TripServiceApproveMemberProcedure = "/splitkaro.v1.TripService/ApproveMember"
	// TripServiceRejectMemberProcedure is the fully-qualified name of the TripService's RejectMember RPC.
	TripServiceRejectMemberProcedure = "/splitkaro.v1.TripService/RejectMember"
)

// TripServiceClient is a client for the splitkaro.v1.TripService service.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	JoinTrip(context.Context, *connect.Request[api.JoinTripRequest]) (*connect.Response[api.JoinTripResponse], error)
	RequestToJoin(context.Context, *connect.Request[api.RequestToJoinRequest]) (*connect.Response[api.RequestToJoinResponse], error)
	InviteMember(context.Context, *connect.Request[api.InviteMemberRequest]) (*connect.Response[api.InviteMemberResponse], error)
	RespondToInvite(context.Context, *connect.Request[api.RespondToInviteRequest]) (*connect.Response[api.RespondToInviteResponse], error)
	ApproveMember(context.Context, *connect.Request[api.ApproveMemberRequest]) (*connect.Response[api.ApproveMemberResponse], error)
	RejectMember(context.Context, *connect.Request[api.RejectMemberRequest]) (*connect.Response[api.RejectMemberResponse], error)
}

// NewTripServiceClient constructs a client for the splitkaro.v1.TripService service.
// Messages are sent with the JSON codec; baseURL is the server's address,
// e.g. http://localhost:8080.
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &tripServiceClient{
		createTrip: connect.NewClient[api.CreateTripRequest, api.CreateTripResponse](
			httpClient,
			baseURL+TripServiceCreateTripProcedure,
			opts...,
		),
		getTrip: connect.NewClient[api.GetTripRequest, api.GetTripResponse](
			httpClient,
			baseURL+TripServiceGetTripProcedure,
			opts...,
		),
		listTrips: connect.NewClient[api.ListTripsRequest, api.ListTripsResponse](
			httpClient,
			baseURL+TripServiceListTripsProcedure,
			opts...,
		),
		deleteTrip: connect.NewClient[api.DeleteTripRequest, api.DeleteTripResponse](
			httpClient,
			baseURL+TripServiceDeleteTripProcedure,
			opts...,
		),
		joinTrip: connect.NewClient[api.JoinTripRequest, api.JoinTripResponse](
			httpClient,
			baseURL+TripServiceJoinTripProcedure,
			opts...,
		),
		requestToJoin: connect.NewClient[api.RequestToJoinRequest, api.RequestToJoinResponse](
			httpClient,
			baseURL+TripServiceRequestToJoinProcedure,
			opts...,
		),
		inviteMember: connect.NewClient[api.InviteMemberRequest, api.InviteMemberResponse](
			httpClient,
			baseURL+TripServiceInviteMemberProcedure,
			opts...,
		),
		respondToInvite: connect.NewClient[api.RespondToInviteRequest, api.RespondToInviteResponse](
			httpClient,
			baseURL+TripServiceRespondToInviteProcedure,
			opts...,
		),
		approveMember: connect.NewClient[api.ApproveMemberRequest, api.ApproveMemberResponse](
			httpClient,
			baseURL+TripServiceApproveMemberProcedure,
			opts...,
		),
		rejectMember: connect.NewClient[api.RejectMemberRequest, api.RejectMemberResponse](
			httpClient,
			baseURL+TripServiceRejectMemberProcedure,
			opts...,
		),
	}
}

// tripServiceClient implements TripServiceClient.
type tripServiceClient struct {
	createTrip      *connect.Client[api.CreateTripRequest, api.CreateTripResponse]
	getTrip         *connect.Client[api.GetTripRequest, api.GetTripResponse]
	listTrips       *connect.Client[api.ListTripsRequest, api.ListTripsResponse]
	deleteTrip      *connect.Client[api.DeleteTripRequest, api.DeleteTripResponse]
	joinTrip        *connect.Client[api.JoinTripRequest, api.JoinTripResponse]
	requestToJoin   *connect.Client[api.RequestToJoinRequest, api.RequestToJoinResponse]
	inviteMember    *connect.Client[api.InviteMemberRequest, api.InviteMemberResponse]
	respondToInvite *connect.Client[api.RespondToInviteRequest, api.RespondToInviteResponse]
	approveMember   *connect.Client[api.ApproveMemberRequest, api.ApproveMemberResponse]
	rejectMember    *connect.Client[api.RejectMemberRequest, api.RejectMemberResponse]
}

// CreateTrip calls splitkaro.v1.TripService.CreateTrip.
func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

// GetTrip calls splitkaro.v1.TripService.GetTrip.
func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

// ListTrips calls splitkaro.v1.TripService.ListTrips.
func (c *tripServiceClient) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

// DeleteTrip calls splitkaro.v1.TripService.DeleteTrip.
func (c *tripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

// JoinTrip calls splitkaro.v1.TripService.JoinTrip.
func (c *tripServiceClient) JoinTrip(ctx context.Context, req *connect.Request[api.JoinTripRequest]) (*connect.Response[api.JoinTripResponse], error) {
	return c.joinTrip.CallUnary(ctx, req)
}

// RequestToJoin calls splitkaro.v1.TripService.RequestToJoin.
func (c *tripServiceClient) RequestToJoin(ctx context.Context, req *connect.Request[api.RequestToJoinRequest]) (*connect.Response[api.RequestToJoinResponse], error) {
	return c.requestToJoin.CallUnary(ctx, req)
}

// InviteMember calls splitkaro.v1.TripService.InviteMember.
func (c *tripServiceClient) InviteMember(ctx context.Context, req *connect.Request[api.InviteMemberRequest]) (*connect.Response[api.InviteMemberResponse], error) {
	return c.inviteMember.CallUnary(ctx, req)
}

// RespondToInvite calls splitkaro.v1.TripService.RespondToInvite.
func (c *tripServiceClient) RespondToInvite(ctx context.Context, req *connect.Request[api.RespondToInviteRequest]) (*connect.Response[api.RespondToInviteResponse], error) {
	return c.respondToInvite.CallUnary(ctx, req)
}

// ApproveMember calls splitkaro.v1.TripService.ApproveMember.
func (c *tripServiceClient) ApproveMember(ctx context.Context, req *connect.Request[api.ApproveMemberRequest]) (*connect.Response[api.ApproveMemberResponse], error) {
	return c.approveMember.CallUnary(ctx, req)
}

// RejectMember calls splitkaro.v1.TripService.RejectMember.
func (c *tripServiceClient) RejectMember(ctx context.Context, req *connect.Request[api.RejectMemberRequest]) (*connect.Response[api.RejectMemberResponse], error) {
	return c.rejectMember.CallUnary(ctx, req)
}

// TripServiceHandler is an implementation of the splitkaro.v1.TripService service.
// Trips and their memberships.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	JoinTrip(context.Context, *connect.Request[api.JoinTripRequest]) (*connect.Response[api.JoinTripResponse], error)
	RequestToJoin(context.Context, *connect.Request[api.RequestToJoinRequest]) (*connect.Response[api.RequestToJoinResponse], error)
	InviteMember(context.Context, *connect.Request[api.InviteMemberRequest]) (*connect.Response[api.InviteMemberResponse], error)
	RespondToInvite(context.Context, *connect.Request[api.RespondToInviteRequest]) (*connect.Response[api.RespondToInviteResponse], error)
	ApproveMember(context.Context, *connect.Request[api.ApproveMemberRequest]) (*connect.Response[api.ApproveMemberResponse], error)
	RejectMember(context.Context, *connect.Request[api.RejectMemberRequest]) (*connect.Response[api.RejectMemberResponse], error)
}

// NewTripServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	tripServiceCreateTripHandler := connect.NewUnaryHandler(
		TripServiceCreateTripProcedure,
		svc.CreateTrip,
		opts...,
	)
	tripServiceGetTripHandler := connect.NewUnaryHandler(
		TripServiceGetTripProcedure,
		svc.GetTrip,
		opts...,
	)
	tripServiceListTripsHandler := connect.NewUnaryHandler(
		TripServiceListTripsProcedure,
		svc.ListTrips,
		opts...,
	)
	tripServiceDeleteTripHandler := connect.NewUnaryHandler(
		TripServiceDeleteTripProcedure,
		svc.DeleteTrip,
		opts...,
	)
	tripServiceJoinTripHandler := connect.NewUnaryHandler(
		TripServiceJoinTripProcedure,
		svc.JoinTrip,
		opts...,
	)
	tripServiceRequestToJoinHandler := connect.NewUnaryHandler(
		TripServiceRequestToJoinProcedure,
		svc.RequestToJoin,
		opts...,
	)
	tripServiceInviteMemberHandler := connect.NewUnaryHandler(
		TripServiceInviteMemberProcedure,
		svc.InviteMember,
		opts...,
	)
	tripServiceRespondToInviteHandler := connect.NewUnaryHandler(
		TripServiceRespondToInviteProcedure,
		svc.RespondToInvite,
		opts...,
	)
	tripServiceApproveMemberHandler := connect.NewUnaryHandler(
		TripServiceApproveMemberProcedure,
		svc.ApproveMember,
		opts...,
	)
	tripServiceRejectMemberHandler := connect.NewUnaryHandler(
		TripServiceRejectMemberProcedure,
		svc.RejectMember,
		opts...,
	)
	return "/splitkaro.v1.TripService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TripServiceCreateTripProcedure:
			tripServiceCreateTripHandler.ServeHTTP(w, r)
		case TripServiceGetTripProcedure:
			tripServiceGetTripHandler.ServeHTTP(w, r)
		case TripServiceListTripsProcedure:
			tripServiceListTripsHandler.ServeHTTP(w, r)
		case TripServiceDeleteTripProcedure:
			tripServiceDeleteTripHandler.ServeHTTP(w, r)
		case TripServiceJoinTripProcedure:
			tripServiceJoinTripHandler.ServeHTTP(w, r)
		case TripServiceRequestToJoinProcedure:
			tripServiceRequestToJoinHandler.ServeHTTP(w, r)
		case TripServiceInviteMemberProcedure:
			tripServiceInviteMemberHandler.ServeHTTP(w, r)
		case TripServiceRespondToInviteProcedure:
			tripServiceRespondToInviteHandler.ServeHTTP(w, r)
		case TripServiceApproveMemberProcedure:
			tripServiceApproveMemberHandler.ServeHTTP(w, r)
		case TripServiceRejectMemberProcedure:
			tripServiceRejectMemberHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTripServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTripServiceHandler struct{}

func (UnimplementedTripServiceHandler) CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.CreateTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.GetTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) ListTrips(context.Context, *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.ListTrips is not implemented"))
}

func (UnimplementedTripServiceHandler) DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.DeleteTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) JoinTrip(context.Context, *connect.Request[api.JoinTripRequest]) (*connect.Response[api.JoinTripResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.JoinTrip is not implemented"))
}

func (UnimplementedTripServiceHandler) RequestToJoin(context.Context, *connect.Request[api.RequestToJoinRequest]) (*connect.Response[api.RequestToJoinResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.RequestToJoin is not implemented"))
}

func (UnimplementedTripServiceHandler) InviteMember(context.Context, *connect.Request[api.InviteMemberRequest]) (*connect.Response[api.InviteMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.InviteMember is not implemented"))
}

func (UnimplementedTripServiceHandler) RespondToInvite(context.Context, *connect.Request[api.RespondToInviteRequest]) (*connect.Response[api.RespondToInviteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.RespondToInvite is not implemented"))
}

func (UnimplementedTripServiceHandler) ApproveMember(context.Context, *connect.Request[api.ApproveMemberRequest]) (*connect.Response[api.ApproveMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.ApproveMember is not implemented"))
}

func (UnimplementedTripServiceHandler) RejectMember(context.Context, *connect.Request[api.RejectMemberRequest]) (*connect.Response[api.RejectMemberResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.TripService.RejectMember is not implemented"))
}
