package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
)

// ProfileServiceName is the fully-qualified name of the ProfileService service.
const ProfileServiceName = "splitkaro.v1.ProfileService"

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// ProfileServiceGetProfileProcedure is the fully-qualified name of the ProfileService's GetProfile RPC.
	ProfileServiceGetProfileProcedure = "/splitkaro.v1.ProfileService/GetProfile"
	// ProfileServiceUpdateProfileProcedure is the fully-qualified name of the ProfileService's UpdateProfile RPC.
	ProfileServiceUpdateProfileProcedure = "/splitkaro.v1.ProfileService/UpdateProfile"
	// ProfileServiceSearchProfilesProcedure is the fully-qualified name of the ProfileService's SearchProfiles RPC.
	ProfileServiceSearchProfilesProcedure = "/splitkaro.v1.ProfileService/SearchProfiles"
)

// ProfileServiceClient is a client for the splitkaro.v1.ProfileService service.
type ProfileServiceClient interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	SearchProfiles(context.Context, *connect.Request[api.SearchProfilesRequest]) (*connect.Response[api.SearchProfilesResponse], error)
}

// NewProfileServiceClient constructs a client for the splitkaro.v1.ProfileService service.
// Messages are sent with the JSON codec; baseURL is the server's address,
// e.g. http://localhost:8080.
func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProfileServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &profileServiceClient{
		getProfile: connect.NewClient[api.GetProfileRequest, api.GetProfileResponse](
			httpClient,
			baseURL+ProfileServiceGetProfileProcedure,
			opts...,
		),
		updateProfile: connect.NewClient[api.UpdateProfileRequest, api.UpdateProfileResponse](
			httpClient,
			baseURL+ProfileServiceUpdateProfileProcedure,
			opts...,
		),
		searchProfiles: connect.NewClient[api.SearchProfilesRequest, api.SearchProfilesResponse](
			httpClient,
			baseURL+ProfileServiceSearchProfilesProcedure,
			opts...,
		),
	}
}

// profileServiceClient implements ProfileServiceClient.
type profileServiceClient struct {
	getProfile     *connect.Client[api.GetProfileRequest, api.GetProfileResponse]
	updateProfile  *connect.Client[api.UpdateProfileRequest, api.UpdateProfileResponse]
	searchProfiles *connect.Client[api.SearchProfilesRequest, api.SearchProfilesResponse]
}

// GetProfile calls splitkaro.v1.ProfileService.GetProfile.
func (c *profileServiceClient) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

// UpdateProfile calls splitkaro.v1.ProfileService.UpdateProfile.
func (c *profileServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

// SearchProfiles calls splitkaro.v1.ProfileService.SearchProfiles.
func (c *profileServiceClient) SearchProfiles(ctx context.Context, req *connect.Request[api.SearchProfilesRequest]) (*connect.Response[api.SearchProfilesResponse], error) {
	return c.searchProfiles.CallUnary(ctx, req)
}

// ProfileServiceHandler is an implementation of the splitkaro.v1.ProfileService service.
// Profile lookup and editing.
type ProfileServiceHandler interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	SearchProfiles(context.Context, *connect.Request[api.SearchProfilesRequest]) (*connect.Response[api.SearchProfilesResponse], error)
}

// NewProfileServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	profileServiceGetProfileHandler := connect.NewUnaryHandler(
		ProfileServiceGetProfileProcedure,
		svc.GetProfile,
		opts...,
	)
	profileServiceUpdateProfileHandler := connect.NewUnaryHandler(
		ProfileServiceUpdateProfileProcedure,
		svc.UpdateProfile,
		opts...,
	)
	profileServiceSearchProfilesHandler := connect.NewUnaryHandler(
		ProfileServiceSearchProfilesProcedure,
		svc.SearchProfiles,
		opts...,
	)
	return "/splitkaro.v1.ProfileService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ProfileServiceGetProfileProcedure:
			profileServiceGetProfileHandler.ServeHTTP(w, r)
		case ProfileServiceUpdateProfileProcedure:
			profileServiceUpdateProfileHandler.ServeHTTP(w, r)
		case ProfileServiceSearchProfilesProcedure:
			profileServiceSearchProfilesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedProfileServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedProfileServiceHandler struct{}

func (UnimplementedProfileServiceHandler) GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.ProfileService.GetProfile is not implemented"))
}

func (UnimplementedProfileServiceHandler) UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.ProfileService.UpdateProfile is not implemented"))
}

func (UnimplementedProfileServiceHandler) SearchProfiles(context.Context, *connect.Request[api.SearchProfilesRequest]) (*connect.Response[api.SearchProfilesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitkaro.v1.ProfileService.SearchProfiles is not implemented"))
}
