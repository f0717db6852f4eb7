package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/Abusha-Ansari/Split-Karo/internal/metrics"
	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api/apiconnect"
)

// Outcome messages returned by InviteMember.
const (
	MsgAlreadyInvited  = "Already invited"
	MsgAlreadyMember   = "Already a member"
	MsgRequestApproved = "Request approved"
	MsgInvitationSent  = "Invitation sent"
)

const statusRemoved = "removed"

var _ apiconnect.TripServiceHandler = (*TripService)(nil)

// TripService implements the Connect TripService
type TripService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewTripService creates a new TripService with the given storage backend.
// m may be nil.
func NewTripService(store storage.Store, m *metrics.Metrics) *TripService {
	return &TripService{store: store, metrics: m}
}

// CreateTrip creates a trip led by the caller.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	req.Msg.Name = strings.TrimSpace(req.Msg.Name)
	req.Msg.Currency = strings.ToUpper(strings.TrimSpace(req.Msg.Currency))
	slog.Info("CreateTrip request received", "name", req.Msg.Name, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if req.Msg.StartsAt != "" && req.Msg.EndsAt != "" && req.Msg.EndsAt < req.Msg.StartsAt {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("ends_at is before starts_at"))
	}

	trip := &models.Trip{
		Name:        req.Msg.Name,
		Description: strings.TrimSpace(req.Msg.Description),
		Currency:    req.Msg.Currency,
		LeaderID:    userID,
		StartsAt:    req.Msg.StartsAt,
		EndsAt:      req.Msg.EndsAt,
	}

	// Save to storage (generates ID, invite code and CreatedAt)
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.MemberStatusChanged(string(models.StatusAccepted))

	slog.Info("Trip created", "trip_id", trip.ID, "invite_code", trip.InviteCode)
	return connect.NewResponse(&api.CreateTripResponse{
		Trip: tripToAPI(trip, models.StatusAccepted),
	}), nil
}

// GetTrip returns a trip and its members. Invited people may look before
// they answer.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetTrip request received", "trip_id", req.Msg.TripID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip, err := loadTrip(ctx, s.store, req.Msg.TripID)
	if err != nil {
		return nil, err
	}
	me, err := s.store.GetMember(ctx, trip.ID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotMember)
	}
	if err != nil {
		slog.Error("GetTrip failed - could not load membership", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	if me.Status != models.StatusAccepted && me.Status != models.StatusInvited {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotMember)
	}

	members, err := s.store.ListMembers(ctx, trip.ID)
	if err != nil {
		slog.Error("GetTrip failed - could not list members", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	apiMembers := make([]*api.Member, len(members))
	for i, m := range members {
		apiMembers[i] = memberToAPI(m)
	}

	slog.Info("GetTrip successful", "trip_id", trip.ID, "members_count", len(members))
	return connect.NewResponse(&api.GetTripResponse{
		Trip:    tripToAPI(trip, me.Status),
		Members: apiMembers,
	}), nil
}

// ListTrips returns the trips the caller belongs to or is invited to.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[api.ListTripsRequest]) (*connect.Response[api.ListTripsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListTrips request received", "user_id", userID)

	trips, err := s.store.ListTripsForUser(ctx, userID)
	if err != nil {
		slog.Error("ListTrips failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Trip, len(trips))
	for i, trip := range trips {
		me, err := s.store.GetMember(ctx, trip.ID, userID)
		if err != nil {
			slog.Error("ListTrips failed - could not load membership", "trip_id", trip.ID, "error", err)
			return nil, toConnectError(err)
		}
		out[i] = tripToAPI(trip, me.Status)
	}

	slog.Info("ListTrips successful", "count", len(out))
	return connect.NewResponse(&api.ListTripsResponse{Trips: out}), nil
}

// DeleteTrip removes a trip and everything recorded in it. Leader only.
func (s *TripService) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteTrip request received", "trip_id", req.Msg.TripID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := requireLeader(ctx, s.store, req.Msg.TripID, userID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteTrip(ctx, req.Msg.TripID); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Trip deleted", "trip_id", req.Msg.TripID)
	return connect.NewResponse(&api.DeleteTripResponse{}), nil
}

// JoinTrip makes the caller an accepted member of the trip owning the invite
// code. Joining twice is not an error. A declined membership is left as is.
func (s *TripService) JoinTrip(ctx context.Context, req *connect.Request[api.JoinTripRequest]) (*connect.Response[api.JoinTripResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("JoinTrip request received", "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	trip, err := s.store.GetTripByInviteCode(ctx, req.Msg.InviteCode)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("invalid invite code"))
	}
	if err != nil {
		slog.Error("JoinTrip failed - invite code lookup", "error", err)
		return nil, toConnectError(err)
	}

	existing, err := s.store.GetMember(ctx, trip.ID, userID)
	switch {
	case err == nil && existing.IsActive():
		slog.Info("JoinTrip - already a member", "trip_id", trip.ID, "user_id", userID)
	case err == nil && existing.Status == models.StatusDeclined:
		// A refusal stands until the caller is invited again.
		slog.Warn("JoinTrip refused - invitation was declined", "trip_id", trip.ID, "user_id", userID)
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("you declined this trip's invitation; ask a member to invite you again"))
	case err == nil:
		// An open invitation or request: the code wins.
		if err := s.store.UpdateMemberStatus(ctx, trip.ID, userID, models.StatusAccepted, ""); err != nil {
			slog.Error("JoinTrip failed - could not accept membership", "trip_id", trip.ID, "error", err)
			return nil, toConnectError(err)
		}
		s.metrics.MemberStatusChanged(string(models.StatusAccepted))
	case errors.Is(err, storage.ErrNotFound):
		err := s.store.AddMember(ctx, &models.TripMember{
			TripID: trip.ID,
			UserID: userID,
			Role:   models.RoleMember,
			Status: models.StatusAccepted,
		})
		if err != nil && !errors.Is(err, storage.ErrConflict) {
			slog.Error("JoinTrip failed - could not add member", "trip_id", trip.ID, "error", err)
			return nil, toConnectError(err)
		}
		s.metrics.MemberStatusChanged(string(models.StatusAccepted))
	default:
		slog.Error("JoinTrip failed - could not load membership", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Trip joined", "trip_id", trip.ID, "user_id", userID)
	return connect.NewResponse(&api.JoinTripResponse{
		Trip: tripToAPI(trip, models.StatusAccepted),
	}), nil
}

// RequestToJoin asks the leader to admit the caller. If the caller already
// has a membership its status is returned unchanged.
func (s *TripService) RequestToJoin(ctx context.Context, req *connect.Request[api.RequestToJoinRequest]) (*connect.Response[api.RequestToJoinResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RequestToJoin request received", "trip_id", req.Msg.TripID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	trip, err := loadTrip(ctx, s.store, req.Msg.TripID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetMember(ctx, trip.ID, userID)
	if err == nil {
		return connect.NewResponse(&api.RequestToJoinResponse{Status: string(existing.Status)}), nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		slog.Error("RequestToJoin failed - could not load membership", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}

	err = s.store.AddMember(ctx, &models.TripMember{
		TripID: trip.ID,
		UserID: userID,
		Role:   models.RoleMember,
		Status: models.StatusPending,
	})
	if err != nil {
		slog.Error("RequestToJoin failed", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.MemberStatusChanged(string(models.StatusPending))

	slog.Info("Join requested", "trip_id", trip.ID, "user_id", userID)
	return connect.NewResponse(&api.RequestToJoinResponse{Status: string(models.StatusPending)}), nil
}

// InviteMember invites a person to the trip. Any accepted member may invite.
// Inviting someone who asked to join approves their request.
func (s *TripService) InviteMember(ctx context.Context, req *connect.Request[api.InviteMemberRequest]) (*connect.Response[api.InviteMemberResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("InviteMember request received", "trip_id", req.Msg.TripID, "invitee", req.Msg.UserID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	trip, _, err := requireActiveMember(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.GetProfileByID(ctx, req.Msg.UserID); err != nil {
		return nil, toConnectError(err)
	}

	respond := func(msg string, status models.MemberStatus) (*connect.Response[api.InviteMemberResponse], error) {
		slog.Info("InviteMember done", "trip_id", trip.ID, "invitee", req.Msg.UserID, "outcome", msg)
		return connect.NewResponse(&api.InviteMemberResponse{Message: msg, Status: string(status)}), nil
	}

	existing, err := s.store.GetMember(ctx, trip.ID, req.Msg.UserID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		slog.Error("InviteMember failed - could not load membership", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	if existing != nil {
		switch existing.Status {
		case models.StatusInvited:
			return respond(MsgAlreadyInvited, existing.Status)
		case models.StatusAccepted:
			return respond(MsgAlreadyMember, existing.Status)
		case models.StatusPending:
			if err := s.store.UpdateMemberStatus(ctx, trip.ID, req.Msg.UserID, models.StatusAccepted, ""); err != nil {
				slog.Error("InviteMember failed - could not approve request", "trip_id", trip.ID, "error", err)
				return nil, toConnectError(err)
			}
			s.metrics.MemberStatusChanged(string(models.StatusAccepted))
			return respond(MsgRequestApproved, models.StatusAccepted)
		case models.StatusDeclined:
			if err := s.store.UpdateMemberStatus(ctx, trip.ID, req.Msg.UserID, models.StatusInvited, userID); err != nil {
				slog.Error("InviteMember failed - could not re-invite", "trip_id", trip.ID, "error", err)
				return nil, toConnectError(err)
			}
			s.metrics.MemberStatusChanged(string(models.StatusInvited))
			return respond(MsgInvitationSent, models.StatusInvited)
		}
	}

	err = s.store.AddMember(ctx, &models.TripMember{
		TripID:    trip.ID,
		UserID:    req.Msg.UserID,
		Role:      models.RoleMember,
		Status:    models.StatusInvited,
		InvitedBy: userID,
	})
	if err != nil {
		slog.Error("InviteMember failed", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.MemberStatusChanged(string(models.StatusInvited))
	return respond(MsgInvitationSent, models.StatusInvited)
}

// RespondToInvite accepts or declines the caller's own invitation.
func (s *TripService) RespondToInvite(ctx context.Context, req *connect.Request[api.RespondToInviteRequest]) (*connect.Response[api.RespondToInviteResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RespondToInvite request received", "trip_id", req.Msg.TripID, "user_id", userID, "accept", req.Msg.Accept)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := loadTrip(ctx, s.store, req.Msg.TripID); err != nil {
		return nil, err
	}

	member, err := s.store.GetMember(ctx, req.Msg.TripID, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	to := models.StatusDeclined
	if req.Msg.Accept {
		to = models.StatusAccepted
	}
	if member.Status != models.StatusInvited || !models.CanTransition(member.Status, to) {
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			fmt.Errorf("no open invitation (membership is %s)", member.Status))
	}

	if err := s.store.UpdateMemberStatus(ctx, req.Msg.TripID, userID, to, ""); err != nil {
		slog.Error("RespondToInvite failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.MemberStatusChanged(string(to))

	slog.Info("Invitation answered", "trip_id", req.Msg.TripID, "user_id", userID, "status", to)
	return connect.NewResponse(&api.RespondToInviteResponse{Status: string(to)}), nil
}

// ApproveMember admits a pending join request. Leader only.
func (s *TripService) ApproveMember(ctx context.Context, req *connect.Request[api.ApproveMemberRequest]) (*connect.Response[api.ApproveMemberResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ApproveMember request received", "trip_id", req.Msg.TripID, "member", req.Msg.UserID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := requireLeader(ctx, s.store, req.Msg.TripID, userID); err != nil {
		return nil, err
	}

	member, err := s.store.GetMember(ctx, req.Msg.TripID, req.Msg.UserID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if member.Status != models.StatusPending {
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			fmt.Errorf("only pending requests can be approved (membership is %s)", member.Status))
	}

	if err := s.store.UpdateMemberStatus(ctx, req.Msg.TripID, req.Msg.UserID, models.StatusAccepted, ""); err != nil {
		slog.Error("ApproveMember failed", "trip_id", req.Msg.TripID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.MemberStatusChanged(string(models.StatusAccepted))

	slog.Info("Member approved", "trip_id", req.Msg.TripID, "member", req.Msg.UserID)
	return connect.NewResponse(&api.ApproveMemberResponse{}), nil
}

// RejectMember removes a membership other than the leader's. Leader only.
func (s *TripService) RejectMember(ctx context.Context, req *connect.Request[api.RejectMemberRequest]) (*connect.Response[api.RejectMemberResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RejectMember request received", "trip_id", req.Msg.TripID, "member", req.Msg.UserID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	trip, err := requireLeader(ctx, s.store, req.Msg.TripID, userID)
	if err != nil {
		return nil, err
	}
	if req.Msg.UserID == trip.LeaderID {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("the leader cannot be removed"))
	}

	if err := s.store.RemoveMember(ctx, trip.ID, req.Msg.UserID); err != nil {
		slog.Error("RejectMember failed", "trip_id", trip.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.MemberStatusChanged(statusRemoved)

	slog.Info("Member removed", "trip_id", trip.ID, "member", req.Msg.UserID)
	return connect.NewResponse(&api.RejectMemberResponse{}), nil
}
