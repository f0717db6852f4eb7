package service

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
)

func memberStatus(t *testing.T, viewer *testUser, tripID, userID string) string {
	t.Helper()
	resp, err := viewer.Trips.GetTrip(context.Background(), connect.NewRequest(&api.GetTripRequest{TripID: tripID}))
	require.NoError(t, err)
	for _, m := range resp.Msg.Members {
		if m.UserID == userID {
			return m.Status
		}
	}
	return ""
}

func TestCreateTrip(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ctx := context.Background()

	resp, err := asha.Trips.CreateTrip(ctx, connect.NewRequest(&api.CreateTripRequest{
		Name:     "  Goa 2025 ",
		Currency: "inr",
		StartsAt: "2025-01-10",
		EndsAt:   "2025-01-15",
	}))
	require.NoError(t, err)
	trip := resp.Msg.Trip
	assert.Equal(t, "Goa 2025", trip.Name)
	assert.Equal(t, "INR", trip.Currency)
	assert.Equal(t, asha.ID, trip.LeaderID)
	assert.Equal(t, "accepted", trip.MyStatus)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{4}-[0-9A-F]{4}$`), trip.InviteCode)

	got, err := asha.Trips.GetTrip(ctx, connect.NewRequest(&api.GetTripRequest{TripID: trip.ID}))
	require.NoError(t, err)
	require.Len(t, got.Msg.Members, 1)
	assert.Equal(t, "leader", got.Msg.Members[0].Role)
	assert.Equal(t, "asha", got.Msg.Members[0].DisplayName)

	list, err := asha.Trips.ListTrips(ctx, connect.NewRequest(&api.ListTripsRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Trips, 1)
	assert.Equal(t, trip.ID, list.Msg.Trips[0].ID)

	assert.Contains(t, env.scrapeMetrics(), `splitkaro_trip_members_total{status="accepted"} 1`)
}

func TestCreateTrip_Validation(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")

	tests := []struct {
		name string
		req  *api.CreateTripRequest
	}{
		{"missing name", &api.CreateTripRequest{Name: "   "}},
		{"bad currency", &api.CreateTripRequest{Name: "Goa", Currency: "RUPEES"}},
		{"bad date", &api.CreateTripRequest{Name: "Goa", StartsAt: "10/01/2025"}},
		{"ends before start", &api.CreateTripRequest{Name: "Goa", StartsAt: "2025-01-10", EndsAt: "2025-01-09"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := asha.Trips.CreateTrip(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, connect.CodeInvalidArgument, err)
		})
	}
}

func TestGetTrip_Access(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ravi := env.register("ravi")
	trip := createTrip(t, asha)

	_, err := ravi.Trips.GetTrip(context.Background(), connect.NewRequest(&api.GetTripRequest{TripID: trip.ID}))
	assertCode(t, connect.CodePermissionDenied, err)

	_, err = asha.Trips.GetTrip(context.Background(), connect.NewRequest(&api.GetTripRequest{TripID: "missing"}))
	assertCode(t, connect.CodeNotFound, err)
}

func TestJoinTrip(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ravi := env.register("ravi")
	trip := createTrip(t, asha)
	ctx := context.Background()

	resp, err := ravi.Trips.JoinTrip(ctx, connect.NewRequest(&api.JoinTripRequest{InviteCode: strings.ToLower(trip.InviteCode)}))
	require.NoError(t, err)
	assert.Equal(t, trip.ID, resp.Msg.Trip.ID)
	assert.Equal(t, "accepted", memberStatus(t, asha, trip.ID, ravi.ID))

	_, err = ravi.Trips.JoinTrip(ctx, connect.NewRequest(&api.JoinTripRequest{InviteCode: trip.InviteCode}))
	require.NoError(t, err, "joining twice is not an error")

	_, err = ravi.Trips.JoinTrip(ctx, connect.NewRequest(&api.JoinTripRequest{InviteCode: "ZZZZ-9999"}))
	assertCode(t, connect.CodeNotFound, err)
}

func TestJoinTrip_AcceptsOpenInvitation(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ravi := env.register("ravi")
	trip := createTrip(t, asha)
	ctx := context.Background()

	_, err := asha.Trips.InviteMember(ctx, connect.NewRequest(&api.InviteMemberRequest{TripID: trip.ID, UserID: ravi.ID}))
	require.NoError(t, err)

	_, err = ravi.Trips.JoinTrip(ctx, connect.NewRequest(&api.JoinTripRequest{InviteCode: trip.InviteCode}))
	require.NoError(t, err)

	member, err := env.store.GetMember(ctx, trip.ID, ravi.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, member.Status)
	assert.Equal(t, asha.ID, member.InvitedBy)
}

func TestJoinTrip_KeepsDeclinedMembership(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ravi := env.register("ravi")
	trip := createTrip(t, asha)
	ctx := context.Background()

	_, err := asha.Trips.InviteMember(ctx, connect.NewRequest(&api.InviteMemberRequest{TripID: trip.ID, UserID: ravi.ID}))
	require.NoError(t, err)
	_, err = ravi.Trips.RespondToInvite(ctx, connect.NewRequest(&api.RespondToInviteRequest{TripID: trip.ID, Accept: false}))
	require.NoError(t, err)

	_, err = ravi.Trips.JoinTrip(ctx, connect.NewRequest(&api.JoinTripRequest{InviteCode: trip.InviteCode}))
	assertCode(t, connect.CodeFailedPrecondition, err)

	member, err := env.store.GetMember(ctx, trip.ID, ravi.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, member.Status)
	assert.Zero(t, member.JoinedAt)

	// A fresh invitation reopens the code path.
	_, err = asha.Trips.InviteMember(ctx, connect.NewRequest(&api.InviteMemberRequest{TripID: trip.ID, UserID: ravi.ID}))
	require.NoError(t, err)
	_, err = ravi.Trips.JoinTrip(ctx, connect.NewRequest(&api.JoinTripRequest{InviteCode: trip.InviteCode}))
	require.NoError(t, err)
	assert.Equal(t, "accepted", memberStatus(t, asha, trip.ID, ravi.ID))
}

func TestInviteMember_Outcomes(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ravi := env.register("ravi")
	meera := env.register("meera")
	trip := createTrip(t, asha)
	ctx := context.Background()

	invite := func(inviter *testUser, userID string) *api.InviteMemberResponse {
		t.Helper()
		resp, err := inviter.Trips.InviteMember(ctx, connect.NewRequest(&api.InviteMemberRequest{TripID: trip.ID, UserID: userID}))
		require.NoError(t, err)
		return resp.Msg
	}
	respond := func(u *testUser, accept bool) string {
		t.Helper()
		resp, err := u.Trips.RespondToInvite(ctx, connect.NewRequest(&api.RespondToInviteRequest{TripID: trip.ID, Accept: accept}))
		require.NoError(t, err)
		return resp.Msg.Status
	}

	assert.Equal(t, MsgInvitationSent, invite(asha, ravi.ID).Message)
	assert.Equal(t, MsgAlreadyInvited, invite(asha, ravi.ID).Message)

	// Invited people see the trip in their list and may look at it.
	list, err := ravi.Trips.ListTrips(ctx, connect.NewRequest(&api.ListTripsRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Trips, 1)
	assert.Equal(t, "invited", list.Msg.Trips[0].MyStatus)
	assert.Equal(t, "invited", memberStatus(t, ravi, trip.ID, ravi.ID))

	// Invited members cannot record anything yet.
	_, err = ravi.Expenses.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{TripID: trip.ID}))
	assertCode(t, connect.CodePermissionDenied, err)

	assert.Equal(t, "declined", respond(ravi, false))
	_, err = ravi.Trips.RespondToInvite(ctx, connect.NewRequest(&api.RespondToInviteRequest{TripID: trip.ID, Accept: true}))
	assertCode(t, connect.CodeFailedPrecondition, err)

	reinvite := invite(asha, ravi.ID)
	assert.Equal(t, MsgInvitationSent, reinvite.Message)
	assert.Equal(t, "invited", reinvite.Status)

	assert.Equal(t, "accepted", respond(ravi, true))
	assert.Equal(t, MsgAlreadyMember, invite(asha, ravi.ID).Message)

	// Any accepted member may invite; inviting a requester approves them.
	req, err := meera.Trips.RequestToJoin(ctx, connect.NewRequest(&api.RequestToJoinRequest{TripID: trip.ID}))
	require.NoError(t, err)
	assert.Equal(t, "pending", req.Msg.Status)
	approved := invite(ravi, meera.ID)
	assert.Equal(t, MsgRequestApproved, approved.Message)
	assert.Equal(t, "accepted", memberStatus(t, asha, trip.ID, meera.ID))
}

func TestInviteMember_Errors(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ravi := env.register("ravi")
	trip := createTrip(t, asha)
	ctx := context.Background()

	_, err := ravi.Trips.InviteMember(ctx, connect.NewRequest(&api.InviteMemberRequest{TripID: trip.ID, UserID: ravi.ID}))
	assertCode(t, connect.CodePermissionDenied, err)

	_, err = asha.Trips.InviteMember(ctx, connect.NewRequest(&api.InviteMemberRequest{TripID: trip.ID, UserID: "ghost"}))
	assertCode(t, connect.CodeNotFound, err)

	_, err = ravi.Trips.RespondToInvite(ctx, connect.NewRequest(&api.RespondToInviteRequest{TripID: trip.ID, Accept: true}))
	assertCode(t, connect.CodeNotFound, err)
}

func TestRequestToJoin_ApproveReject(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ravi := env.register("ravi")
	meera := env.register("meera")
	trip := createTrip(t, asha)
	ctx := context.Background()

	for _, u := range []*testUser{ravi, meera} {
		resp, err := u.Trips.RequestToJoin(ctx, connect.NewRequest(&api.RequestToJoinRequest{TripID: trip.ID}))
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Msg.Status)
	}
	again, err := ravi.Trips.RequestToJoin(ctx, connect.NewRequest(&api.RequestToJoinRequest{TripID: trip.ID}))
	require.NoError(t, err)
	assert.Equal(t, "pending", again.Msg.Status)

	// Pending requests are not listed for the requester.
	list, err := ravi.Trips.ListTrips(ctx, connect.NewRequest(&api.ListTripsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Trips)

	_, err = ravi.Trips.ApproveMember(ctx, connect.NewRequest(&api.ApproveMemberRequest{TripID: trip.ID, UserID: ravi.ID}))
	assertCode(t, connect.CodePermissionDenied, err)

	_, err = asha.Trips.ApproveMember(ctx, connect.NewRequest(&api.ApproveMemberRequest{TripID: trip.ID, UserID: ravi.ID}))
	require.NoError(t, err)
	assert.Equal(t, "accepted", memberStatus(t, asha, trip.ID, ravi.ID))

	_, err = asha.Trips.ApproveMember(ctx, connect.NewRequest(&api.ApproveMemberRequest{TripID: trip.ID, UserID: ravi.ID}))
	assertCode(t, connect.CodeFailedPrecondition, err)

	_, err = asha.Trips.RejectMember(ctx, connect.NewRequest(&api.RejectMemberRequest{TripID: trip.ID, UserID: meera.ID}))
	require.NoError(t, err)
	assert.Empty(t, memberStatus(t, asha, trip.ID, meera.ID))

	_, err = asha.Trips.RejectMember(ctx, connect.NewRequest(&api.RejectMemberRequest{TripID: trip.ID, UserID: asha.ID}))
	assertCode(t, connect.CodeFailedPrecondition, err)

	_, err = asha.Trips.RejectMember(ctx, connect.NewRequest(&api.RejectMemberRequest{TripID: trip.ID, UserID: meera.ID}))
	assertCode(t, connect.CodeNotFound, err)

	body := env.scrapeMetrics()
	assert.Contains(t, body, `splitkaro_trip_members_total{status="removed"} 1`)
	assert.Contains(t, body, `splitkaro_trip_members_total{status="pending"} 2`)
}

func TestDeleteTrip(t *testing.T) {
	env := setupTestServer(t)
	asha := env.register("asha")
	ravi := env.register("ravi")
	trip := createTrip(t, asha, ravi)
	ctx := context.Background()

	_, err := ravi.Trips.DeleteTrip(ctx, connect.NewRequest(&api.DeleteTripRequest{TripID: trip.ID}))
	assertCode(t, connect.CodePermissionDenied, err)

	_, err = asha.Trips.DeleteTrip(ctx, connect.NewRequest(&api.DeleteTripRequest{TripID: trip.ID}))
	require.NoError(t, err)

	_, err = asha.Trips.GetTrip(ctx, connect.NewRequest(&api.GetTripRequest{TripID: trip.ID}))
	assertCode(t, connect.CodeNotFound, err)

	list, err := ravi.Trips.ListTrips(ctx, connect.NewRequest(&api.ListTripsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Trips)
}
