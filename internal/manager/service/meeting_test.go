package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
)

func TestMeetingCreateList(t *testing.T) {
	ctx := context.Background()
	svc := &MeetingService{Store: newTestStore(t)}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	created, err := svc.Create(ctx, "user-1", domain.Meeting{
		RoomID: "standup",
		Title:  "Daily Standup",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "user-1", created.CreatedBy)
	require.False(t, created.CreatedAt.IsZero())

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)
}

func TestMeetingCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := &MeetingService{Store: newTestStore(t)}

	_, err := svc.Create(ctx, "user-1", domain.Meeting{Title: "No Room"})
	require.ErrorIs(t, err, ErrInvalidMeeting)

	_, err = svc.Create(ctx, "user-1", domain.Meeting{RoomID: "room", Title: "   "})
	require.ErrorIs(t, err, ErrInvalidMeeting)
}

func TestMeetingDelete(t *testing.T) {
	ctx := context.Background()
	svc := &MeetingService{Store: newTestStore(t)}

	a, err := svc.Create(ctx, "user-1", domain.Meeting{RoomID: "a", Title: "A"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, "user-1", domain.Meeting{RoomID: "b", Title: "B"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, b.ID, list[0].ID)

	// Deleting again is a no-op.
	require.NoError(t, svc.Delete(ctx, a.ID))
}

func TestInviteLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := &InviteService{Store: newTestStore(t)}

	created, err := svc.Create(ctx, "user-1", domain.Invite{
		MeetingID:    "m-1",
		MeetingTitle: "Daily Standup",
		Name:         "Alice",
		Email:        "Alice@Example.com",
		Moderator:    true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "alice@example.com", created.Email)
	require.Equal(t, domain.InvitePending, created.Status)

	t.Run("mark sent", func(t *testing.T) {
		require.NoError(t, svc.MarkSent(ctx, created.ID))

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, domain.InviteSent, list[0].Status)
	})

	t.Run("mark sent unknown id", func(t *testing.T) {
		require.NoError(t, svc.MarkSent(ctx, "no-such-id"))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID))

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

func TestInviteCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := &InviteService{Store: newTestStore(t)}

	_, err := svc.Create(ctx, "user-1", domain.Invite{Name: "Alice"})
	require.ErrorIs(t, err, ErrInvalidInvite)

	_, err = svc.Create(ctx, "user-1", domain.Invite{Email: "a@b.com"})
	require.ErrorIs(t, err, ErrInvalidInvite)
}
