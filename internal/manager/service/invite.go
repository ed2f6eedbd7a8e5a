package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
)

var ErrInvalidInvite = errors.New("invalid invite")

// InviteService tracks participant invitations per meeting.
type InviteService struct {
	Store store.Store
}

func (s *InviteService) List(ctx context.Context) ([]domain.Invite, error) {
	invites, err := readList[domain.Invite](ctx, s.Store, store.KeyInvitesList)
	if err != nil {
		return nil, err
	}
	if invites == nil {
		invites = []domain.Invite{}
	}
	return invites, nil
}

func (s *InviteService) Create(ctx context.Context, createdBy string, inv domain.Invite) (domain.Invite, error) {
	inv.Email = NormalizeEmail(inv.Email)
	inv.Name = strings.TrimSpace(inv.Name)
	if inv.Email == "" || inv.Name == "" {
		return domain.Invite{}, ErrInvalidInvite
	}

	inv.ID = uuid.NewString()
	inv.Status = domain.InvitePending
	inv.CreatedBy = createdBy
	inv.CreatedAt = time.Now().UTC()

	invites, err := readList[domain.Invite](ctx, s.Store, store.KeyInvitesList)
	if err != nil {
		return domain.Invite{}, err
	}
	invites = append(invites, inv)
	if err := writeList(ctx, s.Store, store.KeyInvitesList, invites); err != nil {
		return domain.Invite{}, err
	}
	return inv, nil
}

func (s *InviteService) Delete(ctx context.Context, id string) error {
	invites, err := readList[domain.Invite](ctx, s.Store, store.KeyInvitesList)
	if err != nil {
		return err
	}

	kept := invites[:0]
	for _, inv := range invites {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	return writeList(ctx, s.Store, store.KeyInvitesList, kept)
}

// MarkSent flips an invite to sent after its email went out. Unknown ids are
// ignored.
func (s *InviteService) MarkSent(ctx context.Context, id string) error {
	invites, err := readList[domain.Invite](ctx, s.Store, store.KeyInvitesList)
	if err != nil {
		return err
	}

	changed := false
	for i := range invites {
		if invites[i].ID == id {
			invites[i].Status = domain.InviteSent
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return writeList(ctx, s.Store, store.KeyInvitesList, invites)
}
