package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
	"github.com/ifedan-ed/plugnmeet-manager/pkg/idx"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already exists")
	ErrSelfDelete    = errors.New("cannot delete yourself")
	ErrMissingFields = errors.New("missing required fields")
)

// UserService is the identity directory: one User per normalized email,
// stored under user:<email> with an ordered summary list for listings.
type UserService struct {
	Store  store.Store
	Hasher *Hasher
}

// NormalizeEmail lowers and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create provisions a new user. Fails with ErrEmailTaken when the normalized
// email already exists. The returned summary never carries the digest.
func (s *UserService) Create(ctx context.Context, name, email, password string, role domain.Role) (domain.UserSummary, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return domain.UserSummary{}, ErrMissingFields
	}

	if _, err := s.Store.Get(ctx, store.PrefixUser+email); err == nil {
		return domain.UserSummary{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.UserSummary{}, err
	}

	digest, err := s.Hasher.Digest(ctx, password)
	if err != nil {
		return domain.UserSummary{}, err
	}

	user := domain.User{
		ID:        idx.New().String(),
		Email:     email,
		Name:      name,
		Role:      role,
		Digest:    digest,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.putUser(ctx, user); err != nil {
		return domain.UserSummary{}, err
	}

	summaries, err := readList[domain.UserSummary](ctx, s.Store, store.KeyUsersList)
	if err != nil {
		return domain.UserSummary{}, err
	}
	summaries = append(summaries, user.Summary())
	if err := writeList(ctx, s.Store, store.KeyUsersList, summaries); err != nil {
		return domain.UserSummary{}, err
	}

	return user.Summary(), nil
}

// FindByEmail returns the full record, digest included. Service-layer only.
func (s *UserService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	raw, err := s.Store.Get(ctx, store.PrefixUser+NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return decodeUser(raw)
}

// FindByID resolves a user id back to its record via the summary list, which
// is the only reverse index the namespace keeps.
func (s *UserService) FindByID(ctx context.Context, id string) (domain.User, error) {
	summaries, err := readList[domain.UserSummary](ctx, s.Store, store.KeyUsersList)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range summaries {
		if u.ID == id {
			return s.FindByEmail(ctx, u.Email)
		}
	}
	return domain.User{}, ErrUserNotFound
}

// UpdateCredential swaps the stored digest. The only mutation a user record
// ever sees besides deletion.
func (s *UserService) UpdateCredential(ctx context.Context, user domain.User, newDigest string) error {
	user.Digest = newDigest
	return s.putUser(ctx, user)
}

// Delete removes a user and its summary entry. Self-deletion is disallowed
// regardless of role. Deleting an id that no longer exists is a no-op.
// Sessions bound to the deleted user are left to expire naturally; the next
// resolve fails anyway because the identity record is gone.
func (s *UserService) Delete(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return ErrSelfDelete
	}

	summaries, err := readList[domain.UserSummary](ctx, s.Store, store.KeyUsersList)
	if err != nil {
		return err
	}

	var target domain.UserSummary
	kept := make([]domain.UserSummary, 0, len(summaries))
	for _, u := range summaries {
		if u.ID == targetID {
			target = u
			continue
		}
		kept = append(kept, u)
	}
	if target.ID == "" {
		return nil
	}

	if err := s.Store.Delete(ctx, store.PrefixUser+target.Email); err != nil {
		return err
	}
	return writeList(ctx, s.Store, store.KeyUsersList, kept)
}

// ListSummaries returns every user without credential digests, the only
// view exposed to callers, even admins.
func (s *UserService) ListSummaries(ctx context.Context) ([]domain.UserSummary, error) {
	summaries, err := readList[domain.UserSummary](ctx, s.Store, store.KeyUsersList)
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []domain.UserSummary{}
	}
	return summaries, nil
}

// IsEmpty reports whether any user exists yet. Gates first-run bootstrap.
func (s *UserService) IsEmpty(ctx context.Context) (bool, error) {
	summaries, err := readList[domain.UserSummary](ctx, s.Store, store.KeyUsersList)
	if err != nil {
		return false, err
	}
	return len(summaries) == 0, nil
}

func (s *UserService) putUser(ctx context.Context, user domain.User) error {
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	return s.Store.Put(ctx, store.PrefixUser+user.Email, raw)
}
