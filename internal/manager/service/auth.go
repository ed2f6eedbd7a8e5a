package service

import (
	"context"
	"errors"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
)

// MinPasswordLength applies to password changes.
const MinPasswordLength = 6

var (
	// ErrInvalidCredentials is deliberately generic: it never distinguishes
	// "no such user" from "wrong password".
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPasswordTooShort = errors.New("password too short")
)

// AuthService owns login, logout and password change.
type AuthService struct {
	Users    *UserService
	Sessions *SessionService
	Hasher   *Hasher
}

// Login verifies the credential pair and, on success, issues a fresh bearer
// session. Every failure path collapses into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.UserSummary, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", domain.UserSummary{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", domain.UserSummary{}, err
	}

	ok, err := s.Hasher.Verify(ctx, password, user.Digest)
	if err != nil {
		return "", domain.UserSummary{}, err
	}
	if !ok {
		return "", domain.UserSummary{}, ErrInvalidCredentials
	}

	token, err := s.Sessions.Issue(ctx, user.ID, user.Email)
	if err != nil {
		return "", domain.UserSummary{}, err
	}
	return token, user.Summary(), nil
}

// Logout revokes the presented token server-side. The reference system only
// dropped the client copy; explicit revocation is a strict improvement.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Revoke(ctx, token)
}

// ChangePassword rotates the caller's credential and revokes every session
// issued under the old one.
func (s *AuthService) ChangePassword(ctx context.Context, user domain.User, currentPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	ok, err := s.Hasher.Verify(ctx, currentPassword, user.Digest)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}

	digest, err := s.Hasher.Digest(ctx, newPassword)
	if err != nil {
		return err
	}
	if err := s.Users.UpdateCredential(ctx, user, digest); err != nil {
		return err
	}

	return s.Sessions.RevokeUser(ctx, user.ID)
}
