package service

import (
	"context"
	"errors"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/domain"
)

// First-run admin credentials, matching the reference deployment. The
// operator is expected to change the password immediately.
const (
	BootstrapAdminName     = "Admin User"
	BootstrapAdminEmail    = "admin@example.com"
	BootstrapAdminPassword = "admin123"
)

var ErrAlreadyInitialized = errors.New("already initialized")

// BootstrapService seeds the first admin account while the directory is
// still empty.
type BootstrapService struct {
	Users *UserService
}

// Initialize creates the default admin. Fails once any user exists.
func (s *BootstrapService) Initialize(ctx context.Context) (domain.UserSummary, error) {
	empty, err := s.Users.IsEmpty(ctx)
	if err != nil {
		return domain.UserSummary{}, err
	}
	if !empty {
		return domain.UserSummary{}, ErrAlreadyInitialized
	}

	return s.Users.Create(ctx, BootstrapAdminName, BootstrapAdminEmail, BootstrapAdminPassword, domain.RoleAdmin)
}
