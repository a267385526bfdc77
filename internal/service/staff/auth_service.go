// Package staff implements credential sign-in for back-office accounts.
package staff

import (
	"context"
	"errors"

	"github.com/avevent/backend/internal/auth"
	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/repository"
)

// ErrInvalidCredentials is returned for a bad e-mail/password pair or a
// deactivated account. Callers must not distinguish the cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUseCase interface {
	SignIn(ctx context.Context, email, password string) (string, *domain.StaffUser, error)
}

type AuthService struct {
	staff  repository.StaffRepository
	tokens *auth.Manager
}

func NewAuthService(staff repository.StaffRepository, tokens *auth.Manager) *AuthService {
	return &AuthService{staff: staff, tokens: tokens}
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *domain.StaffUser, error) {
	user, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive || !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

var _ AuthUseCase = (*AuthService)(nil)
