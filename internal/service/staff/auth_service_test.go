package staff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avevent/backend/internal/auth"
	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

func (m *MockStaffRepository) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

func staffUser(t *testing.T, password string, active bool) *domain.StaffUser {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return &domain.StaffUser{
		ID:           "staff-1",
		Name:         "Admin",
		Email:        "admin@avevent.com",
		PasswordHash: hash,
		Role:         domain.ContactRoleAdmin,
		IsActive:     active,
	}
}

func TestAuthService_SignIn_Success(t *testing.T) {
	mockRepo := &MockStaffRepository{}
	tokens := auth.NewManager("test-secret", time.Hour)
	service := NewAuthService(mockRepo, tokens)

	ctx := context.Background()
	user := staffUser(t, "correct-password", true)

	mockRepo.On("GetByEmail", ctx, "admin@avevent.com").Return(user, nil).Once()

	token, signedIn, err := service.SignIn(ctx, "admin@avevent.com", "correct-password")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user, signedIn)

	claims, err := tokens.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "staff-1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	mockRepo := &MockStaffRepository{}
	service := NewAuthService(mockRepo, auth.NewManager("test-secret", time.Hour))

	ctx := context.Background()
	user := staffUser(t, "correct-password", true)

	mockRepo.On("GetByEmail", ctx, "admin@avevent.com").Return(user, nil).Once()

	token, signedIn, err := service.SignIn(ctx, "admin@avevent.com", "wrong-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, signedIn)
}

func TestAuthService_SignIn_InactiveAccount(t *testing.T) {
	mockRepo := &MockStaffRepository{}
	service := NewAuthService(mockRepo, auth.NewManager("test-secret", time.Hour))

	ctx := context.Background()
	user := staffUser(t, "correct-password", false)

	mockRepo.On("GetByEmail", ctx, "admin@avevent.com").Return(user, nil).Once()

	_, _, err := service.SignIn(ctx, "admin@avevent.com", "correct-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	mockRepo := &MockStaffRepository{}
	service := NewAuthService(mockRepo, auth.NewManager("test-secret", time.Hour))

	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "nobody@avevent.com").Return(nil, repository.ErrNotFound).Once()

	_, _, err := service.SignIn(ctx, "nobody@avevent.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SignIn_RepositoryError(t *testing.T) {
	mockRepo := &MockStaffRepository{}
	service := NewAuthService(mockRepo, auth.NewManager("test-secret", time.Hour))

	ctx := context.Background()
	expectedErr := errors.New("database error")

	mockRepo.On("GetByEmail", ctx, "admin@avevent.com").Return(nil, expectedErr).Once()

	_, _, err := service.SignIn(ctx, "admin@avevent.com", "whatever")

	assert.Equal(t, expectedErr, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
