package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/avevent/backend/internal/cache"
	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, item *domain.PortfolioItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPortfolioRepository) List(ctx context.Context, filter domain.PortfolioFilter, page domain.Page) ([]domain.PortfolioItem, int, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.PortfolioItem), args.Int(1), args.Error(2)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetListing(ctx context.Context, entity string, page, limit int) (*cache.ListingPage, error) {
	args := m.Called(ctx, entity, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.ListingPage), args.Error(1)
}

func (m *MockCache) SetListing(ctx context.Context, entity string, page, limit int, listing cache.ListingPage) error {
	args := m.Called(ctx, entity, page, limit, listing)
	return args.Error(0)
}

func (m *MockCache) InvalidateListing(ctx context.Context, entity string) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func TestPortfolioService_Create_Defaults(t *testing.T) {
	mockRepo := &MockPortfolioRepository{}
	mockCache := &MockCache{}

	service := NewPortfolioService(mockRepo, mockCache)

	ctx := context.Background()
	input := CreateInput{
		Title:     "Mehta Anniversary Gala",
		EventType: "ANNIVERSARY",
		Images:    []string{"https://cdn.example.com/1.jpg"},
	}

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.PortfolioItem")).Return(nil).Once()
	mockCache.On("InvalidateListing", ctx, "portfolio").Return(nil).Once()

	item, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.True(t, item.IsPublic)
	assert.False(t, item.Featured)
	assert.Equal(t, domain.EventTypeAnniversary, item.EventType)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestPortfolioService_Create_ExplicitFlags(t *testing.T) {
	mockRepo := &MockPortfolioRepository{}
	service := NewPortfolioService(mockRepo, nil)

	ctx := context.Background()
	featured := true
	hidden := false
	input := CreateInput{
		Title:     "Corporate Launch Reel",
		EventType: "CORPORATE",
		Featured:  &featured,
		IsPublic:  &hidden,
	}

	mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	item, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.True(t, item.Featured)
	assert.False(t, item.IsPublic)
}

func TestPortfolioService_Create_ValidationErrors(t *testing.T) {
	service := NewPortfolioService(nil, nil)
	ctx := context.Background()

	testCases := []struct {
		name    string
		input   CreateInput
		message string
	}{
		{
			name:    "Short title",
			input:   CreateInput{Title: "X", EventType: "WEDDING"},
			message: "Title must be at least 2 characters",
		},
		{
			name:    "Invalid event type",
			input:   CreateInput{Title: "Valid Title", EventType: "PICNIC"},
			message: "Invalid event type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item, err := service.Create(ctx, tc.input)

			assert.Nil(t, item)
			var verr *validate.Errors
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.message, verr.Fields[0].Message)
		})
	}
}

func TestPortfolioService_List_PublicUnfilteredUsesCache(t *testing.T) {
	mockRepo := &MockPortfolioRepository{}
	mockCache := &MockCache{}

	service := NewPortfolioService(mockRepo, mockCache)

	ctx := context.Background()
	public := true
	filter := domain.PortfolioFilter{IsPublic: &public}
	page := domain.Page{Number: 1, Limit: 12}
	stored := []domain.PortfolioItem{{ID: "p-1", Title: "Wedding Highlights"}}

	mockCache.On("GetListing", ctx, "portfolio", 1, 12).Return(nil, errors.New("miss")).Once()
	mockRepo.On("List", ctx, filter, page).Return(stored, 1, nil).Once()
	mockCache.On("SetListing", ctx, "portfolio", 1, 12, mock.Anything).Return(nil).Once()

	items, pagination, err := service.List(ctx, filter, 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, stored, items)
	assert.Equal(t, 12, pagination.Limit)
	mockCache.AssertExpectations(t)
}

func TestPortfolioService_List_FilteredBypassesCache(t *testing.T) {
	mockRepo := &MockPortfolioRepository{}
	mockCache := &MockCache{}

	service := NewPortfolioService(mockRepo, mockCache)

	ctx := context.Background()
	public := true
	eventType := domain.EventTypeWedding
	filter := domain.PortfolioFilter{IsPublic: &public, EventType: &eventType}

	mockRepo.On("List", ctx, filter, domain.Page{Number: 1, Limit: 12}).
		Return([]domain.PortfolioItem{}, 0, nil).Once()

	_, _, err := service.List(ctx, filter, 1, 12)

	assert.NoError(t, err)
	mockCache.AssertNotCalled(t, "GetListing")
	mockCache.AssertNotCalled(t, "SetListing")
}

func TestPortfolioService_List_RepositoryError(t *testing.T) {
	mockRepo := &MockPortfolioRepository{}
	service := NewPortfolioService(mockRepo, nil)

	ctx := context.Background()
	expectedErr := errors.New("database error")

	mockRepo.On("List", ctx, domain.PortfolioFilter{}, mock.Anything).
		Return([]domain.PortfolioItem{}, 0, expectedErr).Once()

	items, _, err := service.List(ctx, domain.PortfolioFilter{}, 1, 12)

	assert.Nil(t, items)
	assert.Equal(t, expectedErr, err)
}
