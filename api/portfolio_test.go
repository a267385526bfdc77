package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/service/portfolio"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPortfolioUseCase struct {
	mock.Mock
}

func (m *MockPortfolioUseCase) Create(ctx context.Context, input portfolio.CreateInput) (*domain.PortfolioItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioUseCase) List(ctx context.Context, filter domain.PortfolioFilter, page, limit int) ([]domain.PortfolioItem, domain.Pagination, error) {
	args := m.Called(ctx, filter, page, limit)
	return args.Get(0).([]domain.PortfolioItem), args.Get(1).(domain.Pagination), args.Error(2)
}

func TestPortfolioHandler_create(t *testing.T) {
	mockService := &MockPortfolioUseCase{}
	handler := NewPortfolioHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := portfolio.CreateInput{
		Title:     "Mehta Anniversary Gala",
		EventType: "ANNIVERSARY",
		Images:    []string{"https://cdn.example.com/1.jpg"},
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/api/staff/portfolio", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	item := &domain.PortfolioItem{ID: "p-1", Title: input.Title, IsPublic: true}
	mockService.On("Create", c.Request.Context(), input).Return(item, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Portfolio item created successfully", response["message"])
	assert.NotNil(t, response["data"])

	mockService.AssertExpectations(t)
}

func TestPortfolioHandler_list_DefaultsToPublic(t *testing.T) {
	mockService := &MockPortfolioUseCase{}
	handler := NewPortfolioHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/api/portfolio", nil)

	public := true
	mockService.On("List", c.Request.Context(), domain.PortfolioFilter{IsPublic: &public}, 1, 12).
		Return([]domain.PortfolioItem{}, domain.Pagination{Page: 1, Limit: 12}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestPortfolioHandler_list_Filters(t *testing.T) {
	mockService := &MockPortfolioUseCase{}
	handler := NewPortfolioHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/api/portfolio?eventType=WEDDING&featured=true&limit=4", nil)

	public := true
	featured := true
	eventType := domain.EventTypeWedding
	expectedFilter := domain.PortfolioFilter{EventType: &eventType, Featured: &featured, IsPublic: &public}

	mockService.On("List", c.Request.Context(), expectedFilter, 1, 4).
		Return([]domain.PortfolioItem{}, domain.Pagination{Page: 1, Limit: 4}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
