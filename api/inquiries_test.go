package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/repository"
	"github.com/avevent/backend/internal/service/inquiries"
	"github.com/avevent/backend/internal/validate"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInquiryUseCase struct {
	mock.Mock
}

func (m *MockInquiryUseCase) Submit(ctx context.Context, input inquiries.SubmitInput) (*domain.Inquiry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inquiry), args.Error(1)
}

func (m *MockInquiryUseCase) List(ctx context.Context, filter domain.InquiryFilter, page, limit int) ([]domain.Inquiry, domain.Pagination, error) {
	args := m.Called(ctx, filter, page, limit)
	return args.Get(0).([]domain.Inquiry), args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *MockInquiryUseCase) Get(ctx context.Context, id string) (*domain.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inquiry), args.Error(1)
}

func (m *MockInquiryUseCase) Update(ctx context.Context, id string, input inquiries.UpdateInput) (*domain.Inquiry, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inquiry), args.Error(1)
}

func (m *MockInquiryUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestInquiryHandler_create(t *testing.T) {
	mockService := &MockInquiryUseCase{}
	handler := NewInquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := inquiries.SubmitInput{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "9876543210",
		ServiceType: "Wedding Photography",
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/api/inquiries", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	inquiry := &domain.Inquiry{ID: "inq-1", Status: domain.InquiryStatusPending}
	mockService.On("Submit", c.Request.Context(), input).Return(inquiry, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Inquiry submitted successfully", response["message"])
	assert.Equal(t, "inq-1", response["inquiryId"])

	mockService.AssertExpectations(t)
}

func TestInquiryHandler_create_ValidationError(t *testing.T) {
	mockService := &MockInquiryUseCase{}
	handler := NewInquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(inquiries.SubmitInput{Name: "J"})
	c.Request = httptest.NewRequest("POST", "/api/inquiries", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var verr validate.Errors
	verr.Add("name", "Name must be at least 2 characters")
	mockService.On("Submit", c.Request.Context(), mock.Anything).Return(nil, verr.Err())

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Validation error", response["message"])

	fields := response["errors"].([]interface{})
	assert.Len(t, fields, 1)
	first := fields[0].(map[string]interface{})
	assert.Equal(t, "name", first["field"])
	assert.Equal(t, "Name must be at least 2 characters", first["message"])
}

func TestInquiryHandler_create_BadBody(t *testing.T) {
	handler := NewInquiryHandler(&MockInquiryUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/api/inquiries", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestInquiryHandler_list_ParsesFilters(t *testing.T) {
	mockService := &MockInquiryUseCase{}
	handler := NewInquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/api/staff/inquiries?page=2&limit=5&status=PENDING&priority=HIGH", nil)

	status := domain.InquiryStatusPending
	priority := domain.PriorityHigh
	expectedFilter := domain.InquiryFilter{Status: &status, Priority: &priority}

	mockService.On("List", c.Request.Context(), expectedFilter, 2, 5).
		Return([]domain.Inquiry{{ID: "inq-1"}}, domain.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(6), pagination["total"])

	mockService.AssertExpectations(t)
}

func TestInquiryHandler_get_NotFound(t *testing.T) {
	mockService := &MockInquiryUseCase{}
	handler := NewInquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/api/staff/inquiries/missing", nil)

	mockService.On("Get", c.Request.Context(), "missing").Return(nil, repository.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Inquiry not found")
}

func TestInquiryHandler_update(t *testing.T) {
	mockService := &MockInquiryUseCase{}
	handler := NewInquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	status := "CONTACTED"
	input := inquiries.UpdateInput{Status: &status}
	body, _ := json.Marshal(input)
	c.Params = gin.Params{{Key: "id", Value: "inq-1"}}
	c.Request = httptest.NewRequest("PATCH", "/api/staff/inquiries/inq-1", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	updated := &domain.Inquiry{ID: "inq-1", Status: domain.InquiryStatusContacted}
	mockService.On("Update", c.Request.Context(), "inq-1", input).Return(updated, nil)

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Inquiry updated successfully")
	mockService.AssertExpectations(t)
}

func TestInquiryHandler_remove(t *testing.T) {
	mockService := &MockInquiryUseCase{}
	handler := NewInquiryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "inq-1"}}
	c.Request = httptest.NewRequest("DELETE", "/api/staff/inquiries/inq-1", nil)

	mockService.On("Delete", c.Request.Context(), "inq-1").Return(nil)

	handler.remove(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Inquiry deleted successfully")
	mockService.AssertExpectations(t)
}
