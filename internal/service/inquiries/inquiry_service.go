// Package inquiries implements the inquiry intake pipeline: validate the
// public submission, resolve the contact behind it, persist the lead, then
// notify the submitter and the admin address.
package inquiries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/kafka"
	"github.com/avevent/backend/internal/repository"
	"github.com/avevent/backend/internal/service/identity"
	"github.com/avevent/backend/internal/validate"
	"github.com/google/uuid"
)

const defaultPageSize = 10

type InquiryUseCase interface {
	Submit(ctx context.Context, input SubmitInput) (*domain.Inquiry, error)
	List(ctx context.Context, filter domain.InquiryFilter, page, limit int) ([]domain.Inquiry, domain.Pagination, error)
	Get(ctx context.Context, id string) (*domain.Inquiry, error)
	Update(ctx context.Context, id string, input UpdateInput) (*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

// ContactResolver resolves or provisions the contact behind a submission.
type ContactResolver interface {
	Resolve(ctx context.Context, clientID *string, details *identity.ContactDetails) (string, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type InquiryService struct {
	inquiries repository.InquiryRepository
	resolver  ContactResolver
	producer  Producer
	topic     string
}

func NewInquiryService(inquiries repository.InquiryRepository, resolver ContactResolver, producer Producer, topic string) *InquiryService {
	return &InquiryService{
		inquiries: inquiries,
		resolver:  resolver,
		producer:  producer,
		topic:     topic,
	}
}

type SubmitInput struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	ServiceType string   `json:"serviceType"`
	EventDate   *string  `json:"eventDate,omitempty"`
	Message     *string  `json:"message,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	GuestCount  *int     `json:"guestCount,omitempty"`
	Venue       *string  `json:"venue,omitempty"`
}

// Validate applies the public-form rules. It runs before any side effect.
func (in SubmitInput) Validate() error {
	var errs validate.Errors
	errs.MinLen("name", in.Name, 2, "Name must be at least 2 characters")
	errs.Email("email", in.Email)
	errs.MinLen("phone", in.Phone, 10, "Phone number must be at least 10 characters")
	errs.MinLen("serviceType", in.ServiceType, 1, "Service type is required")
	if in.EventDate != nil && *in.EventDate != "" {
		if _, err := parseDate(*in.EventDate); err != nil {
			errs.Add("eventDate", "Invalid date")
		}
	}
	return errs.Err()
}

func (s *InquiryService) Submit(ctx context.Context, input SubmitInput) (*domain.Inquiry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	contactID, err := s.resolver.Resolve(ctx, nil, &identity.ContactDetails{
		Name:  input.Name,
		Email: input.Email,
		Phone: &input.Phone,
	})
	if err != nil {
		return nil, err
	}

	inquiry := &domain.Inquiry{
		ID:          uuid.NewString(),
		ContactID:   &contactID,
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       strings.TrimSpace(input.Phone),
		ServiceType: strings.TrimSpace(input.ServiceType),
		Message:     input.Message,
		Budget:      input.Budget,
		GuestCount:  input.GuestCount,
		Venue:       input.Venue,
		Status:      domain.InquiryStatusPending,
		Priority:    domain.PriorityMedium,
		Source:      domain.InquirySource,
	}
	if input.EventDate != nil && *input.EventDate != "" {
		date, _ := parseDate(*input.EventDate)
		inquiry.EventDate = &date
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	s.publish(ctx, inquiry)
	return inquiry, nil
}

// publish emits the intake event behind the confirmation and admin mail.
// The write has already committed; a publish failure is logged and dropped.
func (s *InquiryService) publish(ctx context.Context, inquiry *domain.Inquiry) {
	if s.producer == nil || s.topic == "" {
		return
	}
	message := ""
	if inquiry.Message != nil {
		message = *inquiry.Message
	}
	event := kafka.IntakeEvent{
		Type:        kafka.EventInquiryCreated,
		EntityID:    inquiry.ID,
		Recipient:   inquiry.Email,
		Name:        inquiry.Name,
		ServiceType: inquiry.ServiceType,
		Phone:       inquiry.Phone,
		EventDate:   inquiry.EventDate,
		Message:     message,
	}
	if err := s.producer.Publish(ctx, s.topic, inquiry.ID, event); err != nil {
		slog.Warn("failed to publish inquiry_created event", "inquiry_id", inquiry.ID, "error", err)
	}
}

func (s *InquiryService) List(ctx context.Context, filter domain.InquiryFilter, page, limit int) ([]domain.Inquiry, domain.Pagination, error) {
	p := domain.NormalizePage(page, limit, defaultPageSize)
	inquiries, total, err := s.inquiries.List(ctx, filter, p)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return inquiries, domain.NewPagination(p, total), nil
}

func (s *InquiryService) Get(ctx context.Context, id string) (*domain.Inquiry, error) {
	return s.inquiries.GetByID(ctx, id)
}

type UpdateInput struct {
	Status   *string `json:"status,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (in UpdateInput) Validate() error {
	var errs validate.Errors
	if in.Status != nil {
		errs.OneOf("status", *in.Status, domain.ValidInquiryStatus, "Invalid status")
	}
	if in.Priority != nil {
		errs.OneOf("priority", *in.Priority, domain.ValidInquiryPriority, "Invalid priority")
	}
	return errs.Err()
}

func (s *InquiryService) Update(ctx context.Context, id string, input UpdateInput) (*domain.Inquiry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	update := domain.InquiryUpdate{Notes: input.Notes}
	if input.Status != nil {
		status := domain.InquiryStatus(*input.Status)
		update.Status = &status
	}
	if input.Priority != nil {
		priority := domain.InquiryPriority(*input.Priority)
		update.Priority = &priority
	}
	return s.inquiries.Update(ctx, id, update)
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	return s.inquiries.Delete(ctx, id)
}

// parseDate accepts the formats the public forms submit: RFC 3339 or a bare
// calendar date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

var _ InquiryUseCase = (*InquiryService)(nil)
