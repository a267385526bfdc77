// Package bookings implements booking intake: validate the submission,
// resolve the client, write the booking with its line items and advance
// payment as one transaction, then send the confirmation.
package bookings

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

// Advance payment terms: 30% of the computed total, due a week after the
// booking is confirmed.
const (
	advanceRate  = 0.3
	advanceDueIn = 7 * 24 * time.Hour
	advanceNote  = "Advance payment (30%)"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateInput) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter, page, limit int) ([]domain.Booking, domain.Pagination, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
}

type ContactResolver interface {
	Resolve(ctx context.Context, clientID *string, details *identity.ContactDetails) (string, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings repository.BookingRepository
	contacts repository.ContactRepository
	resolver ContactResolver
	producer Producer
	topic    string
}

func NewBookingService(
	bookings repository.BookingRepository,
	contacts repository.ContactRepository,
	resolver ContactResolver,
	producer Producer,
	topic string,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		contacts: contacts,
		resolver: resolver,
		producer: producer,
		topic:    topic,
	}
}

type ServiceInput struct {
	ServiceID string  `json:"serviceId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type ClientDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateInput struct {
	ClientID      *string        `json:"clientId,omitempty"`
	EventName     string         `json:"eventName"`
	EventType     string         `json:"eventType"`
	EventDate     string         `json:"eventDate"`
	EndDate       *string        `json:"endDate,omitempty"`
	Venue         string         `json:"venue"`
	Address       *string        `json:"address,omitempty"`
	GuestCount    int            `json:"guestCount"`
	Budget        float64        `json:"budget"`
	Notes         *string        `json:"notes,omitempty"`
	Requirements  *string        `json:"requirements,omitempty"`
	Services      []ServiceInput `json:"services"`
	ClientDetails *ClientDetails `json:"clientDetails,omitempty"`
}

// Validate applies the booking form rules. It runs before any side effect.
func (in CreateInput) Validate() error {
	var errs validate.Errors
	errs.MinLen("eventName", in.EventName, 2, "Event name must be at least 2 characters")
	errs.OneOf("eventType", in.EventType, domain.ValidEventType, "Invalid event type")
	if in.EventDate == "" {
		errs.Add("eventDate", "Event date is required")
	} else if _, err := parseDate(in.EventDate); err != nil {
		errs.Add("eventDate", "Invalid date")
	}
	if in.EndDate != nil && *in.EndDate != "" {
		if _, err := parseDate(*in.EndDate); err != nil {
			errs.Add("endDate", "Invalid date")
		}
	}
	errs.MinLen("venue", in.Venue, 2, "Venue is required")
	errs.MinInt("guestCount", in.GuestCount, 1, "Guest count must be at least 1")
	errs.MinFloat("budget", in.Budget, 1000, "Budget must be at least ₹1000")
	if len(in.Services) == 0 {
		errs.Add("services", "At least one service is required")
	}
	for _, svc := range in.Services {
		if svc.ServiceID == "" {
			errs.Add("services", "Service reference is required")
		}
		if svc.Quantity < 1 {
			errs.Add("services", "Quantity must be at least 1")
		}
		if svc.Price < 0 {
			errs.Add("services", "Price must not be negative")
		}
	}
	if in.ClientDetails != nil {
		errs.MinLen("clientDetails.name", in.ClientDetails.Name, 2, "Name must be at least 2 characters")
		errs.Email("clientDetails.email", in.ClientDetails.Email)
		errs.MinLen("clientDetails.phone", in.ClientDetails.Phone, 10, "Phone number must be at least 10 characters")
	}
	return errs.Err()
}

// TotalAmount sums quantity×price over the submitted line items. The result
// is fixed into the booking row at creation and never recomputed.
func TotalAmount(services []ServiceInput) float64 {
	total := 0.0
	for _, svc := range services {
		total += svc.Price * float64(svc.Quantity)
	}
	return total
}

func (s *BookingService) Create(ctx context.Context, input CreateInput) (*domain.Booking, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var details *identity.ContactDetails
	if input.ClientDetails != nil {
		phone := input.ClientDetails.Phone
		details = &identity.ContactDetails{
			Name:  input.ClientDetails.Name,
			Email: input.ClientDetails.Email,
			Phone: &phone,
		}
	}
	clientID, err := s.resolver.Resolve(ctx, input.ClientID, details)
	if err != nil {
		return nil, err
	}

	eventDate, _ := parseDate(input.EventDate)
	var endDate *time.Time
	if input.EndDate != nil && *input.EndDate != "" {
		parsed, _ := parseDate(*input.EndDate)
		endDate = &parsed
	}

	total := TotalAmount(input.Services)

	booking := &domain.Booking{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		EventName:    strings.TrimSpace(input.EventName),
		EventType:    domain.EventType(input.EventType),
		EventDate:    eventDate,
		EndDate:      endDate,
		Venue:        strings.TrimSpace(input.Venue),
		Address:      input.Address,
		GuestCount:   input.GuestCount,
		Budget:       input.Budget,
		TotalAmount:  total,
		Notes:        input.Notes,
		Requirements: input.Requirements,
		Status:       domain.BookingStatusConfirmed,
	}
	for _, svc := range input.Services {
		booking.Services = append(booking.Services, domain.BookingService{
			ID:        uuid.NewString(),
			ServiceID: svc.ServiceID,
			Quantity:  svc.Quantity,
			Price:     svc.Price,
		})
	}
	note := advanceNote
	booking.Payments = []domain.Payment{{
		ID:      uuid.NewString(),
		Amount:  total * advanceRate,
		Method:  "PENDING",
		Status:  domain.PaymentStatusPending,
		DueDate: time.Now().Add(advanceDueIn),
		Notes:   &note,
	}}

	// One transaction: booking, line items and the advance payment land
	// together or not at all.
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notify(ctx, booking)
	return booking, nil
}

// notify sends the confirmation for a committed booking. Both the contact
// lookup and the publish are best-effort; the booking stands regardless.
func (s *BookingService) notify(ctx context.Context, booking *domain.Booking) {
	if s.producer == nil || s.topic == "" {
		return
	}
	client, err := s.contacts.GetByID(ctx, booking.ClientID)
	if err != nil {
		slog.Warn("failed to load client for booking confirmation", "booking_id", booking.ID, "error", err)
		return
	}

	eventDate := booking.EventDate
	event := kafka.IntakeEvent{
		Type:        kafka.EventBookingCreated,
		EntityID:    booking.ID,
		Recipient:   client.Email,
		Name:        client.Name,
		EventDate:   &eventDate,
		EventName:   booking.EventName,
		Venue:       booking.Venue,
		TotalAmount: booking.TotalAmount,
	}
	if err := s.producer.Publish(ctx, s.topic, booking.ID, event); err != nil {
		slog.Warn("failed to publish booking_created event", "booking_id", booking.ID, "error", err)
	}
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter, page, limit int) ([]domain.Booking, domain.Pagination, error) {
	p := domain.NormalizePage(page, limit, defaultPageSize)
	bookings, total, err := s.bookings.List(ctx, filter, p)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return bookings, domain.NewPagination(p, total), nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

var _ BookingUseCase = (*BookingService)(nil)
