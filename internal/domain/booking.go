package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// Booking is a confirmed engagement. It owns its service line items and
// payment records; the three are only ever written as a single unit.
type Booking struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"clientId"`
	EventName    string        `json:"eventName"`
	EventType    EventType     `json:"eventType"`
	EventDate    time.Time     `json:"eventDate"`
	EndDate      *time.Time    `json:"endDate,omitempty"`
	Venue        string        `json:"venue"`
	Address      *string       `json:"address,omitempty"`
	GuestCount   int           `json:"guestCount"`
	Budget       float64       `json:"budget"`
	TotalAmount  float64       `json:"totalAmount"`
	Notes        *string       `json:"notes,omitempty"`
	Requirements *string       `json:"requirements,omitempty"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	Services []BookingService `json:"services,omitempty"`
	Payments []Payment        `json:"payments,omitempty"`
	Client   *ContactSummary  `json:"client,omitempty"`
}

// BookingService is a quantity+price line item against an offered service.
type BookingService struct {
	ID        string  `json:"id"`
	BookingID string  `json:"bookingId"`
	ServiceID string  `json:"serviceId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type Payment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"bookingId"`
	Amount    float64       `json:"amount"`
	Method    string        `json:"paymentMethod"`
	Status    PaymentStatus `json:"status"`
	DueDate   time.Time     `json:"dueDate"`
	Notes     *string       `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// BookingFilter narrows booking listings. Nil fields are ignored.
type BookingFilter struct {
	Status    *BookingStatus
	EventType *EventType
	ClientID  *string
}
