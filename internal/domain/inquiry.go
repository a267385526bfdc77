package domain

import "time"

type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "PENDING"
	InquiryStatusContacted InquiryStatus = "CONTACTED"
	InquiryStatusQuoted    InquiryStatus = "QUOTED"
	InquiryStatusConverted InquiryStatus = "CONVERTED"
	InquiryStatusLost      InquiryStatus = "LOST"
	InquiryStatusSpam      InquiryStatus = "SPAM"
)

func ValidInquiryStatus(v string) bool {
	switch InquiryStatus(v) {
	case InquiryStatusPending, InquiryStatusContacted, InquiryStatusQuoted,
		InquiryStatusConverted, InquiryStatusLost, InquiryStatusSpam:
		return true
	}
	return false
}

type InquiryPriority string

const (
	PriorityLow    InquiryPriority = "LOW"
	PriorityMedium InquiryPriority = "MEDIUM"
	PriorityHigh   InquiryPriority = "HIGH"
	PriorityUrgent InquiryPriority = "URGENT"
)

func ValidInquiryPriority(v string) bool {
	switch InquiryPriority(v) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank orders priorities for listing: URGENT sorts before HIGH before MEDIUM
// before LOW. Unknown values sink to the bottom.
func (p InquiryPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// InquirySource tags every public submission; staff-entered inquiries are out
// of scope for the intake pipeline.
const InquirySource = "Website Contact Form"

// Inquiry is an unconfirmed lead submitted through the public contact form.
// Contact details are kept inline as submitted; ContactID links the lead to
// the resolved contact record.
type Inquiry struct {
	ID          string          `json:"id"`
	ContactID   *string         `json:"contactId,omitempty"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	ServiceType string          `json:"serviceType"`
	EventDate   *time.Time      `json:"eventDate,omitempty"`
	Message     *string         `json:"message,omitempty"`
	Budget      *float64        `json:"budget,omitempty"`
	GuestCount  *int            `json:"guestCount,omitempty"`
	Venue       *string         `json:"venue,omitempty"`
	Status      InquiryStatus   `json:"status"`
	Priority    InquiryPriority `json:"priority"`
	Source      string          `json:"source"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Contact   *ContactSummary `json:"contact,omitempty"`
	FollowUps []FollowUp      `json:"followUps,omitempty"`
}

// FollowUp is a staff note attached to an inquiry.
type FollowUp struct {
	ID        string    `json:"id"`
	InquiryID string    `json:"inquiryId"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// InquiryFilter narrows inquiry listings. Nil fields are ignored.
type InquiryFilter struct {
	Status   *InquiryStatus
	Priority *InquiryPriority
}

// InquiryUpdate carries the staff-editable subset; nil fields are untouched.
type InquiryUpdate struct {
	Status   *InquiryStatus
	Priority *InquiryPriority
	Notes    *string
}
