package domain

import "time"

// Testimonial is client feedback. New submissions are always private until a
// staff member approves them.
type Testimonial struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"clientId"`
	Name      string     `json:"name"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	EventType *EventType `json:"eventType,omitempty"`
	IsPublic  bool       `json:"isPublic"`
	Featured  bool       `json:"featured"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Client *ContactSummary `json:"client,omitempty"`
}

// TestimonialFilter narrows testimonial listings. IsPublic is always set;
// public callers only ever see approved entries.
type TestimonialFilter struct {
	IsPublic  bool
	Featured  *bool
	EventType *EventType
}
