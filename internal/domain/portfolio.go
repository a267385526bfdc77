package domain

import "time"

// PortfolioItem is a showcase entry. Images, videos and tags are ordered
// lists; the storage layer serializes them to text and must hand back the
// identical lists on every read.
type PortfolioItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	EventType   EventType  `json:"eventType"`
	Location    *string    `json:"location,omitempty"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	Images      []string   `json:"images"`
	Videos      []string   `json:"videos"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	IsPublic    bool       `json:"isPublic"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PortfolioFilter narrows portfolio listings. Nil fields are ignored.
type PortfolioFilter struct {
	EventType *EventType
	Featured  *bool
	IsPublic  *bool
}
