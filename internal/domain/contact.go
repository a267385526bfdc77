package domain

import "time"

type ContactRole string

const (
	ContactRoleClient ContactRole = "CLIENT"
	ContactRoleStaff  ContactRole = "STAFF"
	ContactRoleAdmin  ContactRole = "ADMIN"
)

// Contact is a person record (client or lead) identified uniquely by e-mail.
// Public intake provisions contacts implicitly; account management owns the
// rest of their lifecycle.
type Contact struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        *string     `json:"phone,omitempty"`
	PasswordHash string      `json:"-"`
	Role         ContactRole `json:"role"`
	Verified     bool        `json:"verified"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ContactSummary is the reduced shape embedded in list and detail responses.
type ContactSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

func (c *Contact) Summary() *ContactSummary {
	return &ContactSummary{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}
