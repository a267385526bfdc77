// Package identity resolves the durable contact record behind a public
// submission: an explicit client reference is used as-is, otherwise the
// submitted e-mail finds or provisions a contact.
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/avevent/backend/internal/auth"
	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/repository"
	"github.com/google/uuid"
)

// ErrIdentityRequired is returned when neither a client reference nor usable
// contact details accompany a submission.
var ErrIdentityRequired = errors.New("client identity required")

// ContactDetails is the submitted contact tuple used for find-or-create.
type ContactDetails struct {
	Name  string
	Email string
	Phone *string
}

type Resolver struct {
	contacts repository.ContactRepository
}

func NewResolver(contacts repository.ContactRepository) *Resolver {
	return &Resolver{contacts: contacts}
}

// Resolve returns the contact id for a submission. An explicit clientID wins
// without a lookup. Otherwise the e-mail is matched against existing
// contacts, creating one when none exists. The created contact carries a
// placeholder credential that cannot be used to sign in.
func (r *Resolver) Resolve(ctx context.Context, clientID *string, details *ContactDetails) (string, error) {
	if clientID != nil && *clientID != "" {
		return *clientID, nil
	}
	if details == nil || strings.TrimSpace(details.Email) == "" {
		return "", ErrIdentityRequired
	}

	email := strings.ToLower(strings.TrimSpace(details.Email))

	existing, err := r.contacts.GetByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	placeholder, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		return "", err
	}

	contact := &domain.Contact{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(details.Name),
		Email:        email,
		Phone:        details.Phone,
		PasswordHash: placeholder,
		Role:         domain.ContactRoleClient,
	}
	err = r.contacts.Create(ctx, contact)
	if err == nil {
		return contact.ID, nil
	}

	// A concurrent submission with the same e-mail may have won the insert;
	// the unique index turns that race into a retryable lookup.
	if errors.Is(err, repository.ErrDuplicateEmail) {
		existing, lookupErr := r.contacts.GetByEmail(ctx, email)
		if lookupErr != nil {
			return "", lookupErr
		}
		return existing.ID, nil
	}
	return "", err
}
