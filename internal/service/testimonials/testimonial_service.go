// Package testimonials implements testimonial intake and the public
// listing. New submissions are always private until staff approval.
package testimonials

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/avevent/backend/internal/cache"
	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/repository"
	"github.com/avevent/backend/internal/service/identity"
	"github.com/avevent/backend/internal/validate"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 6
	cacheEntity     = "testimonials"
)

type TestimonialUseCase interface {
	Submit(ctx context.Context, input SubmitInput) (*domain.Testimonial, error)
	List(ctx context.Context, filter domain.TestimonialFilter, page, limit int) ([]domain.Testimonial, domain.Pagination, error)
}

type ContactResolver interface {
	Resolve(ctx context.Context, clientID *string, details *identity.ContactDetails) (string, error)
}

// ListingCache holds recently served public pages.
type ListingCache interface {
	GetListing(ctx context.Context, entity string, page, limit int) (*cache.ListingPage, error)
	SetListing(ctx context.Context, entity string, page, limit int, listing cache.ListingPage) error
	InvalidateListing(ctx context.Context, entity string) error
}

type TestimonialService struct {
	testimonials repository.TestimonialRepository
	resolver     ContactResolver
	cache        ListingCache
}

func NewTestimonialService(testimonials repository.TestimonialRepository, resolver ContactResolver, listingCache ListingCache) *TestimonialService {
	return &TestimonialService{
		testimonials: testimonials,
		resolver:     resolver,
		cache:        listingCache,
	}
}

type SubmitInput struct {
	ClientID  *string `json:"clientId,omitempty"`
	Name      string  `json:"name"`
	Rating    int     `json:"rating"`
	Comment   string  `json:"comment"`
	EventType *string `json:"eventType,omitempty"`
	Email     *string `json:"email,omitempty"`
}

func (in SubmitInput) Validate() error {
	var errs validate.Errors
	errs.MinLen("name", in.Name, 2, "Name must be at least 2 characters")
	errs.IntRange("rating", in.Rating, 1, 5, "Rating must be between 1 and 5")
	errs.MinLen("comment", in.Comment, 10, "Comment must be at least 10 characters")
	if in.EventType != nil && *in.EventType != "" {
		errs.OneOf("eventType", *in.EventType, domain.ValidEventType, "Invalid event type")
	}
	if in.Email != nil && *in.Email != "" && !validate.ValidEmail(*in.Email) {
		errs.Add("email", "Invalid email address")
	}
	return errs.Err()
}

func (s *TestimonialService) Submit(ctx context.Context, input SubmitInput) (*domain.Testimonial, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var details *identity.ContactDetails
	if input.Email != nil && *input.Email != "" {
		details = &identity.ContactDetails{Name: input.Name, Email: *input.Email}
	}
	clientID, err := s.resolver.Resolve(ctx, input.ClientID, details)
	if err != nil {
		return nil, err
	}

	testimonial := &domain.Testimonial{
		ID:       uuid.NewString(),
		ClientID: clientID,
		Name:     strings.TrimSpace(input.Name),
		Rating:   input.Rating,
		Comment:  strings.TrimSpace(input.Comment),
		// Publication is an explicit staff decision; submitted values for
		// either flag are never honored.
		IsPublic: false,
		Featured: false,
	}
	if input.EventType != nil && *input.EventType != "" {
		eventType := domain.EventType(*input.EventType)
		testimonial.EventType = &eventType
	}

	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateListing(ctx, cacheEntity); err != nil {
			slog.Warn("failed to invalidate testimonial cache", "error", err)
		}
	}
	return testimonial, nil
}

func (s *TestimonialService) List(ctx context.Context, filter domain.TestimonialFilter, page, limit int) ([]domain.Testimonial, domain.Pagination, error) {
	p := domain.NormalizePage(page, limit, defaultPageSize)

	cacheable := s.cache != nil && filter.IsPublic && filter.Featured == nil && filter.EventType == nil
	if cacheable {
		if cached, err := s.cache.GetListing(ctx, cacheEntity, p.Number, p.Limit); err == nil && cached != nil {
			var testimonials []domain.Testimonial
			if err := json.Unmarshal(cached.Items, &testimonials); err == nil {
				return testimonials, domain.NewPagination(p, cached.Total), nil
			}
		}
	}

	testimonials, total, err := s.testimonials.List(ctx, filter, p)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	if cacheable {
		if items, err := json.Marshal(testimonials); err == nil {
			_ = s.cache.SetListing(ctx, cacheEntity, p.Number, p.Limit, cache.ListingPage{Items: items, Total: total})
		}
	}
	return testimonials, domain.NewPagination(p, total), nil
}

var _ TestimonialUseCase = (*TestimonialService)(nil)
