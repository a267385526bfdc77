// Package portfolio implements staff-side portfolio creation and the cached
// public showcase listing.
package portfolio

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/avevent/backend/internal/cache"
	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/repository"
	"github.com/avevent/backend/internal/validate"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 12
	cacheEntity     = "portfolio"
)

type PortfolioUseCase interface {
	Create(ctx context.Context, input CreateInput) (*domain.PortfolioItem, error)
	List(ctx context.Context, filter domain.PortfolioFilter, page, limit int) ([]domain.PortfolioItem, domain.Pagination, error)
}

type ListingCache interface {
	GetListing(ctx context.Context, entity string, page, limit int) (*cache.ListingPage, error)
	SetListing(ctx context.Context, entity string, page, limit int, listing cache.ListingPage) error
	InvalidateListing(ctx context.Context, entity string) error
}

type PortfolioService struct {
	portfolio repository.PortfolioRepository
	cache     ListingCache
}

func NewPortfolioService(portfolio repository.PortfolioRepository, listingCache ListingCache) *PortfolioService {
	return &PortfolioService{portfolio: portfolio, cache: listingCache}
}

type CreateInput struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	EventType   string   `json:"eventType"`
	Location    *string  `json:"location,omitempty"`
	EventDate   *string  `json:"eventDate,omitempty"`
	Images      []string `json:"images,omitempty"`
	Videos      []string `json:"videos,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
	IsPublic    *bool    `json:"isPublic,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (in CreateInput) Validate() error {
	var errs validate.Errors
	errs.MinLen("title", in.Title, 2, "Title must be at least 2 characters")
	errs.OneOf("eventType", in.EventType, domain.ValidEventType, "Invalid event type")
	if in.EventDate != nil && *in.EventDate != "" {
		if _, err := parseDate(*in.EventDate); err != nil {
			errs.Add("eventDate", "Invalid date")
		}
	}
	return errs.Err()
}

func (s *PortfolioService) Create(ctx context.Context, input CreateInput) (*domain.PortfolioItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := &domain.PortfolioItem{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		EventType:   domain.EventType(input.EventType),
		Location:    input.Location,
		Images:      input.Images,
		Videos:      input.Videos,
		Tags:        input.Tags,
		// Items are public unless explicitly withheld; featuring is opt-in.
		Featured: input.Featured != nil && *input.Featured,
		IsPublic: input.IsPublic == nil || *input.IsPublic,
	}
	if input.EventDate != nil && *input.EventDate != "" {
		date, _ := parseDate(*input.EventDate)
		item.EventDate = &date
	}

	if err := s.portfolio.Create(ctx, item); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateListing(ctx, cacheEntity); err != nil {
			slog.Warn("failed to invalidate portfolio cache", "error", err)
		}
	}
	return item, nil
}

func (s *PortfolioService) List(ctx context.Context, filter domain.PortfolioFilter, page, limit int) ([]domain.PortfolioItem, domain.Pagination, error) {
	p := domain.NormalizePage(page, limit, defaultPageSize)

	cacheable := s.cache != nil && filter.EventType == nil && filter.Featured == nil &&
		filter.IsPublic != nil && *filter.IsPublic
	if cacheable {
		if cached, err := s.cache.GetListing(ctx, cacheEntity, p.Number, p.Limit); err == nil && cached != nil {
			var items []domain.PortfolioItem
			if err := json.Unmarshal(cached.Items, &items); err == nil {
				return items, domain.NewPagination(p, cached.Total), nil
			}
		}
	}

	items, total, err := s.portfolio.List(ctx, filter, p)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	if cacheable {
		if payload, err := json.Marshal(items); err == nil {
			_ = s.cache.SetListing(ctx, cacheEntity, p.Number, p.Limit, cache.ListingPage{Items: payload, Total: total})
		}
	}
	return items, domain.NewPagination(p, total), nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

var _ PortfolioUseCase = (*PortfolioService)(nil)
