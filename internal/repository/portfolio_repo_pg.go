package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avevent/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PortfolioRepository interface {
	Create(ctx context.Context, item *domain.PortfolioItem) error
	List(ctx context.Context, filter domain.PortfolioFilter, page domain.Page) ([]domain.PortfolioItem, int, error)
}

type PGPortfolioRepository struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) PortfolioRepository {
	return &PGPortfolioRepository{db: db}
}

// portfolioWhere builds the WHERE clause for a portfolio listing.
func portfolioWhere(f domain.PortfolioFilter) (string, []any) {
	var conds []string
	var args []any
	if f.EventType != nil {
		args = append(args, *f.EventType)
		conds = append(conds, fmt.Sprintf("event_type=$%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		conds = append(conds, fmt.Sprintf("featured=$%d", len(args)))
	}
	if f.IsPublic != nil {
		args = append(args, *f.IsPublic)
		conds = append(conds, fmt.Sprintf("is_public=$%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// EncodeList serializes an ordered string list for the text columns holding
// images, videos and tags. Empty lists encode as NULL.
func EncodeList(values []string) (*string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

// DecodeList is the inverse of EncodeList. NULL and empty text decode to an
// empty list, never nil, so responses always render JSON arrays.
func DecodeList(stored *string) ([]string, error) {
	if stored == nil || *stored == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(*stored), &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func (r *PGPortfolioRepository) Create(ctx context.Context, item *domain.PortfolioItem) error {
	images, err := EncodeList(item.Images)
	if err != nil {
		return err
	}
	videos, err := EncodeList(item.Videos)
	if err != nil {
		return err
	}
	tags, err := EncodeList(item.Tags)
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, `INSERT INTO portfolio_items
		(id, title, description, event_type, location, event_date, images, videos, tags, featured, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		item.ID, item.Title, item.Description, item.EventType, item.Location, item.EventDate,
		images, videos, tags, item.Featured, item.IsPublic).
		Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
		return err
	}

	// Round-trip through the encoding so the caller sees exactly what a
	// subsequent read will return.
	if item.Images, err = DecodeList(images); err != nil {
		return err
	}
	if item.Videos, err = DecodeList(videos); err != nil {
		return err
	}
	item.Tags, err = DecodeList(tags)
	return err
}

func (r *PGPortfolioRepository) List(ctx context.Context, filter domain.PortfolioFilter, page domain.Page) ([]domain.PortfolioItem, int, error) {
	where, args := portfolioWhere(filter)

	var total int
	if err := r.db.QueryRow(ctx, strings.TrimSpace(`SELECT count(*) FROM portfolio_items `+where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT id, title, description, event_type, location, event_date,
			images, videos, tags, featured, is_public, created_at, updated_at
		FROM portfolio_items %s
		ORDER BY featured DESC, event_date DESC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []domain.PortfolioItem{}
	for rows.Next() {
		var item domain.PortfolioItem
		var images, videos, tags *string
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.EventType, &item.Location,
			&item.EventDate, &images, &videos, &tags, &item.Featured, &item.IsPublic,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if item.Images, err = DecodeList(images); err != nil {
			return nil, 0, err
		}
		if item.Videos, err = DecodeList(videos); err != nil {
			return nil, 0, err
		}
		if item.Tags, err = DecodeList(tags); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

var _ PortfolioRepository = (*PGPortfolioRepository)(nil)
