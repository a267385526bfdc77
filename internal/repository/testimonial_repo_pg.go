package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/avevent/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	List(ctx context.Context, filter domain.TestimonialFilter, page domain.Page) ([]domain.Testimonial, int, error)
}

type PGTestimonialRepository struct {
	db *pgxpool.Pool
}

func NewTestimonialRepository(db *pgxpool.Pool) TestimonialRepository {
	return &PGTestimonialRepository{db: db}
}

// testimonialWhere builds the WHERE clause for a testimonial listing.
// IsPublic is always a condition; public callers never see unapproved rows.
func testimonialWhere(f domain.TestimonialFilter) (string, []any) {
	conds := []string{"is_public=$1"}
	args := []any{f.IsPublic}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		conds = append(conds, fmt.Sprintf("featured=$%d", len(args)))
	}
	if f.EventType != nil {
		args = append(args, *f.EventType)
		conds = append(conds, fmt.Sprintf("event_type=$%d", len(args)))
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *PGTestimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	return r.db.QueryRow(ctx, `INSERT INTO testimonials
		(id, client_id, name, rating, comment, event_type, is_public, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		testimonial.ID, testimonial.ClientID, testimonial.Name, testimonial.Rating, testimonial.Comment,
		testimonial.EventType, testimonial.IsPublic, testimonial.Featured).
		Scan(&testimonial.CreatedAt, &testimonial.UpdatedAt)
}

func (r *PGTestimonialRepository) List(ctx context.Context, filter domain.TestimonialFilter, page domain.Page) ([]domain.Testimonial, int, error) {
	where, args := testimonialWhere(filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM testimonials `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT t.id, t.client_id, t.name, t.rating, t.comment, t.event_type,
			t.is_public, t.featured, t.created_at, t.updated_at, c.id, c.name, c.email
		FROM testimonials t
		JOIN contacts c ON c.id = t.client_id
		%s ORDER BY t.featured DESC, t.created_at DESC LIMIT $%d OFFSET $%d`,
		qualifyTestimonialWhere(where), len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	testimonials := []domain.Testimonial{}
	for rows.Next() {
		var t domain.Testimonial
		var client domain.ContactSummary
		if err := rows.Scan(&t.ID, &t.ClientID, &t.Name, &t.Rating, &t.Comment, &t.EventType,
			&t.IsPublic, &t.Featured, &t.CreatedAt, &t.UpdatedAt,
			&client.ID, &client.Name, &client.Email); err != nil {
			return nil, 0, err
		}
		t.Client = &client
		testimonials = append(testimonials, t)
	}
	return testimonials, total, rows.Err()
}

// qualifyTestimonialWhere prefixes filter columns with the testimonials
// alias for the joined listing query.
func qualifyTestimonialWhere(where string) string {
	where = strings.ReplaceAll(where, "is_public=", "t.is_public=")
	where = strings.ReplaceAll(where, "featured=", "t.featured=")
	where = strings.ReplaceAll(where, "event_type=", "t.event_type=")
	return where
}

var _ TestimonialRepository = (*PGTestimonialRepository)(nil)
