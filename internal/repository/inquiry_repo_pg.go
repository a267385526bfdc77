package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/avevent/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	GetByID(ctx context.Context, id string) (*domain.Inquiry, error)
	List(ctx context.Context, filter domain.InquiryFilter, page domain.Page) ([]domain.Inquiry, int, error)
	Update(ctx context.Context, id string, update domain.InquiryUpdate) (*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
	AddFollowUp(ctx context.Context, followUp *domain.FollowUp) error
}

type PGInquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) InquiryRepository {
	return &PGInquiryRepository{db: db}
}

// inquiryOrder lists urgent leads first, newest within each priority.
const inquiryOrder = `ORDER BY CASE priority
	WHEN 'URGENT' THEN 4
	WHEN 'HIGH' THEN 3
	WHEN 'MEDIUM' THEN 2
	WHEN 'LOW' THEN 1
	ELSE 0 END DESC, created_at DESC`

// inquiryWhere builds the WHERE clause for an inquiry listing. Returns an
// empty string when no filter is set.
func inquiryWhere(f domain.InquiryFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if f.Priority != nil {
		args = append(args, *f.Priority)
		conds = append(conds, fmt.Sprintf("priority=$%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

const inquiryColumns = `id, contact_id, name, email, phone, service_type, event_date, message,
	budget, guest_count, venue, status, priority, source, created_at, updated_at`

func (r *PGInquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	return r.db.QueryRow(ctx, `INSERT INTO inquiries
		(id, contact_id, name, email, phone, service_type, event_date, message, budget, guest_count, venue, status, priority, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`,
		inquiry.ID, inquiry.ContactID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.ServiceType,
		inquiry.EventDate, inquiry.Message, inquiry.Budget, inquiry.GuestCount, inquiry.Venue,
		inquiry.Status, inquiry.Priority, inquiry.Source).
		Scan(&inquiry.CreatedAt, &inquiry.UpdatedAt)
}

func (r *PGInquiryRepository) GetByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+inquiryColumns+` FROM inquiries WHERE id=$1`, id)
	var inq domain.Inquiry
	if err := row.Scan(&inq.ID, &inq.ContactID, &inq.Name, &inq.Email, &inq.Phone, &inq.ServiceType,
		&inq.EventDate, &inq.Message, &inq.Budget, &inq.GuestCount, &inq.Venue,
		&inq.Status, &inq.Priority, &inq.Source, &inq.CreatedAt, &inq.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}

	followUps, err := r.followUps(ctx, []string{inq.ID}, 0)
	if err != nil {
		return nil, err
	}
	inq.FollowUps = followUps[inq.ID]
	if inq.FollowUps == nil {
		inq.FollowUps = []domain.FollowUp{}
	}

	if inq.ContactID != nil {
		contact, err := r.contactSummary(ctx, *inq.ContactID)
		if err != nil && err != ErrNotFound {
			return nil, err
		}
		inq.Contact = contact
	}
	return &inq, nil
}

func (r *PGInquiryRepository) List(ctx context.Context, filter domain.InquiryFilter, page domain.Page) ([]domain.Inquiry, int, error) {
	where, args := inquiryWhere(filter)

	var total int
	if err := r.db.QueryRow(ctx, strings.TrimSpace(`SELECT count(*) FROM inquiries `+where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM inquiries %s %s LIMIT $%d OFFSET $%d`,
		inquiryColumns, where, inquiryOrder, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	inquiries := []domain.Inquiry{}
	var ids []string
	for rows.Next() {
		var inq domain.Inquiry
		if err := rows.Scan(&inq.ID, &inq.ContactID, &inq.Name, &inq.Email, &inq.Phone, &inq.ServiceType,
			&inq.EventDate, &inq.Message, &inq.Budget, &inq.GuestCount, &inq.Venue,
			&inq.Status, &inq.Priority, &inq.Source, &inq.CreatedAt, &inq.UpdatedAt); err != nil {
			return nil, 0, err
		}
		inquiries = append(inquiries, inq)
		ids = append(ids, inq.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		// List rows carry only the three most recent follow-ups.
		followUps, err := r.followUps(ctx, ids, 3)
		if err != nil {
			return nil, 0, err
		}
		for i := range inquiries {
			inquiries[i].FollowUps = followUps[inquiries[i].ID]
			if inquiries[i].FollowUps == nil {
				inquiries[i].FollowUps = []domain.FollowUp{}
			}
		}
		if err := r.attachContacts(ctx, inquiries); err != nil {
			return nil, 0, err
		}
	}
	return inquiries, total, nil
}

func (r *PGInquiryRepository) Update(ctx context.Context, id string, update domain.InquiryUpdate) (*domain.Inquiry, error) {
	sets := []string{"updated_at=now()"}
	var args []any
	if update.Status != nil {
		args = append(args, *update.Status)
		sets = append(sets, fmt.Sprintf("status=$%d", len(args)))
	}
	if update.Priority != nil {
		args = append(args, *update.Priority)
		sets = append(sets, fmt.Sprintf("priority=$%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE inquiries SET %s WHERE id=$%d RETURNING id`, strings.Join(sets, ", "), len(args))
	var updatedID string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, mapNotFound(err)
	}

	if update.Notes != nil && strings.TrimSpace(*update.Notes) != "" {
		followUp := &domain.FollowUp{ID: newID(), InquiryID: id, Note: strings.TrimSpace(*update.Notes)}
		if err := r.AddFollowUp(ctx, followUp); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

func (r *PGInquiryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM inquiries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGInquiryRepository) AddFollowUp(ctx context.Context, followUp *domain.FollowUp) error {
	return r.db.QueryRow(ctx, `INSERT INTO inquiry_follow_ups (id, inquiry_id, note)
		VALUES ($1, $2, $3) RETURNING created_at`,
		followUp.ID, followUp.InquiryID, followUp.Note).Scan(&followUp.CreatedAt)
}

// followUps loads follow-up notes for the given inquiries, newest first,
// keeping at most perInquiry per inquiry (0 keeps all).
func (r *PGInquiryRepository) followUps(ctx context.Context, inquiryIDs []string, perInquiry int) (map[string][]domain.FollowUp, error) {
	rows, err := r.db.Query(ctx, `SELECT id, inquiry_id, note, created_at FROM inquiry_follow_ups
		WHERE inquiry_id = ANY($1) ORDER BY created_at DESC`, inquiryIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.FollowUp)
	for rows.Next() {
		var f domain.FollowUp
		if err := rows.Scan(&f.ID, &f.InquiryID, &f.Note, &f.CreatedAt); err != nil {
			return nil, err
		}
		if perInquiry > 0 && len(out[f.InquiryID]) >= perInquiry {
			continue
		}
		out[f.InquiryID] = append(out[f.InquiryID], f)
	}
	return out, rows.Err()
}

func (r *PGInquiryRepository) contactSummary(ctx context.Context, contactID string) (*domain.ContactSummary, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, phone FROM contacts WHERE id=$1`, contactID)
	var c domain.ContactSummary
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (r *PGInquiryRepository) attachContacts(ctx context.Context, inquiries []domain.Inquiry) error {
	var ids []string
	for _, inq := range inquiries {
		if inq.ContactID != nil {
			ids = append(ids, *inq.ContactID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, email, phone FROM contacts WHERE id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[string]*domain.ContactSummary)
	for rows.Next() {
		var c domain.ContactSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
			return err
		}
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range inquiries {
		if inquiries[i].ContactID != nil {
			inquiries[i].Contact = byID[*inquiries[i].ContactID]
		}
	}
	return nil
}

var _ InquiryRepository = (*PGInquiryRepository)(nil)
