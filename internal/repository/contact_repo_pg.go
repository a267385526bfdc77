package repository

import (
	"context"

	"github.com/avevent/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	GetByEmail(ctx context.Context, email string) (*domain.Contact, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
}

type PGContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) ContactRepository {
	return &PGContactRepository{db: db}
}

func (r *PGContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	err := r.db.QueryRow(ctx, `INSERT INTO contacts (id, name, email, phone, password_hash, role, verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		contact.ID, contact.Name, contact.Email, contact.Phone, contact.PasswordHash, contact.Role, contact.Verified).
		Scan(&contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *PGContactRepository) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, phone, password_hash, role, verified, created_at, updated_at
		FROM contacts WHERE email=$1`, email)
	return scanContact(row)
}

func (r *PGContactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, phone, password_hash, role, verified, created_at, updated_at
		FROM contacts WHERE id=$1`, id)
	return scanContact(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var c domain.Contact
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.PasswordHash, &c.Role, &c.Verified, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

var _ ContactRepository = (*PGContactRepository)(nil)
