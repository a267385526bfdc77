package repository

import (
	"context"

	"github.com/avevent/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	GetByID(ctx context.Context, id string) (*domain.StaffUser, error)
}

type PGStaffRepository struct {
	db *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) StaffRepository {
	return &PGStaffRepository{db: db}
}

func (r *PGStaffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password_hash, role, is_active, created_at
		FROM staff_users WHERE email=$1`, email)
	return scanStaff(row)
}

func (r *PGStaffRepository) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password_hash, role, is_active, created_at
		FROM staff_users WHERE id=$1`, id)
	return scanStaff(row)
}

func scanStaff(row rowScanner) (*domain.StaffUser, error) {
	var u domain.StaffUser
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &u, nil
}

var _ StaffRepository = (*PGStaffRepository)(nil)
