package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/avevent/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// Create persists the booking together with its line items and payments
	// as a single transaction. A failure anywhere leaves nothing visible.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter, page domain.Page) ([]domain.Booking, int, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, client_id, event_name, event_type, event_date, end_date, venue, address,
	guest_count, budget, total_amount, notes, requirements, status, created_at, updated_at`

// bookingWhere builds the WHERE clause for a booking listing.
func bookingWhere(f domain.BookingFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if f.EventType != nil {
		args = append(args, *f.EventType)
		conds = append(conds, fmt.Sprintf("event_type=$%d", len(args)))
	}
	if f.ClientID != nil {
		args = append(args, *f.ClientID)
		conds = append(conds, fmt.Sprintf("client_id=$%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO bookings
		(id, client_id, event_name, event_type, event_date, end_date, venue, address, guest_count, budget, total_amount, notes, requirements, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`,
		booking.ID, booking.ClientID, booking.EventName, booking.EventType, booking.EventDate, booking.EndDate,
		booking.Venue, booking.Address, booking.GuestCount, booking.Budget, booking.TotalAmount,
		booking.Notes, booking.Requirements, booking.Status).
		Scan(&booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return err
	}

	for i := range booking.Services {
		item := &booking.Services[i]
		item.BookingID = booking.ID
		if _, err := tx.Exec(ctx, `INSERT INTO booking_services (id, booking_id, service_id, quantity, price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.BookingID, item.ServiceID, item.Quantity, item.Price); err != nil {
			return err
		}
	}

	for i := range booking.Payments {
		payment := &booking.Payments[i]
		payment.BookingID = booking.ID
		if err := tx.QueryRow(ctx, `INSERT INTO payments (id, booking_id, amount, method, status, due_date, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`,
			payment.ID, payment.BookingID, payment.Amount, payment.Method, payment.Status, payment.DueDate, payment.Notes).
			Scan(&payment.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		return nil, mapNotFound(err)
	}
	bookings := []domain.Booking{b}
	if err := r.attachChildren(ctx, bookings); err != nil {
		return nil, err
	}
	return &bookings[0], nil
}

func (r *PGBookingRepository) List(ctx context.Context, filter domain.BookingFilter, page domain.Page) ([]domain.Booking, int, error) {
	where, args := bookingWhere(filter)

	var total int
	if err := r.db.QueryRow(ctx, strings.TrimSpace(`SELECT count(*) FROM bookings `+where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings %s ORDER BY event_date ASC LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachChildren(ctx, bookings); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func scanBooking(row rowScanner, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.ClientID, &b.EventName, &b.EventType, &b.EventDate, &b.EndDate,
		&b.Venue, &b.Address, &b.GuestCount, &b.Budget, &b.TotalAmount,
		&b.Notes, &b.Requirements, &b.Status, &b.CreatedAt, &b.UpdatedAt)
}

// attachChildren loads line items, payments and client summaries for a page
// of bookings.
func (r *PGBookingRepository) attachChildren(ctx context.Context, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ids := make([]string, len(bookings))
	clientIDs := make([]string, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		clientIDs[i] = b.ClientID
	}

	services := make(map[string][]domain.BookingService)
	rows, err := r.db.Query(ctx, `SELECT id, booking_id, service_id, quantity, price
		FROM booking_services WHERE booking_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var s domain.BookingService
		if err := rows.Scan(&s.ID, &s.BookingID, &s.ServiceID, &s.Quantity, &s.Price); err != nil {
			rows.Close()
			return err
		}
		services[s.BookingID] = append(services[s.BookingID], s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	payments := make(map[string][]domain.Payment)
	rows, err = r.db.Query(ctx, `SELECT id, booking_id, amount, method, status, due_date, notes, created_at
		FROM payments WHERE booking_id = ANY($1) ORDER BY created_at DESC`, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.Status, &p.DueDate, &p.Notes, &p.CreatedAt); err != nil {
			rows.Close()
			return err
		}
		payments[p.BookingID] = append(payments[p.BookingID], p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	clients := make(map[string]*domain.ContactSummary)
	rows, err = r.db.Query(ctx, `SELECT id, name, email, phone FROM contacts WHERE id = ANY($1)`, clientIDs)
	if err != nil {
		return err
	}
	for rows.Next() {
		var c domain.ContactSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
			rows.Close()
			return err
		}
		clients[c.ID] = &c
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range bookings {
		b := &bookings[i]
		b.Services = services[b.ID]
		if b.Services == nil {
			b.Services = []domain.BookingService{}
		}
		b.Payments = payments[b.ID]
		if b.Payments == nil {
			b.Payments = []domain.Payment{}
		}
		b.Client = clients[b.ClientID]
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
