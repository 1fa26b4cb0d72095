package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// BookingFilter captures admin listing parameters.
type BookingFilter struct {
	Status *domain.BookingStatus
	Page   int
	Limit  int
}

// BookingUpdate carries the admin-editable fields; nil fields are left untouched.
type BookingUpdate struct {
	Status     *domain.BookingStatus
	AdminNotes *string
	AssignedTo *string
}

// BookingRepository encapsulates booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) (Page[domain.Booking], error)
	ListByEmail(ctx context.Context, email string) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	Update(ctx context.Context, id string, update BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
	CountOverlapping(ctx context.Context, preferredAt time.Time, window time.Duration) (int, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, name, email, phone, shoot_type, location, preferred_at, message,
       status, admin_notes, assigned_to, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (name, email, phone, shoot_type, location, preferred_at, message, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.ShootType,
		booking.Location,
		booking.PreferredAt,
		booking.Message,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id=$1`, bookingColumns)
	return scanBookingRow(r.pool.QueryRow(ctx, query, id))
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) (Page[domain.Booking], error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = "WHERE status=$1"
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM bookings %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return Page[domain.Booking]{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings %s ORDER BY preferred_at ASC LIMIT %d OFFSET %d`,
		bookingColumns, where, filter.Limit, Offset(filter.Page, filter.Limit))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return Page[domain.Booking]{}, err
	}
	defer rows.Close()

	items, err := scanBookings(rows)
	if err != nil {
		return Page[domain.Booking]{}, err
	}
	return NewPage(items, total, filter.Page, filter.Limit), nil
}

func (r *bookingRepository) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE email=$1 ORDER BY created_at DESC`, bookingColumns)
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE status=$1 ORDER BY preferred_at ASC`, bookingColumns)
	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) Update(ctx context.Context, id string, update BookingUpdate) (*domain.Booking, error) {
	set := []string{"updated_at=NOW()"}
	args := []any{}
	if update.Status != nil {
		args = append(args, *update.Status)
		set = append(set, fmt.Sprintf("status=$%d", len(args)))
	}
	if update.AdminNotes != nil {
		args = append(args, *update.AdminNotes)
		set = append(set, fmt.Sprintf("admin_notes=$%d", len(args)))
	}
	if update.AssignedTo != nil {
		args = append(args, *update.AssignedTo)
		set = append(set, fmt.Sprintf("assigned_to=$%d", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE bookings SET %s WHERE id=$%d RETURNING %s`,
		joinSet(set), len(args), bookingColumns)
	return scanBookingRow(r.pool.QueryRow(ctx, query, args...))
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.BookingStatus]int{}
	for rows.Next() {
		var status domain.BookingStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// CountOverlapping counts pending or confirmed bookings whose preferred
// time falls within the window (inclusive on both ends) around preferredAt.
func (r *bookingRepository) CountOverlapping(ctx context.Context, preferredAt time.Time, window time.Duration) (int, error) {
	const query = `
        SELECT COUNT(*) FROM bookings
        WHERE status IN ($1,$2) AND preferred_at BETWEEN $3 AND $4`
	var count int
	err := r.pool.QueryRow(ctx, query,
		domain.BookingStatusPending,
		domain.BookingStatusConfirmed,
		preferredAt.Add(-window),
		preferredAt.Add(window),
	).Scan(&count)
	return count, err
}

func scanBookingRow(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.ShootType,
		&b.Location,
		&b.PreferredAt,
		&b.Message,
		&b.Status,
		&b.AdminNotes,
		&b.AssignedTo,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var result []domain.Booking
	for rows.Next() {
		booking, err := scanBookingRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *booking)
	}
	return result, rows.Err()
}
