package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// EnrollmentFilter captures admin listing parameters.
type EnrollmentFilter struct {
	Status *domain.EnrollmentStatus
	Page   int
	Limit  int
}

// EnrollmentUpdate carries the admin-editable fields; nil fields are left untouched.
type EnrollmentUpdate struct {
	Status     *domain.EnrollmentStatus
	AdminNotes *string
	AssignedTo *string
}

// EnrollmentRepository encapsulates coding enrollment persistence.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.CodingEnrollment) error
	GetByID(ctx context.Context, id string) (*domain.CodingEnrollment, error)
	List(ctx context.Context, filter EnrollmentFilter) (Page[domain.CodingEnrollment], error)
	ListByEmail(ctx context.Context, email string) ([]domain.CodingEnrollment, error)
	ListByStatus(ctx context.Context, status domain.EnrollmentStatus) ([]domain.CodingEnrollment, error)
	Update(ctx context.Context, id string, update EnrollmentUpdate) (*domain.CodingEnrollment, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[domain.EnrollmentStatus]int, error)
	ExistsWithStatus(ctx context.Context, email string, statuses ...domain.EnrollmentStatus) (bool, error)
}

type enrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository instantiates repository.
func NewEnrollmentRepository(pool *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{pool: pool}
}

const enrollmentColumns = `id, full_name, email, phone, age, track, experience, has_laptop,
       motivation, consent_confirmed, status, admin_notes, assigned_to, created_at, updated_at`

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *domain.CodingEnrollment) error {
	const query = `
        INSERT INTO coding_enrollments
            (full_name, email, phone, age, track, experience, has_laptop,
             motivation, consent_confirmed, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		enrollment.FullName,
		enrollment.Email,
		enrollment.Phone,
		enrollment.Age,
		enrollment.Track,
		enrollment.Experience,
		enrollment.HasLaptop,
		enrollment.Motivation,
		enrollment.ConsentConfirmed,
		enrollment.Status,
	).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id string) (*domain.CodingEnrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM coding_enrollments WHERE id=$1`, enrollmentColumns)
	return scanEnrollmentRow(r.pool.QueryRow(ctx, query, id))
}

func (r *enrollmentRepository) List(ctx context.Context, filter EnrollmentFilter) (Page[domain.CodingEnrollment], error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = "WHERE status=$1"
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM coding_enrollments %s`, where), args...).Scan(&total); err != nil {
		return Page[domain.CodingEnrollment]{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM coding_enrollments %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		enrollmentColumns, where, filter.Limit, Offset(filter.Page, filter.Limit))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return Page[domain.CodingEnrollment]{}, err
	}
	defer rows.Close()

	items, err := scanEnrollments(rows)
	if err != nil {
		return Page[domain.CodingEnrollment]{}, err
	}
	return NewPage(items, total, filter.Page, filter.Limit), nil
}

func (r *enrollmentRepository) ListByEmail(ctx context.Context, email string) ([]domain.CodingEnrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM coding_enrollments WHERE email=$1 ORDER BY created_at DESC`, enrollmentColumns)
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

func (r *enrollmentRepository) ListByStatus(ctx context.Context, status domain.EnrollmentStatus) ([]domain.CodingEnrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM coding_enrollments WHERE status=$1 ORDER BY created_at DESC`, enrollmentColumns)
	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEnrollments(rows)
}

func (r *enrollmentRepository) Update(ctx context.Context, id string, update EnrollmentUpdate) (*domain.CodingEnrollment, error) {
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

	query := fmt.Sprintf(`UPDATE coding_enrollments SET %s WHERE id=$%d RETURNING %s`,
		joinSet(set), len(args), enrollmentColumns)
	return scanEnrollmentRow(r.pool.QueryRow(ctx, query, args...))
}

func (r *enrollmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM coding_enrollments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *enrollmentRepository) CountByStatus(ctx context.Context) (map[domain.EnrollmentStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM coding_enrollments GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.EnrollmentStatus]int{}
	for rows.Next() {
		var status domain.EnrollmentStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *enrollmentRepository) ExistsWithStatus(ctx context.Context, email string, statuses ...domain.EnrollmentStatus) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM coding_enrollments WHERE email=$1 AND status = ANY($2))`
	var exists bool
	err := r.pool.QueryRow(ctx, query, email, toStrings(statuses)).Scan(&exists)
	return exists, err
}

func scanEnrollmentRow(row pgx.Row) (*domain.CodingEnrollment, error) {
	var e domain.CodingEnrollment
	if err := row.Scan(
		&e.ID,
		&e.FullName,
		&e.Email,
		&e.Phone,
		&e.Age,
		&e.Track,
		&e.Experience,
		&e.HasLaptop,
		&e.Motivation,
		&e.ConsentConfirmed,
		&e.Status,
		&e.AdminNotes,
		&e.AssignedTo,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEnrollments(rows pgx.Rows) ([]domain.CodingEnrollment, error) {
	var result []domain.CodingEnrollment
	for rows.Next() {
		enrollment, err := scanEnrollmentRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *enrollment)
	}
	return result, rows.Err()
}
