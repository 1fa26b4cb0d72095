package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// InternshipFilter captures admin listing parameters.
type InternshipFilter struct {
	Status *domain.InternshipStatus
	Page   int
	Limit  int
}

// InternshipUpdate carries the admin-editable fields; nil fields are left untouched.
type InternshipUpdate struct {
	Status     *domain.InternshipStatus
	AdminNotes *string
	AssignedTo *string
}

// InternshipRepository encapsulates internship application persistence.
type InternshipRepository interface {
	Create(ctx context.Context, app *domain.InternshipApplication) error
	GetByID(ctx context.Context, id string) (*domain.InternshipApplication, error)
	List(ctx context.Context, filter InternshipFilter) (Page[domain.InternshipApplication], error)
	ListByEmail(ctx context.Context, email string) ([]domain.InternshipApplication, error)
	ListByStatus(ctx context.Context, status domain.InternshipStatus) ([]domain.InternshipApplication, error)
	Update(ctx context.Context, id string, update InternshipUpdate) (*domain.InternshipApplication, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[domain.InternshipStatus]int, error)
	ExistsWithStatus(ctx context.Context, email string, status domain.InternshipStatus) (bool, error)
}

type internshipRepository struct {
	pool *pgxpool.Pool
}

// NewInternshipRepository instantiates repository.
func NewInternshipRepository(pool *pgxpool.Pool) InternshipRepository {
	return &internshipRepository{pool: pool}
}

const internshipColumns = `id, full_name, email, phone, university, major, interests,
       availability_start, availability_end, resume_url, motivation,
       status, admin_notes, assigned_to, created_at, updated_at`

func (r *internshipRepository) Create(ctx context.Context, app *domain.InternshipApplication) error {
	const query = `
        INSERT INTO internship_applications
            (full_name, email, phone, university, major, interests,
             availability_start, availability_end, resume_url, motivation, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		app.FullName,
		app.Email,
		app.Phone,
		app.University,
		app.Major,
		toStrings(app.Interests),
		app.AvailabilityStart,
		app.AvailabilityEnd,
		app.ResumeURL,
		app.Motivation,
		app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

func (r *internshipRepository) GetByID(ctx context.Context, id string) (*domain.InternshipApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM internship_applications WHERE id=$1`, internshipColumns)
	return scanInternshipRow(r.pool.QueryRow(ctx, query, id))
}

func (r *internshipRepository) List(ctx context.Context, filter InternshipFilter) (Page[domain.InternshipApplication], error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = "WHERE status=$1"
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM internship_applications %s`, where), args...).Scan(&total); err != nil {
		return Page[domain.InternshipApplication]{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM internship_applications %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		internshipColumns, where, filter.Limit, Offset(filter.Page, filter.Limit))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return Page[domain.InternshipApplication]{}, err
	}
	defer rows.Close()

	items, err := scanInternships(rows)
	if err != nil {
		return Page[domain.InternshipApplication]{}, err
	}
	return NewPage(items, total, filter.Page, filter.Limit), nil
}

func (r *internshipRepository) ListByEmail(ctx context.Context, email string) ([]domain.InternshipApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM internship_applications WHERE email=$1 ORDER BY created_at DESC`, internshipColumns)
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInternships(rows)
}

func (r *internshipRepository) ListByStatus(ctx context.Context, status domain.InternshipStatus) ([]domain.InternshipApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM internship_applications WHERE status=$1 ORDER BY created_at DESC`, internshipColumns)
	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInternships(rows)
}

func (r *internshipRepository) Update(ctx context.Context, id string, update InternshipUpdate) (*domain.InternshipApplication, error) {
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

	query := fmt.Sprintf(`UPDATE internship_applications SET %s WHERE id=$%d RETURNING %s`,
		joinSet(set), len(args), internshipColumns)
	return scanInternshipRow(r.pool.QueryRow(ctx, query, args...))
}

func (r *internshipRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM internship_applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *internshipRepository) CountByStatus(ctx context.Context) (map[domain.InternshipStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM internship_applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.InternshipStatus]int{}
	for rows.Next() {
		var status domain.InternshipStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *internshipRepository) ExistsWithStatus(ctx context.Context, email string, status domain.InternshipStatus) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM internship_applications WHERE email=$1 AND status=$2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, email, status).Scan(&exists)
	return exists, err
}

func scanInternshipRow(row pgx.Row) (*domain.InternshipApplication, error) {
	var a domain.InternshipApplication
	var interests []string
	if err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.Phone,
		&a.University,
		&a.Major,
		&interests,
		&a.AvailabilityStart,
		&a.AvailabilityEnd,
		&a.ResumeURL,
		&a.Motivation,
		&a.Status,
		&a.AdminNotes,
		&a.AssignedTo,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Interests = fromStrings[domain.InterestArea](interests)
	return &a, nil
}

func scanInternships(rows pgx.Rows) ([]domain.InternshipApplication, error) {
	var result []domain.InternshipApplication
	for rows.Next() {
		app, err := scanInternshipRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *app)
	}
	return result, rows.Err()
}
