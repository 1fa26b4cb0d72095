package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// MentorshipFilter captures admin listing parameters.
type MentorshipFilter struct {
	Status *domain.MentorshipStatus
	Page   int
	Limit  int
}

// MentorshipUpdate carries the admin-editable fields; nil fields are left untouched.
type MentorshipUpdate struct {
	Status     *domain.MentorshipStatus
	AdminNotes *string
}

// MentorshipRepository encapsulates mentorship sign-up persistence.
type MentorshipRepository interface {
	Create(ctx context.Context, signup *domain.MentorshipSignup) error
	GetByID(ctx context.Context, id string) (*domain.MentorshipSignup, error)
	List(ctx context.Context, filter MentorshipFilter) (Page[domain.MentorshipSignup], error)
	Update(ctx context.Context, id string, update MentorshipUpdate) (*domain.MentorshipSignup, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type mentorshipRepository struct {
	pool *pgxpool.Pool
}

// NewMentorshipRepository instantiates repository.
func NewMentorshipRepository(pool *pgxpool.Pool) MentorshipRepository {
	return &mentorshipRepository{pool: pool}
}

const mentorshipColumns = `id, full_name, email, expertise, motivation,
       prefers_in_person, prefers_virtual, available_weekdays, available_weekends,
       consent_code_of_conduct, consent_contact, status, admin_notes, created_at, updated_at`

func (r *mentorshipRepository) Create(ctx context.Context, signup *domain.MentorshipSignup) error {
	const query = `
        INSERT INTO mentorship_signups
            (full_name, email, expertise, motivation,
             prefers_in_person, prefers_virtual, available_weekdays, available_weekends,
             consent_code_of_conduct, consent_contact, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		signup.FullName,
		signup.Email,
		signup.Expertise,
		signup.Motivation,
		signup.PrefersInPerson,
		signup.PrefersVirtual,
		signup.AvailableWeekdays,
		signup.AvailableWeekends,
		signup.ConsentCodeOfConduct,
		signup.ConsentContact,
		signup.Status,
	).Scan(&signup.ID, &signup.CreatedAt, &signup.UpdatedAt)
}

func (r *mentorshipRepository) GetByID(ctx context.Context, id string) (*domain.MentorshipSignup, error) {
	query := fmt.Sprintf(`SELECT %s FROM mentorship_signups WHERE id=$1`, mentorshipColumns)
	return scanMentorshipRow(r.pool.QueryRow(ctx, query, id))
}

func (r *mentorshipRepository) List(ctx context.Context, filter MentorshipFilter) (Page[domain.MentorshipSignup], error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = "WHERE status=$1"
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM mentorship_signups %s`, where), args...).Scan(&total); err != nil {
		return Page[domain.MentorshipSignup]{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM mentorship_signups %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		mentorshipColumns, where, filter.Limit, Offset(filter.Page, filter.Limit))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return Page[domain.MentorshipSignup]{}, err
	}
	defer rows.Close()

	items, err := scanMentorships(rows)
	if err != nil {
		return Page[domain.MentorshipSignup]{}, err
	}
	return NewPage(items, total, filter.Page, filter.Limit), nil
}

func (r *mentorshipRepository) Update(ctx context.Context, id string, update MentorshipUpdate) (*domain.MentorshipSignup, error) {
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
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE mentorship_signups SET %s WHERE id=$%d RETURNING %s`,
		joinSet(set), len(args), mentorshipColumns)
	return scanMentorshipRow(r.pool.QueryRow(ctx, query, args...))
}

func (r *mentorshipRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM mentorship_signups WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ExistsByEmail reports whether any sign-up, in any status, uses the email.
func (r *mentorshipRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM mentorship_signups WHERE email=$1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

func scanMentorshipRow(row pgx.Row) (*domain.MentorshipSignup, error) {
	var m domain.MentorshipSignup
	if err := row.Scan(
		&m.ID,
		&m.FullName,
		&m.Email,
		&m.Expertise,
		&m.Motivation,
		&m.PrefersInPerson,
		&m.PrefersVirtual,
		&m.AvailableWeekdays,
		&m.AvailableWeekends,
		&m.ConsentCodeOfConduct,
		&m.ConsentContact,
		&m.Status,
		&m.AdminNotes,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanMentorships(rows pgx.Rows) ([]domain.MentorshipSignup, error) {
	var result []domain.MentorshipSignup
	for rows.Next() {
		signup, err := scanMentorshipRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *signup)
	}
	return result, rows.Err()
}
