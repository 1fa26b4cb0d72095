package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// SocialSupportFilter captures admin listing parameters. Platform selects
// requests whose platform list contains the given platform.
type SocialSupportFilter struct {
	Status   *domain.SupportStatus
	Platform *domain.Platform
	Page     int
	Limit    int
}

// SocialSupportUpdate carries the admin-editable fields; nil fields are left untouched.
type SocialSupportUpdate struct {
	Status     *domain.SupportStatus
	AdminNotes *string
}

// SocialSupportRepository encapsulates social media support request persistence.
type SocialSupportRepository interface {
	Create(ctx context.Context, req *domain.SocialSupportRequest) error
	GetByID(ctx context.Context, id string) (*domain.SocialSupportRequest, error)
	List(ctx context.Context, filter SocialSupportFilter) (Page[domain.SocialSupportRequest], error)
	ListByEmail(ctx context.Context, email string) ([]domain.SocialSupportRequest, error)
	Update(ctx context.Context, id string, update SocialSupportUpdate) (*domain.SocialSupportRequest, error)
	Delete(ctx context.Context, id string) error
	ExistsWithStatus(ctx context.Context, email string, status domain.SupportStatus) (bool, error)
}

type socialSupportRepository struct {
	pool *pgxpool.Pool
}

// NewSocialSupportRepository instantiates repository.
func NewSocialSupportRepository(pool *pgxpool.Pool) SocialSupportRepository {
	return &socialSupportRepository{pool: pool}
}

const socialSupportColumns = `id, name, email, org_name, platforms, handles, support_type,
       description, status, admin_notes, created_at, updated_at`

func (r *socialSupportRepository) Create(ctx context.Context, req *domain.SocialSupportRequest) error {
	const query = `
        INSERT INTO social_support_requests
            (name, email, org_name, platforms, handles, support_type, description, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		req.Name,
		req.Email,
		req.OrgName,
		toStrings(req.Platforms),
		req.Handles,
		req.SupportType,
		req.Description,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *socialSupportRepository) GetByID(ctx context.Context, id string) (*domain.SocialSupportRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM social_support_requests WHERE id=$1`, socialSupportColumns)
	return scanSocialSupportRow(r.pool.QueryRow(ctx, query, id))
}

func (r *socialSupportRepository) List(ctx context.Context, filter SocialSupportFilter) (Page[domain.SocialSupportRequest], error) {
	clauses := []string{}
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Platform != nil {
		args = append(args, string(*filter.Platform))
		clauses = append(clauses, fmt.Sprintf("$%d = ANY(platforms)", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + joinAnd(clauses)
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM social_support_requests %s`, where), args...).Scan(&total); err != nil {
		return Page[domain.SocialSupportRequest]{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM social_support_requests %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		socialSupportColumns, where, filter.Limit, Offset(filter.Page, filter.Limit))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return Page[domain.SocialSupportRequest]{}, err
	}
	defer rows.Close()

	items, err := scanSocialSupports(rows)
	if err != nil {
		return Page[domain.SocialSupportRequest]{}, err
	}
	return NewPage(items, total, filter.Page, filter.Limit), nil
}

func (r *socialSupportRepository) ListByEmail(ctx context.Context, email string) ([]domain.SocialSupportRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM social_support_requests WHERE email=$1 ORDER BY created_at DESC`, socialSupportColumns)
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSocialSupports(rows)
}

func (r *socialSupportRepository) Update(ctx context.Context, id string, update SocialSupportUpdate) (*domain.SocialSupportRequest, error) {
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

	query := fmt.Sprintf(`UPDATE social_support_requests SET %s WHERE id=$%d RETURNING %s`,
		joinSet(set), len(args), socialSupportColumns)
	return scanSocialSupportRow(r.pool.QueryRow(ctx, query, args...))
}

func (r *socialSupportRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM social_support_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *socialSupportRepository) ExistsWithStatus(ctx context.Context, email string, status domain.SupportStatus) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM social_support_requests WHERE email=$1 AND status=$2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, email, status).Scan(&exists)
	return exists, err
}

func scanSocialSupportRow(row pgx.Row) (*domain.SocialSupportRequest, error) {
	var s domain.SocialSupportRequest
	var platforms []string
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.OrgName,
		&platforms,
		&s.Handles,
		&s.SupportType,
		&s.Description,
		&s.Status,
		&s.AdminNotes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.Platforms = fromStrings[domain.Platform](platforms)
	return &s, nil
}

func scanSocialSupports(rows pgx.Rows) ([]domain.SocialSupportRequest, error) {
	var result []domain.SocialSupportRequest
	for rows.Next() {
		req, err := scanSocialSupportRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *req)
	}
	return result, rows.Err()
}
