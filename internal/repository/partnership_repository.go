package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// PartnershipFilter captures admin listing parameters.
type PartnershipFilter struct {
	Status *domain.PartnershipStatus
	Page   int
	Limit  int
}

// PartnershipUpdate carries the admin-editable fields; nil fields are left untouched.
type PartnershipUpdate struct {
	Status     *domain.PartnershipStatus
	AdminNotes *string
}

// PartnershipRepository encapsulates partnership request persistence.
type PartnershipRepository interface {
	Create(ctx context.Context, req *domain.PartnershipRequest) error
	GetByID(ctx context.Context, id string) (*domain.PartnershipRequest, error)
	List(ctx context.Context, filter PartnershipFilter) (Page[domain.PartnershipRequest], error)
	ListByEmail(ctx context.Context, email string) ([]domain.PartnershipRequest, error)
	Update(ctx context.Context, id string, update PartnershipUpdate) (*domain.PartnershipRequest, error)
	Delete(ctx context.Context, id string) error
}

type partnershipRepository struct {
	pool *pgxpool.Pool
}

// NewPartnershipRepository instantiates repository.
func NewPartnershipRepository(pool *pgxpool.Pool) PartnershipRepository {
	return &partnershipRepository{pool: pool}
}

const partnershipColumns = `id, org_name, contact_name, email, phone, website, partnership_type,
       proposal, status, admin_notes, created_at, updated_at`

func (r *partnershipRepository) Create(ctx context.Context, req *domain.PartnershipRequest) error {
	const query = `
        INSERT INTO partnership_requests
            (org_name, contact_name, email, phone, website, partnership_type, proposal, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		req.OrgName,
		req.ContactName,
		req.Email,
		req.Phone,
		req.Website,
		req.Type,
		req.Proposal,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *partnershipRepository) GetByID(ctx context.Context, id string) (*domain.PartnershipRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM partnership_requests WHERE id=$1`, partnershipColumns)
	return scanPartnershipRow(r.pool.QueryRow(ctx, query, id))
}

func (r *partnershipRepository) List(ctx context.Context, filter PartnershipFilter) (Page[domain.PartnershipRequest], error) {
	where := ""
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = "WHERE status=$1"
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM partnership_requests %s`, where), args...).Scan(&total); err != nil {
		return Page[domain.PartnershipRequest]{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM partnership_requests %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		partnershipColumns, where, filter.Limit, Offset(filter.Page, filter.Limit))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return Page[domain.PartnershipRequest]{}, err
	}
	defer rows.Close()

	items, err := scanPartnerships(rows)
	if err != nil {
		return Page[domain.PartnershipRequest]{}, err
	}
	return NewPage(items, total, filter.Page, filter.Limit), nil
}

func (r *partnershipRepository) ListByEmail(ctx context.Context, email string) ([]domain.PartnershipRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM partnership_requests WHERE email=$1 ORDER BY created_at DESC`, partnershipColumns)
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPartnerships(rows)
}

func (r *partnershipRepository) Update(ctx context.Context, id string, update PartnershipUpdate) (*domain.PartnershipRequest, error) {
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

	query := fmt.Sprintf(`UPDATE partnership_requests SET %s WHERE id=$%d RETURNING %s`,
		joinSet(set), len(args), partnershipColumns)
	return scanPartnershipRow(r.pool.QueryRow(ctx, query, args...))
}

func (r *partnershipRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM partnership_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanPartnershipRow(row pgx.Row) (*domain.PartnershipRequest, error) {
	var p domain.PartnershipRequest
	if err := row.Scan(
		&p.ID,
		&p.OrgName,
		&p.ContactName,
		&p.Email,
		&p.Phone,
		&p.Website,
		&p.Type,
		&p.Proposal,
		&p.Status,
		&p.AdminNotes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPartnerships(rows pgx.Rows) ([]domain.PartnershipRequest, error) {
	var result []domain.PartnershipRequest
	for rows.Next() {
		req, err := scanPartnershipRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *req)
	}
	return result, rows.Err()
}
