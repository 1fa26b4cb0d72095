package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/visualpath/visualpath-api/internal/domain"
)

// ContactFilter captures admin listing parameters.
type ContactFilter struct {
	Status *domain.ContactStatus
	Read   *bool
	Page   int
	Limit  int
}

// ContactUpdate carries the admin-editable fields; nil fields are left untouched.
type ContactUpdate struct {
	Status     *domain.ContactStatus
	Read       *bool
	AdminNotes *string
}

// ContactRepository encapsulates contact message persistence.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	GetByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	List(ctx context.Context, filter ContactFilter) (Page[domain.ContactMessage], error)
	ListByEmail(ctx context.Context, email string) ([]domain.ContactMessage, error)
	Update(ctx context.Context, id string, update ContactUpdate) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) error
	CountRead(ctx context.Context) (read int, unread int, err error)
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository instantiates repository.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

const contactColumns = `id, name, email, subject, message, read, status, admin_notes, created_at, updated_at`

func (r *contactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	const query = `
        INSERT INTO contact_messages (name, email, subject, message, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.Status,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact_messages WHERE id=$1`, contactColumns)
	return scanContactRow(r.pool.QueryRow(ctx, query, id))
}

func (r *contactRepository) List(ctx context.Context, filter ContactFilter) (Page[domain.ContactMessage], error) {
	clauses := []string{}
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Read != nil {
		args = append(args, *filter.Read)
		clauses = append(clauses, fmt.Sprintf("read=$%d", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + joinAnd(clauses)
	}

	var total int
	if err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM contact_messages %s`, where), args...).Scan(&total); err != nil {
		return Page[domain.ContactMessage]{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM contact_messages %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		contactColumns, where, filter.Limit, Offset(filter.Page, filter.Limit))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return Page[domain.ContactMessage]{}, err
	}
	defer rows.Close()

	items, err := scanContacts(rows)
	if err != nil {
		return Page[domain.ContactMessage]{}, err
	}
	return NewPage(items, total, filter.Page, filter.Limit), nil
}

func (r *contactRepository) ListByEmail(ctx context.Context, email string) ([]domain.ContactMessage, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact_messages WHERE email=$1 ORDER BY created_at DESC`, contactColumns)
	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContacts(rows)
}

func (r *contactRepository) Update(ctx context.Context, id string, update ContactUpdate) (*domain.ContactMessage, error) {
	set := []string{"updated_at=NOW()"}
	args := []any{}
	if update.Status != nil {
		args = append(args, *update.Status)
		set = append(set, fmt.Sprintf("status=$%d", len(args)))
	}
	if update.Read != nil {
		args = append(args, *update.Read)
		set = append(set, fmt.Sprintf("read=$%d", len(args)))
	}
	if update.AdminNotes != nil {
		args = append(args, *update.AdminNotes)
		set = append(set, fmt.Sprintf("admin_notes=$%d", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE contact_messages SET %s WHERE id=$%d RETURNING %s`,
		joinSet(set), len(args), contactColumns)
	return scanContactRow(r.pool.QueryRow(ctx, query, args...))
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactRepository) CountRead(ctx context.Context) (int, int, error) {
	const query = `
        SELECT COUNT(*) FILTER (WHERE read), COUNT(*) FILTER (WHERE NOT read)
        FROM contact_messages`
	var read, unread int
	err := r.pool.QueryRow(ctx, query).Scan(&read, &unread)
	return read, unread, err
}

func scanContactRow(row pgx.Row) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Subject,
		&m.Message,
		&m.Read,
		&m.Status,
		&m.AdminNotes,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanContacts(rows pgx.Rows) ([]domain.ContactMessage, error) {
	var result []domain.ContactMessage
	for rows.Next() {
		msg, err := scanContactRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *msg)
	}
	return result, rows.Err()
}
