package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hisham6667/summer-sports-server/internal/pkg/validate"
)

type SelectionRepo struct {
	pool *pgxpool.Pool
}

type SelectionRecord struct {
	ID         string
	Email      string
	ClassID    string
	ClassName  string
	PriceCents int64
	CreatedAt  time.Time
}

func NewSelectionRepo(pool *pgxpool.Pool) *SelectionRepo {
	return &SelectionRepo{pool: pool}
}

func (r *SelectionRepo) Insert(ctx context.Context, rec SelectionRecord) (string, error) {
	if r.pool == nil {
		return "", fmt.Errorf("postgres pool is nil")
	}
	if !validate.Required(rec.ClassID) {
		return "", fmt.Errorf("invalid selection payload")
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	var insertedID string
	err := r.pool.QueryRow(ctx, `
INSERT INTO selected_classes (id, email, class_id, class_name, price_cents, created_at)
VALUES ($1::uuid, $2, $3::uuid, $4, $5, NOW())
RETURNING id::text
`, id, rec.Email, rec.ClassID, rec.ClassName, rec.PriceCents).Scan(&insertedID)
	if err != nil {
		return "", fmt.Errorf("insert selection: %w", err)
	}

	return insertedID, nil
}

func (r *SelectionRepo) ListByEmail(ctx context.Context, email string) ([]SelectionRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id::text, email, class_id::text, class_name, price_cents, created_at
FROM selected_classes
WHERE email = $1
ORDER BY created_at, id
`, email)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer rows.Close()

	items := make([]SelectionRecord, 0)
	for rows.Next() {
		var rec SelectionRecord
		if err := rows.Scan(&rec.ID, &rec.Email, &rec.ClassID, &rec.ClassName, &rec.PriceCents, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate selections: %w", err)
	}

	return items, nil
}

// DeleteByID removes a single selection. A missing id is not an error; the
// returned count is 0.
func (r *SelectionRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	if r.pool == nil {
		return 0, fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `
DELETE FROM selected_classes
WHERE id = $1::uuid
`, id)
	if err != nil {
		return 0, fmt.Errorf("delete selection: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteSelectionsOlderThan prunes selections created before the cutoff.
// Used by the cleanup job to drop carts that were never paid for.
func (r *SelectionRepo) DeleteSelectionsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if r.pool == nil {
		return 0, fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `
DELETE FROM selected_classes
WHERE created_at < $1
`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete stale selections: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *SelectionRepo) DeleteByIDsTx(ctx context.Context, tx pgx.Tx, ids []string) (int64, error) {
	if tx == nil {
		return 0, fmt.Errorf("tx is nil")
	}
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := tx.Exec(ctx, `
DELETE FROM selected_classes
WHERE id = ANY($1::uuid[])
`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete selections: %w", err)
	}

	return tag.RowsAffected(), nil
}
