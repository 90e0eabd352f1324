package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Hisham6667/summer-sports-server/internal/pkg/validate"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
}

// PaymentRecord is an immutable log entry; rows are never updated or
// deleted once written.
type PaymentRecord struct {
	ID               string
	Email            string
	AmountCents      int64
	Currency         string
	TransactionID    string
	SelectedClassIDs []string
	CreatedAt        time.Time
}

func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

func (r *PaymentRepo) InsertTx(ctx context.Context, tx pgx.Tx, rec PaymentRecord) (string, error) {
	if tx == nil {
		return "", fmt.Errorf("tx is nil")
	}
	if rec.AmountCents < 0 || !validate.Required(rec.Currency) {
		return "", fmt.Errorf("invalid payment payload")
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	var insertedID string
	err := tx.QueryRow(ctx, `
INSERT INTO payments (id, email, amount_cents, currency, transaction_id, selected_class_ids, created_at)
VALUES ($1::uuid, $2, $3, $4, $5, $6::uuid[], NOW())
RETURNING id::text
`, id, rec.Email, rec.AmountCents, strings.ToLower(rec.Currency), rec.TransactionID, rec.SelectedClassIDs).Scan(&insertedID)
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}

	return insertedID, nil
}

func (r *PaymentRepo) ListByEmail(ctx context.Context, email string) ([]PaymentRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id::text, email, amount_cents, currency, transaction_id, selected_class_ids::text[], created_at
FROM payments
WHERE email = $1
ORDER BY created_at, id
`, email)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	items := make([]PaymentRecord, 0)
	for rows.Next() {
		var rec PaymentRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Email,
			&rec.AmountCents,
			&rec.Currency,
			&rec.TransactionID,
			&rec.SelectedClassIDs,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}

	return items, nil
}
