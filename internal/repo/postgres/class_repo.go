package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ClassRepo struct {
	pool *pgxpool.Pool
}

type ClassRecord struct {
	ID              string
	Name            string
	Image           string
	InstructorName  string
	InstructorEmail string
	PriceCents      int64
	Seats           int
	Enrolled        int
	CreatedAt       time.Time
}

func NewClassRepo(pool *pgxpool.Pool) *ClassRepo {
	return &ClassRepo{pool: pool}
}

func (r *ClassRepo) List(ctx context.Context) ([]ClassRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id::text, name, image, instructor_name, instructor_email, price_cents, seats, enrolled, created_at
FROM classes
ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	items := make([]ClassRecord, 0)
	for rows.Next() {
		var rec ClassRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Image,
			&rec.InstructorName,
			&rec.InstructorEmail,
			&rec.PriceCents,
			&rec.Seats,
			&rec.Enrolled,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classes: %w", err)
	}

	return items, nil
}
