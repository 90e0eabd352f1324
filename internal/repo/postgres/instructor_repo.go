package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InstructorRepo struct {
	pool *pgxpool.Pool
}

type InstructorRecord struct {
	ID           string
	Name         string
	Email        string
	Image        string
	ClassesCount int
	CreatedAt    time.Time
}

func NewInstructorRepo(pool *pgxpool.Pool) *InstructorRepo {
	return &InstructorRepo{pool: pool}
}

func (r *InstructorRepo) List(ctx context.Context) ([]InstructorRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id::text, name, email, image, classes_count, created_at
FROM instructors
ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	defer rows.Close()

	items := make([]InstructorRecord, 0)
	for rows.Next() {
		var rec InstructorRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Image, &rec.ClassesCount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan instructor: %w", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate instructors: %w", err)
	}

	return items, nil
}
