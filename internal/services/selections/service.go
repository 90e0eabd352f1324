package selections

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	pgrepo "github.com/Hisham6667/summer-sports-server/internal/repo/postgres"
)

var ErrValidation = errors.New("validation error")

type SelectionStore interface {
	Insert(ctx context.Context, rec pgrepo.SelectionRecord) (string, error)
	ListByEmail(ctx context.Context, email string) ([]pgrepo.SelectionRecord, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type Service struct {
	store SelectionStore
}

type CreateInput struct {
	Email      string
	ClassID    string
	ClassName  string
	PriceCents int64
}

func NewService(store SelectionStore) *Service {
	return &Service{store: store}
}

// Create trusts the caller-supplied email; selection creation carries no
// ownership check, matching the public site flow where a class is picked
// before checkout.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("selection store is nil")
	}
	if _, err := uuid.Parse(strings.TrimSpace(in.ClassID)); err != nil {
		return "", ErrValidation
	}

	return s.store.Insert(ctx, pgrepo.SelectionRecord{
		Email:      strings.TrimSpace(in.Email),
		ClassID:    strings.TrimSpace(in.ClassID),
		ClassName:  in.ClassName,
		PriceCents: in.PriceCents,
	})
}

func (s *Service) ListByEmail(ctx context.Context, email string) ([]pgrepo.SelectionRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("selection store is nil")
	}
	return s.store.ListByEmail(ctx, email)
}

// Delete removes a selection by id without an ownership check. Deleting an
// id that is already gone reports zero affected rows, not an error.
func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	if s.store == nil {
		return 0, fmt.Errorf("selection store is nil")
	}
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return 0, ErrValidation
	}

	return s.store.DeleteByID(ctx, strings.TrimSpace(id))
}
