package selections

import (
	"context"
	"errors"
	"testing"

	pgrepo "github.com/Hisham6667/summer-sports-server/internal/repo/postgres"
)

type selectionStoreStub struct {
	records map[string]pgrepo.SelectionRecord
	nextID  string
}

func newSelectionStoreStub() *selectionStoreStub {
	return &selectionStoreStub{
		records: make(map[string]pgrepo.SelectionRecord),
		nextID:  "9a7a41de-0000-4c58-8c2f-000000000001",
	}
}

func (s *selectionStoreStub) Insert(_ context.Context, rec pgrepo.SelectionRecord) (string, error) {
	rec.ID = s.nextID
	s.records[rec.ID] = rec
	return rec.ID, nil
}

func (s *selectionStoreStub) ListByEmail(_ context.Context, email string) ([]pgrepo.SelectionRecord, error) {
	out := make([]pgrepo.SelectionRecord, 0)
	for _, rec := range s.records {
		if rec.Email == email {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *selectionStoreStub) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, ok := s.records[id]; !ok {
		return 0, nil
	}
	delete(s.records, id)
	return 1, nil
}

func TestCreateTrustsCallerEmail(t *testing.T) {
	store := newSelectionStoreStub()
	svc := NewService(store)

	id, err := svc.Create(context.Background(), CreateInput{
		Email:      "anyone@x.com",
		ClassID:    "3f1e9a38-1111-4e7a-9c5e-000000000001",
		ClassName:  "Junior Swimming",
		PriceCents: 4999,
	})
	if err != nil {
		t.Fatalf("create selection: %v", err)
	}
	if id == "" {
		t.Fatalf("empty inserted id")
	}

	got := store.records[id]
	if got.Email != "anyone@x.com" || got.PriceCents != 4999 {
		t.Fatalf("unexpected stored record: %+v", got)
	}
}

func TestCreateRejectsMalformedClassID(t *testing.T) {
	svc := NewService(newSelectionStoreStub())

	if _, err := svc.Create(context.Background(), CreateInput{
		Email:   "a@x.com",
		ClassID: "class-42",
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteOfAbsentIDReportsZero(t *testing.T) {
	svc := NewService(newSelectionStoreStub())

	count, err := svc.Delete(context.Background(), "9a7a41de-0000-4c58-8c2f-00000000ffff")
	if err != nil {
		t.Fatalf("delete absent selection: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero deleted rows, got %d", count)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newSelectionStoreStub()
	svc := NewService(store)

	id, err := svc.Create(context.Background(), CreateInput{
		Email:   "a@x.com",
		ClassID: "3f1e9a38-1111-4e7a-9c5e-000000000001",
	})
	if err != nil {
		t.Fatalf("create selection: %v", err)
	}

	first, err := svc.Delete(context.Background(), id)
	if err != nil || first != 1 {
		t.Fatalf("first delete: count=%d err=%v", first, err)
	}
	second, err := svc.Delete(context.Background(), id)
	if err != nil || second != 0 {
		t.Fatalf("second delete must be a no-op: count=%d err=%v", second, err)
	}
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	svc := NewService(newSelectionStoreStub())

	if _, err := svc.Delete(context.Background(), "not-a-uuid"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
