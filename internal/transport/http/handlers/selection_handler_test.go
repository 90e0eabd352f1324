package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	pgrepo "github.com/Hisham6667/summer-sports-server/internal/repo/postgres"
	authsvc "github.com/Hisham6667/summer-sports-server/internal/services/auth"
	selectionsvc "github.com/Hisham6667/summer-sports-server/internal/services/selections"
)

type selectionStoreStub struct {
	inserted    []pgrepo.SelectionRecord
	listed      []pgrepo.SelectionRecord
	listCalls   int
	deleteCount int64
}

func (s *selectionStoreStub) Insert(_ context.Context, rec pgrepo.SelectionRecord) (string, error) {
	s.inserted = append(s.inserted, rec)
	return "c0ffee00-0000-4000-8000-000000000001", nil
}

func (s *selectionStoreStub) ListByEmail(_ context.Context, _ string) ([]pgrepo.SelectionRecord, error) {
	s.listCalls++
	return s.listed, nil
}

func (s *selectionStoreStub) DeleteByID(_ context.Context, _ string) (int64, error) {
	return s.deleteCount, nil
}

func withIdentity(req *http.Request, email string) *http.Request {
	ctx := authsvc.WithIdentity(req.Context(), authsvc.Identity{Email: email})
	return req.WithContext(ctx)
}

func TestSelectionCreateIsOpenToAnyone(t *testing.T) {
	store := &selectionStoreStub{}
	h := NewSelectionHandler(selectionsvc.NewService(store), nil)

	body := `{"email":"a@x.com","class_id":"7b69bd3c-9f74-4a3b-8c9e-111111111111","class_name":"Tennis","price_cents":4999}`
	req := httptest.NewRequest(http.MethodPost, "/selectedclasses", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		InsertedID string `json:"inserted_id"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.InsertedID == "" {
		t.Fatalf("missing inserted_id in response")
	}
	if len(store.inserted) != 1 || store.inserted[0].ClassName != "Tennis" {
		t.Fatalf("unexpected insert: %+v", store.inserted)
	}
}

func TestSelectionCreateRejectsBadClassID(t *testing.T) {
	store := &selectionStoreStub{}
	h := NewSelectionHandler(selectionsvc.NewService(store), nil)

	req := httptest.NewRequest(http.MethodPost, "/selectedclasses", strings.NewReader(`{"email":"a@x.com","class_id":"not-a-uuid"}`))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d", rr.Code)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("store must not be touched on validation failure")
	}
}

func TestSelectionListEmptyEmailShortCircuits(t *testing.T) {
	store := &selectionStoreStub{}
	h := NewSelectionHandler(selectionsvc.NewService(store), nil)

	// No email parameter and no identity: the route answers with an empty
	// list before the ownership check runs.
	req := httptest.NewRequest(http.MethodGet, "/selectedclasses", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", rr.Code)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Fatalf("unexpected body: %q", body)
	}
	if store.listCalls != 0 {
		t.Fatalf("store must not be queried without an email")
	}
}

func TestSelectionListRejectsForeignEmail(t *testing.T) {
	h := NewSelectionHandler(selectionsvc.NewService(&selectionStoreStub{}), nil)

	req := httptest.NewRequest(http.MethodGet, "/selectedclasses?email=b@x.com", nil)
	req = withIdentity(req, "a@x.com")
	rr := httptest.NewRecorder()

	h.List(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("unexpected status: got %d", rr.Code)
	}
	assertMessage(t, rr, "forbidden access")
}

func TestSelectionListRejectsMissingIdentity(t *testing.T) {
	h := NewSelectionHandler(selectionsvc.NewService(&selectionStoreStub{}), nil)

	req := httptest.NewRequest(http.MethodGet, "/selectedclasses?email=a@x.com", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d", rr.Code)
	}
	assertMessage(t, rr, "unauthorized user")
}

func TestSelectionListReturnsOwnedRecords(t *testing.T) {
	store := &selectionStoreStub{listed: []pgrepo.SelectionRecord{
		{ID: "7b69bd3c-9f74-4a3b-8c9e-111111111111", Email: "a@x.com", ClassName: "Tennis", PriceCents: 4999},
	}}
	h := NewSelectionHandler(selectionsvc.NewService(store), nil)

	req := httptest.NewRequest(http.MethodGet, "/selectedclasses?email=a@x.com", nil)
	req = withIdentity(req, "a@x.com")
	rr := httptest.NewRecorder()

	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d body %s", rr.Code, rr.Body.String())
	}

	var items []struct {
		ClassName  string `json:"class_name"`
		PriceCents int64  `json:"price_cents"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].ClassName != "Tennis" || items[0].PriceCents != 4999 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestSelectionDeleteAbsentIDReportsZero(t *testing.T) {
	store := &selectionStoreStub{deleteCount: 0}
	h := NewSelectionHandler(selectionsvc.NewService(store), nil)

	r := chi.NewRouter()
	r.Delete("/selectedclasses/{id}", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/selectedclasses/7b69bd3c-9f74-4a3b-8c9e-222222222222", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d", rr.Code)
	}

	var resp struct {
		DeletedCount int64 `json:"deleted_count"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.DeletedCount != 0 {
		t.Fatalf("unexpected deleted_count: %d", resp.DeletedCount)
	}
}

func TestSelectionDeleteRejectsMalformedID(t *testing.T) {
	h := NewSelectionHandler(selectionsvc.NewService(&selectionStoreStub{}), nil)

	r := chi.NewRouter()
	r.Delete("/selectedclasses/{id}", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/selectedclasses/nope", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d", rr.Code)
	}
}

func assertMessage(t *testing.T, rr *httptest.ResponseRecorder, message string) {
	t.Helper()

	var payload struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if !payload.Error || payload.Message != message {
		t.Fatalf("unexpected error body: %+v", payload)
	}
}
