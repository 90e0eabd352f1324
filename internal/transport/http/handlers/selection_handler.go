package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	selectionsvc "github.com/Hisham6667/summer-sports-server/internal/services/selections"
	"github.com/Hisham6667/summer-sports-server/internal/transport/http/dto"
	httperrors "github.com/Hisham6667/summer-sports-server/internal/transport/http/errors"
)

type SelectionHandler struct {
	service *selectionsvc.Service
	log     *zap.Logger
}

func NewSelectionHandler(service *selectionsvc.Service, log *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		service: service,
		log:     log,
	}
}

// Create is deliberately unauthenticated: the site lets visitors pick
// classes before they sign in, so the supplied email is taken at face
// value here and ownership is only enforced on reads.
func (h *SelectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "selection service is unavailable")
		return
	}

	var req dto.SelectionCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	insertedID, err := h.service.Create(r.Context(), selectionsvc.CreateInput{
		Email:      req.Email,
		ClassID:    req.ClassID,
		ClassName:  req.ClassName,
		PriceCents: req.PriceCents,
	})
	if err != nil {
		if errors.Is(err, selectionsvc.ErrValidation) {
			writeBadRequest(w, "invalid selection payload")
			return
		}
		if h.log != nil {
			h.log.Error("create selection", zap.Error(err))
		}
		writeInternal(w, "failed to create selection")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SelectionCreateResponse{InsertedID: insertedID})
}

func (h *SelectionHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "selection service is unavailable")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		httperrors.Write(w, http.StatusOK, []dto.SelectionResponse{})
		return
	}
	if !requireOwnedEmail(w, r, email) {
		return
	}

	records, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		if h.log != nil {
			h.log.Error("list selections", zap.Error(err))
		}
		writeInternal(w, "failed to load selections")
		return
	}

	items := make([]dto.SelectionResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.SelectionResponse{
			ID:         rec.ID,
			Email:      rec.Email,
			ClassID:    rec.ClassID,
			ClassName:  rec.ClassName,
			PriceCents: rec.PriceCents,
			CreatedAt:  rec.CreatedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, items)
}

func (h *SelectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "selection service is unavailable")
		return
	}

	count, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, selectionsvc.ErrValidation) {
			writeBadRequest(w, "invalid selection id")
			return
		}
		if h.log != nil {
			h.log.Error("delete selection", zap.Error(err))
		}
		writeInternal(w, "failed to delete selection")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SelectionDeleteResponse{DeletedCount: count})
}
