package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	paymentsvc "github.com/Hisham6667/summer-sports-server/internal/services/payments"
	"github.com/Hisham6667/summer-sports-server/internal/transport/http/dto"
	httperrors "github.com/Hisham6667/summer-sports-server/internal/transport/http/errors"
)

type PaymentHandler struct {
	service *paymentsvc.Service
	log     *zap.Logger
}

func NewPaymentHandler(service *paymentsvc.Service, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "payment service is unavailable")
		return
	}

	var req dto.PaymentIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	clientSecret, err := h.service.CreateIntent(r.Context(), req.Price.String())
	if err != nil {
		if errors.Is(err, paymentsvc.ErrValidation) {
			writeBadRequest(w, "invalid price")
			return
		}
		if h.log != nil {
			h.log.Error("create payment intent", zap.Error(err))
		}
		writeInternal(w, "failed to create payment intent")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "payment service is unavailable")
		return
	}

	var req dto.PaymentRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	result, err := h.service.Record(r.Context(), paymentsvc.RecordInput{
		Email:            req.Email,
		Price:            req.Price.String(),
		TransactionID:    req.TransactionID,
		SelectedClassIDs: req.SelectedClassIDs,
	})
	if err != nil {
		if errors.Is(err, paymentsvc.ErrValidation) {
			writeBadRequest(w, "invalid payment payload")
			return
		}
		if h.log != nil {
			h.log.Error("record payment", zap.Error(err))
		}
		writeInternal(w, "failed to record payment")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.PaymentRecordResponse{
		InsertResult: dto.InsertResult{InsertedID: result.InsertedID},
		DeleteResult: dto.DeleteResult{DeletedCount: result.DeletedCount},
	})
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "payment service is unavailable")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		httperrors.Write(w, http.StatusOK, []dto.PaymentResponse{})
		return
	}
	if !requireOwnedEmail(w, r, email) {
		return
	}

	records, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		if h.log != nil {
			h.log.Error("list payments", zap.Error(err))
		}
		writeInternal(w, "failed to load payments")
		return
	}

	items := make([]dto.PaymentResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.PaymentResponse{
			ID:               rec.ID,
			Email:            rec.Email,
			AmountCents:      rec.AmountCents,
			Currency:         rec.Currency,
			TransactionID:    rec.TransactionID,
			SelectedClassIDs: rec.SelectedClassIDs,
			CreatedAt:        rec.CreatedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, items)
}
