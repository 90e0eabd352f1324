package handlers

import (
	"net/http"

	"go.uber.org/zap"

	catalogsvc "github.com/Hisham6667/summer-sports-server/internal/services/catalog"
	"github.com/Hisham6667/summer-sports-server/internal/transport/http/dto"
	httperrors "github.com/Hisham6667/summer-sports-server/internal/transport/http/errors"
)

type CatalogHandler struct {
	service *catalogsvc.Service
	log     *zap.Logger
}

func NewCatalogHandler(service *catalogsvc.Service, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

func (h *CatalogHandler) Instructors(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "catalog service is unavailable")
		return
	}

	records, err := h.service.ListInstructors(r.Context())
	if err != nil {
		if h.log != nil {
			h.log.Error("list instructors", zap.Error(err))
		}
		writeInternal(w, "failed to load instructors")
		return
	}

	items := make([]dto.InstructorResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.InstructorResponse{
			ID:           rec.ID,
			Name:         rec.Name,
			Email:        rec.Email,
			Image:        rec.Image,
			ClassesCount: rec.ClassesCount,
			CreatedAt:    rec.CreatedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, items)
}

func (h *CatalogHandler) Classes(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "catalog service is unavailable")
		return
	}

	records, err := h.service.ListClasses(r.Context())
	if err != nil {
		if h.log != nil {
			h.log.Error("list classes", zap.Error(err))
		}
		writeInternal(w, "failed to load classes")
		return
	}

	items := make([]dto.ClassResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.ClassResponse{
			ID:              rec.ID,
			Name:            rec.Name,
			Image:           rec.Image,
			InstructorName:  rec.InstructorName,
			InstructorEmail: rec.InstructorEmail,
			PriceCents:      rec.PriceCents,
			Seats:           rec.Seats,
			Enrolled:        rec.Enrolled,
			CreatedAt:       rec.CreatedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, items)
}
