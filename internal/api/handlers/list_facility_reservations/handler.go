package list_facility_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMH-ReservationService/internal/api/handlers"
	"github.com/m04kA/CMH-ReservationService/internal/auth"
	"github.com/m04kA/CMH-ReservationService/internal/service/reservations"
)

const (
	msgUnauthenticated = "не удалось установить личность вызывающего"
	msgForbidden       = "доступ запрещен"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus   = "некорректный статус бронирования"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /facilities/{id}/reservations - No identity in request context")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	vars := mux.Vars(r)
	facilityID := vars["facilityId"]

	req, err := ParseServiceRequest(facilityID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/reservations - Invalid date: facility_id=%s, error=%v",
			facilityID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByFacility(r.Context(), req, caller)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /facilities/{id}/reservations - Access denied: facility_id=%s, requester_id=%s",
				facilityID, caller.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/reservations - Invalid status filter: facility_id=%s", facilityID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /facilities/{id}/reservations - Failed to list reservations: facility_id=%s, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/reservations - Listed reservations: facility_id=%s, staff_id=%s, count=%d",
		facilityID, caller.ID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
