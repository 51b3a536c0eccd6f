package get_reservation

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
	msgNotFound        = "бронирование не найдено"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations/{id} - No identity in request context")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	result, err := h.service.GetByID(r.Context(), reservationID, caller)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations/{id} - Access denied: reservation_id=%s, requester_id=%s",
				reservationID, caller.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Reservation retrieved: reservation_id=%s, requester_id=%s",
		reservationID, caller.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
