package cancel_reservation

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

// Handle DELETE /api/v1/reservations/{reservationId}
//
// Повторная отмена уже отменённого бронирования не ошибка:
// возвращается текущая запись с тем же статусом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reservations/{id} - No identity in request context")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	result, err := h.service.Cancel(r.Context(), reservationID, caller)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/{id} - Access denied: reservation_id=%s, requester_id=%s",
				reservationID, caller.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to cancel reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation cancelled: reservation_id=%s, requester_id=%s",
		reservationID, caller.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
