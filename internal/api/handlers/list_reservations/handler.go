package list_reservations

import (
	"net/http"

	"github.com/m04kA/CMH-ReservationService/internal/api/handlers"
	"github.com/m04kA/CMH-ReservationService/internal/auth"
)

const msgUnauthenticated = "не удалось установить личность вызывающего"

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

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - No identity in request context")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.service.ListByRequester(r.Context(), caller)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: requester_id=%s, error=%v",
			caller.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Listed reservations: requester_id=%s, count=%d",
		caller.ID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
