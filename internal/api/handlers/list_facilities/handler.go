package list_facilities

import (
	"net/http"

	"github.com/m04kA/CMH-ReservationService/internal/api/handlers"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /facilities - Failed to list facilities: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Listed facilities: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}
