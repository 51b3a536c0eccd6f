package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/CMH-ReservationService/internal/api/handlers"
	"github.com/m04kA/CMH-ReservationService/internal/auth"
	createReservation "github.com/m04kA/CMH-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthenticated      = "не удалось установить личность вызывающего"
	msgFacilityNotFound     = "объект не найден"
	msgFacilityUnavailable  = "объект не принимает бронирования"
	msgInvalidSlot          = "некорректный временной слот"
	msgSlotFull             = "ёмкость слота исчерпана"
	msgDuplicateReservation = "у вас уже есть активное бронирование на этот слот"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - No identity in request context")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq, caller)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createReservation.ErrFacilityNotFound):
			h.logger.Warn("POST /reservations - Facility not found: facility_id=%s, requester_id=%s",
				req.FacilityID, caller.ID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createReservation.ErrFacilityUnavailable):
			h.logger.Warn("POST /reservations - Facility unavailable: facility_id=%s, requester_id=%s",
				req.FacilityID, caller.ID)
			handlers.RespondBadRequest(w, msgFacilityUnavailable)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /reservations - Invalid slot: facility_id=%s, slot=%s",
				req.FacilityID, req.SlotLabel)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: facility_id=%s, slot=%s, requester_id=%s",
				req.FacilityID, req.SlotLabel, caller.ID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createReservation.ErrDuplicateBooking):
			h.logger.Warn("POST /reservations - Duplicate booking: facility_id=%s, slot=%s, requester_id=%s",
				req.FacilityID, req.SlotLabel, caller.ID)
			handlers.RespondConflict(w, msgDuplicateReservation)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: facility_id=%s, error=%v", req.FacilityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: facility_id=%s, requester_id=%s, error=%v",
				req.FacilityID, caller.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, facility_id=%s, requester_id=%s",
		result.ID, req.FacilityID, caller.ID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
