package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	facilityDir "github.com/m04kA/CMH-ReservationService/internal/infra/storage/facility"
)

// UseCase use case получения занятости слотов объекта.
// Read-only проекция состояния движка бронирований для дашбордов,
// write-доступа к хранилищу не имеет.
type UseCase struct {
	reservationRepo ReservationRepository
	directory       FacilityDirectory
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	directory FacilityDirectory,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		directory:       directory,
		logger:          logger,
	}
}

// Execute выполняет use case получения занятости слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: facility=%s, date=%s",
		req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.FacilityID == "" {
		return nil, fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем объект из каталога
	facility, err := uc.directory.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityDir.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailability: facility %s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailability: failed to get facility %s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Для неработающего объекта слотов нет
	if !facility.IsOperational() {
		uc.logger.Info("GetAvailability: facility %s is not operational (status=%s)",
			facility.ID, facility.Status)
		return &Response{
			FacilityID:     facility.ID,
			FacilityName:   facility.Name,
			FacilityStatus: facility.Status,
			Date:           req.Date,
			Slots:          []Slot{},
		}, nil
	}

	// 4. Перечисляем слоты рабочего дня
	slotStarts, err := enumerateSlots(facility)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to enumerate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to enumerate slots: %v", ErrInternal, err)
	}

	// 5. Получаем активные бронирования на дату
	filter := domain.FacilityReservationsFilter{
		FacilityID:      facility.ID,
		Date:            &req.Date,
		IncludeInactive: false, // Отменённые ёмкость не занимают
	}

	reservations, err := uc.reservationRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Строим занятость и классификацию загруженности
	availability, err := buildSlotAvailability(facility, slotStarts, reservations)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build availability: %v", err)
		return nil, fmt.Errorf("%w: failed to build availability: %v", ErrInternal, err)
	}

	slots := make([]Slot, 0, len(availability))
	for i := range availability {
		sa := &availability[i]
		slots = append(slots, Slot{
			SlotLabel:   sa.SlotLabel,
			Capacity:    sa.Capacity,
			BookedCount: sa.BookedCount,
			Remaining:   sa.Remaining,
			Congestion:  sa.Congestion(),
		})
	}

	uc.logger.Info("GetAvailability: %d slots for facility=%s, date=%s",
		len(slots), facility.ID, req.Date.Format(domain.DateFormat))

	return &Response{
		FacilityID:     facility.ID,
		FacilityName:   facility.Name,
		FacilityStatus: facility.Status,
		Date:           req.Date,
		Slots:          slots,
	}, nil
}
