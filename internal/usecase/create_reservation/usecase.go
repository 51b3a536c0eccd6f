package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	facilityDir "github.com/m04kA/CMH-ReservationService/internal/infra/storage/facility"
)

// Причины отказов для доменных метрик
const (
	rejectReasonFacilityNotFound    = "facility_not_found"
	rejectReasonFacilityUnavailable = "facility_unavailable"
	rejectReasonInvalidSlot         = "invalid_slot"
	rejectReasonSlotFull            = "slot_full"
	rejectReasonDuplicate           = "duplicate_booking"
)

// UseCase use case создания бронирования.
//
// Единственный write-путь движка: проверяет объект через каталог, слот —
// через модель ёмкости, затем в одной критической секции проверяет оба
// инварианта (ёмкость слота не превышена, у вызывающего нет второго
// активного бронирования на тот же слот) и вставляет запись. При отказе
// состояние не меняется.
type UseCase struct {
	reservationRepo ReservationRepository
	directory       FacilityDirectory
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	directory FacilityDirectory,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		directory:       directory,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request, caller domain.CallerIdentity) (*Response, error) {
	uc.logger.Info("CreateReservation: requester=%s, facility=%s, date=%s, slot=%s",
		caller.ID, req.FacilityID, req.Date.Format(domain.DateFormat), req.SlotLabel)

	// 1. Валидация входных данных
	if err := validateRequest(req, caller); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект из каталога
	facility, err := uc.directory.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityDir.ErrFacilityNotFound) {
			uc.logger.Warn("CreateReservation: facility %s not found", req.FacilityID)
			uc.metrics.ReservationRejected(rejectReasonFacilityNotFound)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateReservation: failed to get facility %s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Проверяем операционный статус объекта
	if !facility.IsOperational() {
		uc.logger.Warn("CreateReservation: facility %s is not operational (status=%s)",
			facility.ID, facility.Status)
		uc.metrics.ReservationRejected(rejectReasonFacilityUnavailable)
		return nil, fmt.Errorf("%w: facility %s has status %q", ErrFacilityUnavailable, facility.ID, facility.Status)
	}

	// 4. Проверяем, что слот есть в сетке объекта
	slotStart, err := validateSlot(facility, req.SlotLabel)
	if err != nil {
		uc.logger.Warn("CreateReservation: slot validation failed: %v", err)
		uc.metrics.ReservationRejected(rejectReasonInvalidSlot)
		return nil, err
	}

	var result *domain.Reservation

	// 5. Проверка инвариантов и вставка — одна атомарная критическая секция.
	// Без неё два конкурентных запроса на последнее место могли бы оба
	// пройти проверку ёмкости до того, как кто-то из них вставит запись.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Ёмкость слота: считаются только активные бронирования
		activeCount, err := uc.reservationRepo.CountActiveForSlot(txCtx, facility.ID, req.Date, req.SlotLabel)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to count active reservations: %v", err)
			return fmt.Errorf("%w: failed to count active reservations: %v", ErrInternal, err)
		}

		if activeCount >= facility.Capacity {
			uc.logger.Warn("CreateReservation: slot %s full, %d/%d taken",
				req.SlotLabel, activeCount, facility.Capacity)
			uc.metrics.ReservationRejected(rejectReasonSlotFull)
			return ErrSlotFull
		}

		// 5.2. Один пользователь — одно активное бронирование на слот
		hasActive, err := uc.reservationRepo.HasActiveForRequester(txCtx, facility.ID, req.Date, req.SlotLabel, caller.ID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check duplicate booking: %v", err)
			return fmt.Errorf("%w: failed to check duplicate booking: %v", ErrInternal, err)
		}

		if hasActive {
			uc.logger.Warn("CreateReservation: requester %s already holds slot %s on %s",
				caller.ID, req.SlotLabel, req.Date.Format(domain.DateFormat))
			uc.metrics.ReservationRejected(rejectReasonDuplicate)
			return ErrDuplicateBooking
		}

		uc.logger.Info("CreateReservation: slot %s available, %d/%d taken",
			req.SlotLabel, activeCount, facility.Capacity)

		// 5.3. Создаём бронирование с денормализацией имён для истории
		reservation := &domain.Reservation{
			FacilityID:    facility.ID,
			FacilityName:  facility.Name,
			RequesterID:   caller.ID,
			RequesterName: caller.DisplayName,
			Date:          req.Date,
			SlotStart:     slotStart,
			SlotLabel:     req.SlotLabel,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.ReservationCreated()
	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)

	return fromDomain(result), nil
}
