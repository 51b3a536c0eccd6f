package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/CMH-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/CMH-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с существующими бронированиями:
// просмотр, списки, отмена и переходы статусов.
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только своё бронирование; staff — любое.
func (s *Service) GetByID(ctx context.Context, id string, caller domain.CallerIdentity) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for caller=%s", id, caller.ID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.RequesterID != caller.ID && !caller.IsStaff() {
		s.logger.Warn("GetByID: access denied for caller=%s to reservation id=%s", caller.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation), nil
}

// ListByRequester получает все бронирования вызывающего (любой статус).
// Для пользователя без бронирований возвращает пустой список, не ошибку.
// Порядок не гарантируется.
func (s *Service) ListByRequester(ctx context.Context, caller domain.CallerIdentity) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByRequester: fetching reservations for caller=%s", caller.ID)

	reservations, err := s.reservationRepo.GetByRequesterID(ctx, caller.ID, nil)
	if err != nil {
		s.logger.Error("ListByRequester: repository error for caller=%s: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: ListByRequester - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByRequester: fetched %d reservations for caller=%s", len(reservations), caller.ID)
	return models.FromDomainReservationList(reservations), nil
}

// ListByFacility получает бронирования объекта с фильтрацией.
// Доступно только staff — источник данных для админских дашбордов.
func (s *Service) ListByFacility(ctx context.Context, req *models.ListFacilityReservationsRequest, caller domain.CallerIdentity) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByFacility: facility=%s, caller=%s", req.FacilityID, caller.ID)

	if !caller.IsStaff() {
		s.logger.Warn("ListByFacility: access denied for caller=%s (role=%s)", caller.ID, caller.Role)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByFacility: invalid filter for facility=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByFacility: repository error for facility=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: ListByFacility - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByFacility: fetched %d reservations for facility=%s", len(reservations), req.FacilityID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование и возвращает обновлённую запись.
//
// Пользователь может отменить только своё бронирование; staff — любое.
// Повторная отмена идемпотентна: желаемое конечное состояние уже
// достигнуто, возвращается запись без изменений и без ошибки.
func (s *Service) Cancel(ctx context.Context, reservationID string, caller domain.CallerIdentity) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%s by caller=%s", reservationID, caller.ID)

	var cancelled *domain.Reservation

	// read-modify-write под той же блокировкой, что и создание
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Cancel: reservation id=%s not found", reservationID)
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%s: %v", reservationID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if reservation.RequesterID != caller.ID && !caller.IsStaff() {
			s.logger.Warn("Cancel: access denied for caller=%s to reservation id=%s", caller.ID, reservationID)
			return ErrAccessDenied
		}

		if reservation.IsCancelled() {
			s.logger.Info("Cancel: reservation id=%s already cancelled, no-op", reservationID)
			cancelled = reservation
			return nil
		}

		updated, err := s.reservationRepo.Cancel(txCtx, reservationID)
		if err != nil {
			s.logger.Error("Cancel: repository error for reservation id=%s: %v", reservationID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		s.metrics.ReservationCancelled()
		cancelled = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: reservation id=%s is cancelled", reservationID)
	return models.FromDomainReservation(cancelled), nil
}

// UpdateStatus выполняет переход статуса бронирования.
// Доступно только staff. Переход валидируется доменной таблицей:
// pending -> confirmed|cancelled, confirmed -> cancelled.
func (s *Service) UpdateStatus(ctx context.Context, reservationID string, newStatus string, caller domain.CallerIdentity) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: reservation id=%s -> %s by caller=%s", reservationID, newStatus, caller.ID)

	if !caller.IsStaff() {
		s.logger.Warn("UpdateStatus: access denied for caller=%s (role=%s)", caller.ID, caller.Role)
		return nil, ErrAccessDenied
	}

	status, err := models.ToDomainReservationStatus(newStatus)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%s", newStatus, reservationID)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, newStatus)
	}

	var updated *domain.Reservation

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("UpdateStatus: reservation id=%s not found", reservationID)
				return ErrReservationNotFound
			}
			s.logger.Error("UpdateStatus: repository error for reservation id=%s: %v", reservationID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !reservation.Status.CanTransitionTo(status) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for reservation id=%s",
				reservation.Status, status, reservationID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, status)
		}

		if status == domain.StatusCancelled {
			updated, err = s.reservationRepo.Cancel(txCtx, reservationID)
		} else {
			updated, err = s.reservationRepo.UpdateStatus(txCtx, reservationID, status)
		}
		if err != nil {
			s.logger.Error("UpdateStatus: repository error for reservation id=%s: %v", reservationID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if status == domain.StatusCancelled {
			s.metrics.ReservationCancelled()
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: reservation id=%s updated to status=%s", reservationID, updated.Status)
	return models.FromDomainReservation(updated), nil
}
