package domain

import (
	"time"

	"github.com/m04kA/CMH-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Valid returns true if the status is one of the known values
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status machine allows the transition.
// pending -> confirmed | cancelled, confirmed -> cancelled, cancelled is absorbing.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// Reservation represents a booked facility slot
type Reservation struct {
	ID          string
	FacilityID  string
	RequesterID string
	Date        time.Time
	SlotStart   types.TimeString
	SlotLabel   string
	Status      ReservationStatus

	// Denormalized data for history: snapshots taken at creation time,
	// не меняются при последующих изменениях каталога объектов
	FacilityName  string
	RequesterName string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation counts against slot capacity
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// FacilityReservationsFilter фильтр для получения бронирований объекта
type FacilityReservationsFilter struct {
	FacilityID      string             // Обязательный параметр
	Date            *time.Time         // Фильтр по дате (опционально, если nil - все даты)
	SlotLabel       *string            // Фильтр по слоту (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые бронирования
}
