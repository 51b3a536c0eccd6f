package models

import (
	"errors"
	"time"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListFacilityReservationsRequest запрос на получение бронирований объекта
type ListFacilityReservationsRequest struct {
	FacilityID      string
	Date            *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListFacilityReservationsRequest) ToDomainFilter() (domain.FacilityReservationsFilter, error) {
	filter := domain.FacilityReservationsFilter{
		FacilityID:      r.FacilityID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return domain.FacilityReservationsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse представление бронирования для вызывающих сервис
type ReservationResponse struct {
	ID            string
	FacilityID    string
	FacilityName  string
	RequesterID   string
	RequesterName string
	Date          time.Time
	SlotLabel     string
	Status        string
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse
}

// FromDomainReservation конвертирует доменную запись в response
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            res.ID,
		FacilityID:    res.FacilityID,
		FacilityName:  res.FacilityName,
		RequesterID:   res.RequesterID,
		RequesterName: res.RequesterName,
		Date:          res.Date,
		SlotLabel:     res.SlotLabel,
		Status:        string(res.Status),
		CancelledAt:   res.CancelledAt,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список доменных записей в response
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	reservations := make([]*ReservationResponse, 0, len(list))
	for _, res := range list {
		reservations = append(reservations, FromDomainReservation(res))
	}
	return &ReservationListResponse{Reservations: reservations}
}

// ToDomainReservationStatus валидирует и конвертирует статус из строки
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
