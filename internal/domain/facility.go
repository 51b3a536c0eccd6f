package domain

import "github.com/m04kA/CMH-ReservationService/pkg/types"

// FacilityStatus represents the operating status of a facility
type FacilityStatus string

const (
	FacilityOpen        FacilityStatus = "open"
	FacilityMaintenance FacilityStatus = "maintenance"
	FacilityClosed      FacilityStatus = "closed"
)

// Valid returns true if the status is one of the known values
func (s FacilityStatus) Valid() bool {
	switch s {
	case FacilityOpen, FacilityMaintenance, FacilityClosed:
		return true
	default:
		return false
	}
}

// Facility represents a bookable community facility.
// Каталог объектов принадлежит справочнику и неизменяем со стороны
// движка бронирований в рамках запроса.
type Facility struct {
	ID        string
	Name      string
	Status    FacilityStatus
	Capacity  int              // Максимальное число одновременных бронирований слота
	OpenTime  types.TimeString // Начало рабочего дня
	CloseTime types.TimeString // Конец рабочего дня
}

// IsOperational returns true if the facility accepts bookings
func (f *Facility) IsOperational() bool {
	return f.Status == FacilityOpen
}
