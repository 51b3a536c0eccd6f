package get_facility

import (
	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

// FacilityResponse HTTP response model
type FacilityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Capacity  int    `json:"capacity"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(facility *domain.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:        facility.ID,
		Name:      facility.Name,
		Status:    string(facility.Status),
		Capacity:  facility.Capacity,
		OpenTime:  facility.OpenTime.String(),
		CloseTime: facility.CloseTime.String(),
	}
}
