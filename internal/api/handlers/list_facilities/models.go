package list_facilities

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

// FacilityListResponse список объектов
type FacilityListResponse struct {
	Facilities []*FacilityResponse `json:"facilities"`
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(list []*domain.Facility) *FacilityListResponse {
	facilities := make([]*FacilityResponse, 0, len(list))
	for _, facility := range list {
		facilities = append(facilities, &FacilityResponse{
			ID:        facility.ID,
			Name:      facility.Name,
			Status:    string(facility.Status),
			Capacity:  facility.Capacity,
			OpenTime:  facility.OpenTime.String(),
			CloseTime: facility.CloseTime.String(),
		})
	}
	return &FacilityListResponse{Facilities: facilities}
}
