package get_availability

import (
	"github.com/m04kA/CMH-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/CMH-ReservationService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FacilityID     string         `json:"facilityId"`
	FacilityName   string         `json:"facilityName"`
	FacilityStatus string         `json:"facilityStatus"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
}

// SlotResponse занятость одного временного слота
type SlotResponse struct {
	SlotLabel   string `json:"slotLabel"`
	Capacity    int    `json:"capacity"`
	BookedCount int    `json:"bookedCount"`
	Remaining   int    `json:"remaining"`
	Congestion  string `json:"congestion"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			SlotLabel:   slot.SlotLabel,
			Capacity:    slot.Capacity,
			BookedCount: slot.BookedCount,
			Remaining:   slot.Remaining,
			Congestion:  string(slot.Congestion),
		})
	}

	return &AvailabilityResponse{
		FacilityID:     resp.FacilityID,
		FacilityName:   resp.FacilityName,
		FacilityStatus: string(resp.FacilityStatus),
		Date:           resp.Date.Format(domain.DateFormat),
		Slots:          slots,
	}
}
