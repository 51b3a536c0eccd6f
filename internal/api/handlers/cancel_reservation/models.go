package cancel_reservation

import (
	"time"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/internal/service/reservations/models"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            string  `json:"id"`
	FacilityID    string  `json:"facilityId"`
	FacilityName  string  `json:"facilityName"`
	RequesterID   string  `json:"requesterId"`
	RequesterName string  `json:"requesterName"`
	Date          string  `json:"date"`
	SlotLabel     string  `json:"slotLabel"`
	Status        string  `json:"status"`
	CancelledAt   *string `json:"cancelledAt,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(res *models.ReservationResponse) *ReservationResponse {
	var cancelledAt *string
	if res.CancelledAt != nil {
		formatted := res.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &ReservationResponse{
		ID:            res.ID,
		FacilityID:    res.FacilityID,
		FacilityName:  res.FacilityName,
		RequesterID:   res.RequesterID,
		RequesterName: res.RequesterName,
		Date:          res.Date.Format(domain.DateFormat),
		SlotLabel:     res.SlotLabel,
		Status:        res.Status,
		CancelledAt:   cancelledAt,
		CreatedAt:     res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     res.UpdatedAt.Format(time.RFC3339),
	}
}
