package list_facility_reservations

import (
	"net/url"
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

// ReservationListResponse список бронирований объекта
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

// ParseServiceRequest собирает запрос сервиса из facilityId и query-параметров.
// Поддерживаемые параметры: date=YYYY-MM-DD, status=<статус>, includeInactive=true
func ParseServiceRequest(facilityID string, query url.Values) (*models.ListFacilityReservationsRequest, error) {
	req := &models.ListFacilityReservationsRequest{
		FacilityID:      facilityID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationListResponse) *ReservationListResponse {
	reservations := make([]*ReservationResponse, 0, len(resp.Reservations))
	for _, res := range resp.Reservations {
		var cancelledAt *string
		if res.CancelledAt != nil {
			formatted := res.CancelledAt.Format(time.RFC3339)
			cancelledAt = &formatted
		}

		reservations = append(reservations, &ReservationResponse{
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
		})
	}
	return &ReservationListResponse{Reservations: reservations}
}
