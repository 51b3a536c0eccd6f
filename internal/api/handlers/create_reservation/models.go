package create_reservation

import (
	"time"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	createReservation "github.com/m04kA/CMH-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FacilityID string `json:"facilityId"`
	Date       string `json:"date"` // "2026-09-01"
	SlotLabel  string `json:"slotLabel"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            string `json:"id"`
	FacilityID    string `json:"facilityId"`
	FacilityName  string `json:"facilityName"`
	RequesterID   string `json:"requesterId"`
	RequesterName string `json:"requesterName"`
	Date          string `json:"date"`
	SlotLabel     string `json:"slotLabel"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		FacilityID: r.FacilityID,
		Date:       date,
		SlotLabel:  r.SlotLabel,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		FacilityID:    resp.FacilityID,
		FacilityName:  resp.FacilityName,
		RequesterID:   resp.RequesterID,
		RequesterName: resp.RequesterName,
		Date:          resp.Date.Format(domain.DateFormat),
		SlotLabel:     resp.SlotLabel,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
