package create_reservation

import (
	"time"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

// Request модель запроса на создание бронирования.
// Личность вызывающего передаётся отдельно — она разрешается middleware,
// а не телом запроса.
type Request struct {
	FacilityID string    // ID объекта
	Date       time.Time // Дата бронирования (без времени)
	SlotLabel  string    // Метка слота, например "10:00-11:00"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	FacilityID    string
	FacilityName  string
	RequesterID   string
	RequesterName string
	Date          time.Time
	SlotLabel     string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// fromDomain конвертирует доменную запись в response
func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:            res.ID,
		FacilityID:    res.FacilityID,
		FacilityName:  res.FacilityName,
		RequesterID:   res.RequesterID,
		RequesterName: res.RequesterName,
		Date:          res.Date,
		SlotLabel:     res.SlotLabel,
		Status:        string(res.Status),
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
}
