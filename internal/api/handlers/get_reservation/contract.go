package get_reservation

import (
	"context"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id string, caller domain.CallerIdentity) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
