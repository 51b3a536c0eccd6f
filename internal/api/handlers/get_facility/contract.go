package get_facility

import (
	"context"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

type FacilityService interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
