package list_facility_reservations

import (
	"context"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	ListByFacility(ctx context.Context, req *models.ListFacilityReservationsRequest, caller domain.CallerIdentity) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
