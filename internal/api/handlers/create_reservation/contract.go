package create_reservation

import (
	"context"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	createReservation "github.com/m04kA/CMH-ReservationService/internal/usecase/create_reservation"
)

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request, caller domain.CallerIdentity) (*createReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
