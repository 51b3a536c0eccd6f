package reservations

import (
	"context"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByRequesterID(ctx context.Context, requesterID string, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями.
// Отмена — это read-modify-write и выполняется под той же блокировкой,
// что и создание.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных счётчиков
type Metrics interface {
	ReservationCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
