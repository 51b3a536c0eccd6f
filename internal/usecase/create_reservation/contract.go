package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	CountActiveForSlot(ctx context.Context, facilityID string, date time.Time, slotLabel string) (int, error)
	HasActiveForRequester(ctx context.Context, facilityID string, date time.Time, slotLabel, requesterID string) (bool, error)
}

// FacilityDirectory интерфейс read-only каталога объектов
type FacilityDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// TransactionManager интерфейс для управления транзакциями.
// Проверка ёмкости слота и вставка бронирования выполняются в одной
// сериализуемой транзакции (критической секции).
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных счётчиков
type Metrics interface {
	ReservationCreated()
	ReservationRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
