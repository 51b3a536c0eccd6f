package facilities

import (
	"context"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

// FacilityDirectory интерфейс read-only каталога объектов
type FacilityDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
