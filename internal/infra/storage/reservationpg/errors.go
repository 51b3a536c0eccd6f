package reservationpg

import (
	"errors"

	"github.com/m04kA/CMH-ReservationService/internal/infra/storage/reservation"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено.
	// Общий sentinel с in-memory хранилищем: сервисный слой различает
	// "не найдено" одним errors.Is независимо от выбранного хранилища.
	ErrReservationNotFound = reservation.ErrReservationNotFound

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservationpg.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservationpg.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservationpg.repository: failed to scan row")
)
