package get_availability

import (
	"time"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

// Request модель запроса на получение занятости слотов
type Request struct {
	FacilityID string    // ID объекта
	Date       time.Time // Дата, на которую запрашивается занятость
}

// Response модель ответа с занятостью по слотам.
// Проекция текущего состояния движка: пересчитывается на каждый вызов,
// никакого собственного состояния и кеширования.
type Response struct {
	FacilityID     string
	FacilityName   string
	FacilityStatus domain.FacilityStatus
	Date           time.Time
	Slots          []Slot
}

// Slot занятость одного временного слота
type Slot struct {
	SlotLabel   string
	Capacity    int
	BookedCount int
	Remaining   int
	Congestion  domain.CongestionLevel
}
