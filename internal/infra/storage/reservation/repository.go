package reservation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/pkg/memtx"
)

// Repository in-memory хранилище бронирований.
//
// Коллекция принадлежит экземпляру репозитория и доступна только через его
// методы — никакого глобального состояния. Все методы потокобезопасны:
// вне транзакции метод берёт собственную блокировку, внутри транзакции
// (memtx.DoSerializable / DoReadOnly) работает под блокировкой менеджера.
// Бронирования никогда не удаляются физически — отмена меняет статус,
// история сохраняется.
type Repository struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository() *Repository {
	return &Repository{
		reservations: make(map[string]*domain.Reservation),
	}
}

// Locker возвращает мьютекс хранилища для построения memtx.Manager.
// Менеджер и репозиторий должны разделять одну блокировку, иначе
// критическая секция "проверка ёмкости + вставка" перестаёт быть атомарной.
func (r *Repository) Locker() *sync.RWMutex {
	return &r.mu
}

// Create сохраняет новое бронирование, присваивая ему ID и timestamps
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if !memtx.InTransaction(ctx) {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	now := time.Now()
	stored := *res
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.reservations[stored.ID] = &stored

	return copyReservation(&stored), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if !memtx.InTransaction(ctx) {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}

	return copyReservation(res), nil
}

// GetByRequesterID получает список бронирований пользователя, опционально фильтруя по статусу.
// Для пользователя без бронирований возвращает пустой слайс, не ошибку.
func (r *Repository) GetByRequesterID(ctx context.Context, requesterID string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	if !memtx.InTransaction(ctx) {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	result := make([]*domain.Reservation, 0)
	for _, res := range r.reservations {
		if res.RequesterID != requesterID {
			continue
		}
		if status != nil && res.Status != *status {
			continue
		}
		result = append(result, copyReservation(res))
	}

	return result, nil
}

// GetByFacilityWithFilter получает бронирования объекта с гибкой фильтрацией.
// Поддерживает фильтрацию по дате, слоту, статусу и включению отменённых.
func (r *Repository) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityReservationsFilter) ([]*domain.Reservation, error) {
	if !memtx.InTransaction(ctx) {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	result := make([]*domain.Reservation, 0)
	for _, res := range r.reservations {
		if res.FacilityID != filter.FacilityID {
			continue
		}
		if filter.Date != nil && !isSameDay(res.Date, *filter.Date) {
			continue
		}
		if filter.SlotLabel != nil && res.SlotLabel != *filter.SlotLabel {
			continue
		}
		if filter.Status != nil {
			if res.Status != *filter.Status {
				continue
			}
		} else if !filter.IncludeInactive && !res.IsActive() {
			continue
		}
		result = append(result, copyReservation(res))
	}

	return result, nil
}

// CountActiveForSlot подсчитывает активные бронирования на слот (capacity check).
// Отменённые бронирования ёмкость не занимают.
func (r *Repository) CountActiveForSlot(ctx context.Context, facilityID string, date time.Time, slotLabel string) (int, error) {
	if !memtx.InTransaction(ctx) {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	count := 0
	for _, res := range r.reservations {
		if res.FacilityID == facilityID && res.SlotLabel == slotLabel &&
			isSameDay(res.Date, date) && res.IsActive() {
			count++
		}
	}

	return count, nil
}

// HasActiveForRequester проверяет, держит ли пользователь активное бронирование на этот слот
func (r *Repository) HasActiveForRequester(ctx context.Context, facilityID string, date time.Time, slotLabel, requesterID string) (bool, error) {
	if !memtx.InTransaction(ctx) {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	for _, res := range r.reservations {
		if res.FacilityID == facilityID && res.SlotLabel == slotLabel &&
			res.RequesterID == requesterID && isSameDay(res.Date, date) && res.IsActive() {
			return true, nil
		}
	}

	return false, nil
}

// UpdateStatus обновляет статус бронирования и возвращает обновлённую запись
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !memtx.InTransaction(ctx) {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}

	res.Status = status
	res.UpdatedAt = time.Now()

	return copyReservation(res), nil
}

// Cancel переводит бронирование в статус cancelled и возвращает обновлённую запись
func (r *Repository) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	if !memtx.InTransaction(ctx) {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}

	now := time.Now()
	res.Status = domain.StatusCancelled
	res.CancelledAt = &now
	res.UpdatedAt = now

	return copyReservation(res), nil
}

// copyReservation возвращает копию записи, чтобы вызывающие не могли
// мутировать состояние хранилища в обход блокировки
func copyReservation(res *domain.Reservation) *domain.Reservation {
	c := *res
	if res.CancelledAt != nil {
		t := *res.CancelledAt
		c.CancelledAt = &t
	}
	return &c
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
