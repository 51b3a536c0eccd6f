package get_availability

import (
	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/pkg/types"
)

// enumerateSlots перечисляет слоты рабочего дня объекта: часовые
// полуинтервалы [start, end) от открытия до закрытия. Финальный неполный
// интервал отбрасывается — частичных слотов не бывает.
func enumerateSlots(facility *domain.Facility) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := facility.OpenTime

	for current.IsBefore(facility.CloseTime) {
		slotEnd, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(facility.CloseTime) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}

// buildSlotAvailability строит занятость по слотам из активных бронирований.
// Ёмкость каждого слота равна ёмкости объекта — общая ёмкость делится
// между слотами равномерно и отдельно не настраивается.
func buildSlotAvailability(
	facility *domain.Facility,
	slotStarts []types.TimeString,
	reservations []*domain.Reservation,
) ([]domain.SlotAvailability, error) {
	// Считаем активные бронирования по меткам слотов
	bookedByLabel := make(map[string]int)
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		bookedByLabel[res.SlotLabel]++
	}

	result := make([]domain.SlotAvailability, 0, len(slotStarts))
	for _, start := range slotStarts {
		label, err := domain.SlotLabel(start)
		if err != nil {
			return nil, err
		}

		booked := bookedByLabel[label]
		remaining := facility.Capacity - booked
		if remaining < 0 {
			remaining = 0
		}

		result = append(result, domain.SlotAvailability{
			SlotLabel:   label,
			StartTime:   start,
			Capacity:    facility.Capacity,
			BookedCount: booked,
			Remaining:   remaining,
		})
	}

	return result, nil
}
