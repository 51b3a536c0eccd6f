package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, caller domain.CallerIdentity) error {
	if caller.ID == "" {
		return fmt.Errorf("%w: caller identity is required", ErrInvalidInput)
	}

	if req.FacilityID == "" {
		return fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotLabel == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	return nil
}

// parseSlotLabel разбирает метку слота "HH:MM-HH:MM" и возвращает начало интервала
func parseSlotLabel(label string) (types.TimeString, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: slot %q is malformed, expected HH:MM-HH:MM", ErrInvalidSlot, label)
	}

	start, err := types.NewTimeStringFromString(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: slot %q: %v", ErrInvalidSlot, label, err)
	}

	if _, err := types.NewTimeStringFromString(parts[1]); err != nil {
		return "", fmt.Errorf("%w: slot %q: %v", ErrInvalidSlot, label, err)
	}

	return start, nil
}

// validateSlot проверяет, что метка слота точно совпадает с одним из слотов,
// перечисляемых моделью ёмкости для данного объекта: часовые полуинтервалы
// [start, end) от открытия до закрытия, финальный неполный интервал
// отбрасывается.
func validateSlot(facility *domain.Facility, label string) (types.TimeString, error) {
	start, err := parseSlotLabel(label)
	if err != nil {
		return "", err
	}

	// Каноническая метка фиксирует и ширину слота: "10:00-11:30" отсеется здесь
	canonical, err := domain.SlotLabel(start)
	if err != nil || canonical != label {
		return "", fmt.Errorf("%w: slot %q does not match the %d-minute grid", ErrInvalidSlot, label, domain.SlotDurationMinutes)
	}

	current := facility.OpenTime
	for current.IsBefore(facility.CloseTime) {
		slotEnd, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(facility.CloseTime) {
			break
		}

		if current == start {
			return start, nil
		}

		current = slotEnd
	}

	return "", fmt.Errorf("%w: slot %q is outside facility hours %s-%s",
		ErrInvalidSlot, label, facility.OpenTime, facility.CloseTime)
}
