package facility

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/CMH-ReservationService/internal/config"
	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/pkg/types"
)

// Directory read-only каталог объектов сообщества.
//
// Внешний справочник с точки зрения движка бронирований: наполняется один
// раз при старте из конфигурации и с этого момента неизменяем, поэтому
// блокировки при чтении не нужны.
type Directory struct {
	facilities map[string]*domain.Facility
}

// NewDirectory создает каталог из seed-данных конфигурации
func NewDirectory(seed []config.FacilityConfig) (*Directory, error) {
	facilities := make(map[string]*domain.Facility, len(seed))

	for _, fc := range seed {
		status := domain.FacilityStatus(fc.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: facility %q: unknown status %q", ErrInvalidSeed, fc.ID, fc.Status)
		}

		openTime, err := types.NewTimeStringFromString(fc.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: facility %q: open_time: %v", ErrInvalidSeed, fc.ID, err)
		}
		closeTime, err := types.NewTimeStringFromString(fc.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: facility %q: close_time: %v", ErrInvalidSeed, fc.ID, err)
		}
		if !openTime.IsBefore(closeTime) {
			return nil, fmt.Errorf("%w: facility %q: open_time %s must be before close_time %s",
				ErrInvalidSeed, fc.ID, openTime, closeTime)
		}

		if _, exists := facilities[fc.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate facility id %q", ErrInvalidSeed, fc.ID)
		}

		facilities[fc.ID] = &domain.Facility{
			ID:        fc.ID,
			Name:      fc.Name,
			Status:    status,
			Capacity:  fc.Capacity,
			OpenTime:  openTime,
			CloseTime: closeTime,
		}
	}

	return &Directory{facilities: facilities}, nil
}

// GetByID получает объект по ID
func (d *Directory) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	f, ok := d.facilities[id]
	if !ok {
		return nil, ErrFacilityNotFound
	}

	c := *f
	return &c, nil
}

// List возвращает все объекты каталога, отсортированные по ID
func (d *Directory) List(ctx context.Context) ([]*domain.Facility, error) {
	result := make([]*domain.Facility, 0, len(d.facilities))
	for _, f := range d.facilities {
		c := *f
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}
