package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	facilityDir "github.com/m04kA/CMH-ReservationService/internal/infra/storage/facility"
)

// Service read-only сервис каталога объектов для дашбордов
type Service struct {
	directory FacilityDirectory
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(directory FacilityDirectory, logger Logger) *Service {
	return &Service{
		directory: directory,
		logger:    logger,
	}
}

// GetByID получает объект по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	facility, err := s.directory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityDir.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility %s not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: directory error for facility %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - directory error: %v", ErrInternal, err)
	}

	return facility, nil
}

// List возвращает все объекты каталога
func (s *Service) List(ctx context.Context) ([]*domain.Facility, error) {
	facilities, err := s.directory.List(ctx)
	if err != nil {
		s.logger.Error("List: directory error: %v", err)
		return nil, fmt.Errorf("%w: List - directory error: %v", ErrInternal, err)
	}

	return facilities, nil
}
