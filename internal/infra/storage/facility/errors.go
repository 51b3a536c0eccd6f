package facility

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден в каталоге
	ErrFacilityNotFound = errors.New("facility.directory: facility not found")

	// ErrInvalidSeed возвращается при некорректных seed-данных каталога
	ErrInvalidSeed = errors.New("facility.directory: invalid seed data")
)
