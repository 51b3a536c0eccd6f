package create_reservation

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден в каталоге
	ErrFacilityNotFound = errors.New("create_reservation: facility not found")

	// ErrFacilityUnavailable возвращается, когда объект существует, но не принимает бронирования
	ErrFacilityUnavailable = errors.New("create_reservation: facility is not operational")

	// ErrInvalidSlot возвращается, когда слот некорректен или вне рабочих часов объекта
	ErrInvalidSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotFull возвращается, когда ёмкость слота исчерпана
	ErrSlotFull = errors.New("create_reservation: slot is full")

	// ErrDuplicateBooking возвращается, когда пользователь уже держит
	// активное бронирование на этот слот
	ErrDuplicateBooking = errors.New("create_reservation: duplicate active booking for this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
