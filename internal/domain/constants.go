package domain

// Slot model constants
const (
	// SlotDurationMinutes фиксированная ширина слота: рабочий день объекта
	// разбивается на часовые интервалы [start, end)
	SlotDurationMinutes = 60
)

// Congestion classification thresholds (доли занятости слота)
const (
	ModerateOccupancyRate  = 0.5
	CongestedOccupancyRate = 0.8
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, учитываемых при подсчёте ёмкости слота
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
