package domain

import "github.com/m04kA/CMH-ReservationService/pkg/types"

// SlotLabel возвращает каноническую метку слота вида "10:00-11:00".
// Метка однозначно идентифицирует слот в рамках пары (объект, дата).
func SlotLabel(start types.TimeString) (string, error) {
	end, err := start.AddMinutes(SlotDurationMinutes)
	if err != nil {
		return "", err
	}
	return start.String() + "-" + end.String(), nil
}

// CongestionLevel display-only bucket computed from slot occupancy
type CongestionLevel string

const (
	CongestionLight     CongestionLevel = "light"
	CongestionModerate  CongestionLevel = "moderate"
	CongestionCongested CongestionLevel = "congested"
	CongestionFull      CongestionLevel = "full"
)

// SlotAvailability represents the occupancy view of a single time slot
type SlotAvailability struct {
	SlotLabel   string
	StartTime   types.TimeString
	Capacity    int
	BookedCount int // Активные (не отменённые) бронирования
	Remaining   int
}

// IsFull returns true if the slot has no remaining capacity
func (s *SlotAvailability) IsFull() bool {
	return s.Remaining <= 0
}

// OccupancyRate returns the occupancy ratio in [0, 1]
func (s *SlotAvailability) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.BookedCount) / float64(s.Capacity)
}

// Congestion classifies the slot by fixed occupancy thresholds
func (s *SlotAvailability) Congestion() CongestionLevel {
	switch rate := s.OccupancyRate(); {
	case s.IsFull():
		return CongestionFull
	case rate > CongestedOccupancyRate:
		return CongestionCongested
	case rate > ModerateOccupancyRate:
		return CongestionModerate
	default:
		return CongestionLight
	}
}
