package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotLabel(t *testing.T) {
	label, err := SlotLabel("10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00-11:00", label)

	label, err = SlotLabel("06:00")
	require.NoError(t, err)
	assert.Equal(t, "06:00-07:00", label)

	// Последний час суток через полночь не переходит
	_, err = SlotLabel("23:30")
	assert.Error(t, err)

	_, err = SlotLabel("not a time")
	assert.Error(t, err)
}

func TestSlotAvailability_Congestion(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		booked   int
		want     CongestionLevel
	}{
		{name: "empty slot", capacity: 20, booked: 0, want: CongestionLight},
		{name: "exactly half", capacity: 20, booked: 10, want: CongestionLight},
		{name: "just above half", capacity: 20, booked: 11, want: CongestionModerate},
		{name: "exactly eighty percent", capacity: 20, booked: 16, want: CongestionModerate},
		{name: "just above eighty percent", capacity: 20, booked: 17, want: CongestionCongested},
		{name: "full", capacity: 20, booked: 20, want: CongestionFull},
		{name: "capacity one booked", capacity: 1, booked: 1, want: CongestionFull},
		{name: "capacity one free", capacity: 1, booked: 0, want: CongestionLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := &SlotAvailability{
				Capacity:    tt.capacity,
				BookedCount: tt.booked,
				Remaining:   tt.capacity - tt.booked,
			}
			assert.Equal(t, tt.want, slot.Congestion())
		})
	}
}

func TestSlotAvailability_IsFull(t *testing.T) {
	slot := &SlotAvailability{Capacity: 4, BookedCount: 4, Remaining: 0}
	assert.True(t, slot.IsFull())

	slot.Remaining = 1
	assert.False(t, slot.IsFull())
}

func TestFacility_IsOperational(t *testing.T) {
	facility := &Facility{Status: FacilityOpen}
	assert.True(t, facility.IsOperational())

	facility.Status = FacilityMaintenance
	assert.False(t, facility.IsOperational())

	facility.Status = FacilityClosed
	assert.False(t, facility.IsOperational())
}

func TestCallerIdentity_IsStaff(t *testing.T) {
	assert.False(t, CallerIdentity{Role: RoleMember}.IsStaff())
	assert.True(t, CallerIdentity{Role: RoleStaff}.IsStaff())
	assert.True(t, CallerIdentity{Role: RoleAdmin}.IsStaff())
}
