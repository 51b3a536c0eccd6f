package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, ReservationStatus("archived").Valid())
	assert.False(t, ReservationStatus("").Valid())
}

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "confirmed to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "cancelled is absorbing", from: StatusCancelled, to: StatusPending, want: false},
		{name: "cancelled to confirmed", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "pending to itself", from: StatusPending, to: StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservation_IsActive(t *testing.T) {
	res := &Reservation{Status: StatusPending}
	assert.True(t, res.IsActive())

	res.Status = StatusConfirmed
	assert.True(t, res.IsActive())

	res.Status = StatusCancelled
	assert.False(t, res.IsActive())
	assert.True(t, res.IsCancelled())
}

func TestReservation_CanBeCancelled(t *testing.T) {
	now := time.Now()

	active := &Reservation{Status: StatusConfirmed}
	assert.True(t, active.CanBeCancelled())

	cancelled := &Reservation{Status: StatusCancelled, CancelledAt: &now}
	assert.False(t, cancelled.CanBeCancelled())
}
