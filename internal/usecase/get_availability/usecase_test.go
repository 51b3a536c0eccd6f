package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMH-ReservationService/internal/config"
	"github.com/m04kA/CMH-ReservationService/internal/domain"
	facilityStore "github.com/m04kA/CMH-ReservationService/internal/infra/storage/facility"
	reservationStore "github.com/m04kA/CMH-ReservationService/internal/infra/storage/reservation"
)

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newFixture(t *testing.T) (*UseCase, *reservationStore.Repository) {
	t.Helper()

	directory, err := facilityStore.NewDirectory([]config.FacilityConfig{
		{ID: "gym", Name: "Community Gym", Status: "open", Capacity: 2, OpenTime: "09:00", CloseTime: "12:00"},
		{ID: "pool", Name: "Swimming Pool", Status: "maintenance", Capacity: 15, OpenTime: "08:00", CloseTime: "20:00"},
		{ID: "studio", Name: "Dance Studio", Status: "open", Capacity: 5, OpenTime: "09:00", CloseTime: "12:30"},
	})
	require.NoError(t, err)

	repo := reservationStore.NewRepository()
	return NewUseCase(repo, directory, nopLogger{}), repo
}

func book(t *testing.T, repo *reservationStore.Repository, facilityID, requesterID, slotLabel string, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()

	created, err := repo.Create(context.Background(), &domain.Reservation{
		FacilityID:  facilityID,
		RequesterID: requesterID,
		Date:        testDate,
		SlotLabel:   slotLabel,
		Status:      status,
	})
	require.NoError(t, err)
	return created
}

func TestExecute_EnumeratesHourlySlots(t *testing.T) {
	useCase, _ := newFixture(t)

	resp, err := useCase.Execute(context.Background(), &Request{FacilityID: "gym", Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "09:00-10:00", resp.Slots[0].SlotLabel)
	assert.Equal(t, "10:00-11:00", resp.Slots[1].SlotLabel)
	assert.Equal(t, "11:00-12:00", resp.Slots[2].SlotLabel)

	for _, slot := range resp.Slots {
		assert.Equal(t, 2, slot.Capacity)
		assert.Equal(t, 0, slot.BookedCount)
		assert.Equal(t, 2, slot.Remaining)
		assert.Equal(t, domain.CongestionLight, slot.Congestion)
	}
}

func TestExecute_PartialFinalSlotIsDropped(t *testing.T) {
	useCase, _ := newFixture(t)

	// 09:00-12:30: слот 12:00-13:00 не помещается, 12:00-12:30 не бывает
	resp, err := useCase.Execute(context.Background(), &Request{FacilityID: "studio", Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "11:00-12:00", resp.Slots[2].SlotLabel)
}

func TestExecute_CountsOnlyActiveReservations(t *testing.T) {
	useCase, repo := newFixture(t)

	book(t, repo, "gym", "u-1", "10:00-11:00", domain.StatusConfirmed)
	book(t, repo, "gym", "u-2", "10:00-11:00", domain.StatusPending)
	cancelled := book(t, repo, "gym", "u-3", "10:00-11:00", domain.StatusConfirmed)
	_, err := repo.Cancel(context.Background(), cancelled.ID)
	require.NoError(t, err)

	resp, err := useCase.Execute(context.Background(), &Request{FacilityID: "gym", Date: testDate})
	require.NoError(t, err)

	slot := resp.Slots[1]
	require.Equal(t, "10:00-11:00", slot.SlotLabel)
	assert.Equal(t, 2, slot.BookedCount)
	assert.Equal(t, 0, slot.Remaining)
	assert.Equal(t, domain.CongestionFull, slot.Congestion)
}

func TestExecute_IgnoresOtherDates(t *testing.T) {
	useCase, repo := newFixture(t)

	book(t, repo, "gym", "u-1", "10:00-11:00", domain.StatusConfirmed)

	resp, err := useCase.Execute(context.Background(), &Request{
		FacilityID: "gym",
		Date:       testDate.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Slots[1].BookedCount)
}

func TestExecute_NonOperationalFacilityHasNoSlots(t *testing.T) {
	useCase, _ := newFixture(t)

	resp, err := useCase.Execute(context.Background(), &Request{FacilityID: "pool", Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, domain.FacilityMaintenance, resp.FacilityStatus)
	assert.Empty(t, resp.Slots)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	useCase, _ := newFixture(t)

	_, err := useCase.Execute(context.Background(), &Request{FacilityID: "sauna", Date: testDate})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_InputValidation(t *testing.T) {
	useCase, _ := newFixture(t)

	_, err := useCase.Execute(context.Background(), &Request{Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = useCase.Execute(context.Background(), &Request{FacilityID: "gym"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
