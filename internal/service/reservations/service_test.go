package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	reservationStore "github.com/m04kA/CMH-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/CMH-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/CMH-ReservationService/pkg/memtx"
	"github.com/m04kA/CMH-ReservationService/pkg/ptr"
)

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type spyMetrics struct {
	cancelled int
}

func (m *spyMetrics) ReservationCancelled() { m.cancelled++ }

var (
	alice = domain.CallerIdentity{ID: "u-1", DisplayName: "Alice", Role: domain.RoleMember}
	bob   = domain.CallerIdentity{ID: "u-2", DisplayName: "Bob", Role: domain.RoleMember}
	staff = domain.CallerIdentity{ID: "u-9", DisplayName: "Carol", Role: domain.RoleStaff}
)

func newFixture(t *testing.T) (*Service, *reservationStore.Repository, *spyMetrics) {
	t.Helper()

	repo := reservationStore.NewRepository()
	metrics := &spyMetrics{}
	svc := NewService(repo, memtx.NewManager(repo.Locker()), metrics, nopLogger{})
	return svc, repo, metrics
}

func book(t *testing.T, repo *reservationStore.Repository, requesterID, slotLabel string, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()

	created, err := repo.Create(context.Background(), &domain.Reservation{
		FacilityID:  "gym",
		RequesterID: requesterID,
		Date:        testDate,
		SlotLabel:   slotLabel,
		Status:      status,
	})
	require.NoError(t, err)
	return created
}

func TestGetByID_OwnerAndStaff(t *testing.T) {
	svc, repo, _ := newFixture(t)
	ctx := context.Background()

	created := book(t, repo, alice.ID, "10:00-11:00", domain.StatusConfirmed)

	// Владелец видит своё бронирование
	got, err := svc.GetByID(ctx, created.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Чужое бронирование скрыто
	_, err = svc.GetByID(ctx, created.ID, bob)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Staff видит любое
	got, err = svc.GetByID(ctx, created.ID, staff)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := newFixture(t)

	_, err := svc.GetByID(context.Background(), "no-such-id", alice)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestListByRequester(t *testing.T) {
	svc, repo, _ := newFixture(t)
	ctx := context.Background()

	book(t, repo, alice.ID, "10:00-11:00", domain.StatusConfirmed)
	cancelled := book(t, repo, alice.ID, "11:00-12:00", domain.StatusConfirmed)
	_, err := repo.Cancel(ctx, cancelled.ID)
	require.NoError(t, err)
	book(t, repo, bob.ID, "10:00-11:00", domain.StatusConfirmed)

	// История включает отменённые
	list, err := svc.ListByRequester(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, list.Reservations, 2)

	// Пустая история — пустой список, не ошибка
	list, err = svc.ListByRequester(ctx, staff)
	require.NoError(t, err)
	assert.Empty(t, list.Reservations)
}

func TestListByFacility_StaffOnly(t *testing.T) {
	svc, repo, _ := newFixture(t)
	ctx := context.Background()

	book(t, repo, alice.ID, "10:00-11:00", domain.StatusConfirmed)
	book(t, repo, bob.ID, "10:00-11:00", domain.StatusPending)

	req := &models.ListFacilityReservationsRequest{FacilityID: "gym"}

	_, err := svc.ListByFacility(ctx, req, alice)
	assert.ErrorIs(t, err, ErrAccessDenied)

	list, err := svc.ListByFacility(ctx, req, staff)
	require.NoError(t, err)
	assert.Len(t, list.Reservations, 2)
}

func TestListByFacility_StatusFilter(t *testing.T) {
	svc, repo, _ := newFixture(t)
	ctx := context.Background()

	book(t, repo, alice.ID, "10:00-11:00", domain.StatusConfirmed)
	book(t, repo, bob.ID, "11:00-12:00", domain.StatusPending)

	list, err := svc.ListByFacility(ctx, &models.ListFacilityReservationsRequest{
		FacilityID: "gym",
		Status:     ptr.Ptr(string(domain.StatusPending)),
	}, staff)
	require.NoError(t, err)
	require.Len(t, list.Reservations, 1)
	assert.Equal(t, bob.ID, list.Reservations[0].RequesterID)

	// Некорректный статус в фильтре
	_, err = svc.ListByFacility(ctx, &models.ListFacilityReservationsRequest{
		FacilityID: "gym",
		Status:     ptr.Ptr("archived"),
	}, staff)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Owner(t *testing.T) {
	svc, repo, metrics := newFixture(t)
	ctx := context.Background()

	created := book(t, repo, alice.ID, "10:00-11:00", domain.StatusConfirmed)

	cancelled, err := svc.Cancel(ctx, created.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, 1, metrics.cancelled)
}

func TestCancel_IsIdempotent(t *testing.T) {
	svc, repo, metrics := newFixture(t)
	ctx := context.Background()

	created := book(t, repo, alice.ID, "10:00-11:00", domain.StatusConfirmed)

	first, err := svc.Cancel(ctx, created.ID, alice)
	require.NoError(t, err)

	// Повторная отмена: тот же результат, без ошибки и без второго события
	second, err := svc.Cancel(ctx, created.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), second.Status)
	assert.Equal(t, first.CancelledAt, second.CancelledAt)
	assert.Equal(t, 1, metrics.cancelled)
}

func TestCancel_AccessControl(t *testing.T) {
	svc, repo, _ := newFixture(t)
	ctx := context.Background()

	created := book(t, repo, alice.ID, "10:00-11:00", domain.StatusConfirmed)

	// Чужое бронирование отменить нельзя
	_, err := svc.Cancel(ctx, created.ID, bob)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Staff может отменить любое
	cancelled, err := svc.Cancel(ctx, created.ID, staff)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _, _ := newFixture(t)

	_, err := svc.Cancel(context.Background(), "no-such-id", alice)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatus_StaffOnly(t *testing.T) {
	svc, repo, _ := newFixture(t)
	ctx := context.Background()

	created := book(t, repo, alice.ID, "10:00-11:00", domain.StatusPending)

	_, err := svc.UpdateStatus(ctx, created.ID, "confirmed", alice)
	assert.ErrorIs(t, err, ErrAccessDenied)

	updated, err := svc.UpdateStatus(ctx, created.ID, "confirmed", staff)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), updated.Status)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		from      domain.ReservationStatus
		to        string
		wantErr   error
		cancelled bool
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "pending to cancelled", from: domain.StatusPending, to: "cancelled", cancelled: true},
		{name: "confirmed to cancelled", from: domain.StatusConfirmed, to: "cancelled", cancelled: true},
		{name: "confirmed to pending", from: domain.StatusConfirmed, to: "pending", wantErr: ErrInvalidTransition},
		{name: "cancelled is absorbing", from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusPending, to: "archived", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, metrics := newFixture(t)
			created := book(t, repo, alice.ID, "10:00-11:00", tt.from)

			updated, err := svc.UpdateStatus(context.Background(), created.ID, tt.to, staff)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
			if tt.cancelled {
				assert.NotNil(t, updated.CancelledAt)
				assert.Equal(t, 1, metrics.cancelled)
			}
		})
	}
}
