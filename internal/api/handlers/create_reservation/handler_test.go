package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMH-ReservationService/internal/auth"
	"github.com/m04kA/CMH-ReservationService/internal/domain"
	createReservation "github.com/m04kA/CMH-ReservationService/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// mockUseCase возвращает заранее заданный результат
type mockUseCase struct {
	resp   *createReservation.Response
	err    error
	caller domain.CallerIdentity
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request, caller domain.CallerIdentity) (*createReservation.Response, error) {
	m.caller = caller
	return m.resp, m.err
}

func doRequest(t *testing.T, useCase CreateReservationUseCase, body string, identity *domain.CallerIdentity) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString(body))
	if identity != nil {
		req = req.WithContext(auth.ContextWithIdentity(req.Context(), *identity))
	}

	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	useCase := &mockUseCase{
		resp: &createReservation.Response{
			ID:            "res-1",
			FacilityID:    "gym",
			FacilityName:  "Community Gym",
			RequesterID:   "u-1",
			RequesterName: "Alice",
			Date:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			SlotLabel:     "10:00-11:00",
			Status:        "confirmed",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
	identity := domain.CallerIdentity{ID: "u-1", DisplayName: "Alice", Role: domain.RoleMember}

	rec := doRequest(t, useCase,
		`{"facilityId":"gym","date":"2026-09-01","slotLabel":"10:00-11:00"}`, &identity)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, identity, useCase.caller)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "2026-09-01", resp.Date)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_NoIdentity(t *testing.T) {
	rec := doRequest(t, &mockUseCase{},
		`{"facilityId":"gym","date":"2026-09-01","slotLabel":"10:00-11:00"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	identity := domain.CallerIdentity{ID: "u-1"}

	rec := doRequest(t, &mockUseCase{}, `{not json`, &identity)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, &mockUseCase{},
		`{"facilityId":"gym","date":"01.09.2026","slotLabel":"10:00-11:00"}`, &identity)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	identity := domain.CallerIdentity{ID: "u-1"}
	body := `{"facilityId":"gym","date":"2026-09-01","slotLabel":"10:00-11:00"}`

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "facility not found", err: createReservation.ErrFacilityNotFound, wantCode: http.StatusNotFound},
		{name: "facility unavailable", err: createReservation.ErrFacilityUnavailable, wantCode: http.StatusBadRequest},
		{name: "invalid slot", err: createReservation.ErrInvalidSlot, wantCode: http.StatusBadRequest},
		{name: "slot full", err: createReservation.ErrSlotFull, wantCode: http.StatusConflict},
		{name: "duplicate booking", err: createReservation.ErrDuplicateBooking, wantCode: http.StatusConflict},
		{name: "invalid input", err: createReservation.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal error", err: createReservation.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &mockUseCase{err: tt.err}, body, &identity)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
