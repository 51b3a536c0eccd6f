// Package reservationpg реализует PostgreSQL-вариант хранилища бронирований.
// Контракт движка не меняется: долговременное хранилище — опциональный режим,
// включается через [database] в конфигурации. Схема — single table
// reservations, отмена остаётся сменой статуса, физического удаления нет.
package reservationpg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/CMH-ReservationService/pkg/txmanager"
)

var reservationColumns = []string{
	"id",
	"facility_id",
	"facility_name",
	"requester_id",
	"requester_name",
	"reservation_date",
	"slot_start",
	"slot_label",
	"status",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований поверх PostgreSQL
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Если в контексте открыта транзакция (через txmanager), использует её.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	created := *res
	created.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"facility_id",
			"facility_name",
			"requester_id",
			"requester_name",
			"reservation_date",
			"slot_start",
			"slot_label",
			"status",
		).
		Values(
			created.ID,
			created.FacilityID,
			created.FacilityName,
			created.RequesterID,
			created.RequesterName,
			created.Date,
			created.SlotStart,
			created.SlotLabel,
			created.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created.CreatedAt = createdAt.Time
	created.UpdatedAt = updatedAt.Time

	return &created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByRequesterID получает список бронирований пользователя.
// Опционально фильтрует по статусу.
func (r *Repository) GetByRequesterID(ctx context.Context, requesterID string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("reservation_date DESC, slot_start DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequesterID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequesterID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByFacilityWithFilter получает бронирования объекта с гибкой фильтрацией
func (r *Repository) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityReservationsFilter) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"facility_id": filter.FacilityID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reservation_date": *filter.Date})
	}
	if filter.SlotLabel != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_label": *filter.SlotLabel})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings()})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("slot_start ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("reservation_date DESC, slot_start DESC")
	}

	// Внутри транзакции блокируем строки на конкретную дату: критическая
	// секция создания бронирования (подсчёт ёмкости + вставка)
	if txmanager.InTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// CountActiveForSlot подсчитывает активные бронирования на слот
func (r *Repository) CountActiveForSlot(ctx context.Context, facilityID string, date time.Time, slotLabel string) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{
			"facility_id":      facilityID,
			"reservation_date": date,
			"slot_label":       slotLabel,
			"status":           activeStatusStrings(),
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveForSlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveForSlot - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// HasActiveForRequester проверяет, держит ли пользователь активное бронирование на этот слот
func (r *Repository) HasActiveForRequester(ctx context.Context, facilityID string, date time.Time, slotLabel, requesterID string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{
			"facility_id":      facilityID,
			"reservation_date": date,
			"slot_label":       slotLabel,
			"requester_id":     requesterID,
			"status":           activeStatusStrings(),
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasActiveForRequester - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasActiveForRequester - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// UpdateStatus обновляет статус бронирования и возвращает обновлённую запись
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// Cancel переводит бронирование в статус cancelled и возвращает обновлённую запись
func (r *Repository) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.FacilityID,
		&res.FacilityName,
		&res.RequesterID,
		&res.RequesterName,
		&res.Date,
		&res.SlotStart,
		&res.SlotLabel,
		&res.Status,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func activeStatusStrings() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func joinColumns() string {
	cols := ""
	for i, c := range reservationColumns {
		if i > 0 {
			cols += ", "
		}
		cols += c
	}
	return cols
}
