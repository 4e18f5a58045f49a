package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/GMS-SchedulingService/pkg/psqlbuilder"
)

// availabilityColumns полный набор колонок таблицы trainer_availability
var availabilityColumns = []string{
	"id",
	"trainer_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с окнами доступности тренеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно доступности
func (r *Repository) Create(ctx context.Context, window *domain.TrainerAvailability) (*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trainer_availability").
		Columns(
			"trainer_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_available",
			"is_active",
		).
		Values(
			window.TrainerID,
			int(window.DayOfWeek),
			window.StartTime,
			window.EndTime,
			window.IsAvailable,
			window.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// GetByID получает окно доступности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("trainer_availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	window, err := scanWindow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan availability: %v", ErrScanRow, err)
	}

	return window, nil
}

// GetByTrainer получает все окна тренера (включая деактивированные)
// Упорядочены по дню недели и времени начала
func (r *Repository) GetByTrainer(ctx context.Context, trainerID int64) ([]*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("trainer_availability").
		Where(squirrel.Eq{"trainer_id": trainerID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrainer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTrainer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// GetActiveByTrainerAndDay получает активные окна тренера на день недели
// Упорядочены по времени начала - этот порядок определяет порядок окон
// при генерации слотов
func (r *Repository) GetActiveByTrainerAndDay(ctx context.Context, trainerID int64, dayOfWeek time.Weekday) ([]*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("trainer_availability").
		Where(squirrel.Eq{
			"trainer_id":  trainerID,
			"day_of_week": int(dayOfWeek),
			"is_active":   true,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTrainerAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTrainerAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// Update обновляет окно доступности (полная замена полей)
func (r *Repository) Update(ctx context.Context, id int64, window *domain.TrainerAvailability) (*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainer_availability").
		Set("trainer_id", window.TrainerID).
		Set("day_of_week", int(window.DayOfWeek)).
		Set("start_time", window.StartTime).
		Set("end_time", window.EndTime).
		Set("is_available", window.IsAvailable).
		Set("is_active", window.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	window.ID = id
	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// Deactivate мягко удаляет окно доступности (is_active = false)
// Запись остается в таблице; деактивированное окно не участвует
// в генерации слотов и проверках пересечений
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainer_availability").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanWindow сканирует одно окно доступности
func scanWindow(row rowScanner) (*domain.TrainerAvailability, error) {
	var window domain.TrainerAvailability
	var dayOfWeek int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&window.ID,
		&window.TrainerID,
		&dayOfWeek,
		&window.StartTime,
		&window.EndTime,
		&window.IsAvailable,
		&window.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	window.DayOfWeek = time.Weekday(dayOfWeek)
	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}

// scanWindows сканирует результаты запроса в слайс окон
func scanWindows(rows *sql.Rows) ([]*domain.TrainerAvailability, error) {
	windows := make([]*domain.TrainerAvailability, 0)

	for rows.Next() {
		window, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
