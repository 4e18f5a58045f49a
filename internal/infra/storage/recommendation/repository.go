package recommendation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/GMS-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с сохранёнными рекомендациями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория рекомендаций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сгенерированную рекомендацию
func (r *Repository) Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("ai_recommendations").
		Columns(
			"user_id",
			"type",
			"age",
			"height_cm",
			"weight_kg",
			"gender",
			"fitness_goal",
			"activity_level",
			"exercise_plan",
			"diet_plan",
			"general_advice",
			"generated",
		).
		Values(
			rec.UserID,
			rec.Type,
			rec.Metrics.Age,
			rec.Metrics.HeightCM,
			rec.Metrics.WeightKG,
			rec.Metrics.Gender,
			rec.Metrics.FitnessGoal,
			rec.Metrics.ActivityLevel,
			rec.ExercisePlan,
			rec.DietPlan,
			rec.GeneralAdvice,
			rec.Generated,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rec.CreatedAt = createdAt.Time
	rec.UpdatedAt = updatedAt.Time

	return rec, nil
}

// GetByUserID получает рекомендации пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Recommendation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"type",
		"age",
		"height_cm",
		"weight_kg",
		"gender",
		"fitness_goal",
		"activity_level",
		"exercise_plan",
		"diet_plan",
		"general_advice",
		"generated",
		"created_at",
		"updated_at",
	).
		From("ai_recommendations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	recommendations := make([]*domain.Recommendation, 0)

	for rows.Next() {
		var rec domain.Recommendation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Type,
			&rec.Metrics.Age,
			&rec.Metrics.HeightCM,
			&rec.Metrics.WeightKG,
			&rec.Metrics.Gender,
			&rec.Metrics.FitnessGoal,
			&rec.Metrics.ActivityLevel,
			&rec.ExercisePlan,
			&rec.DietPlan,
			&rec.GeneralAdvice,
			&rec.Generated,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		rec.CreatedAt = createdAt.Time
		rec.UpdatedAt = updatedAt.Time

		recommendations = append(recommendations, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return recommendations, nil
}
