package domain

import "time"

// RecommendationType тип генерируемой рекомендации
type RecommendationType string

const (
	RecommendationExercise RecommendationType = "exercise"
	RecommendationDiet     RecommendationType = "diet"
	RecommendationCombined RecommendationType = "combined"
)

// FitnessGoal цель тренировок пользователя
type FitnessGoal string

const (
	GoalWeightLoss     FitnessGoal = "weight_loss"
	GoalMuscleGain     FitnessGoal = "muscle_gain"
	GoalEndurance      FitnessGoal = "endurance"
	GoalStrength       FitnessGoal = "strength"
	GoalGeneralFitness FitnessGoal = "general_fitness"
	GoalFlexibility    FitnessGoal = "flexibility"
)

// ActivityLevel текущий уровень активности пользователя
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// UserMetrics структурированные метрики пользователя для генерации рекомендаций
type UserMetrics struct {
	Age           int
	HeightCM      int
	WeightKG      float64
	Gender        string
	FitnessGoal   FitnessGoal
	ActivityLevel ActivityLevel
}

// BMI возвращает индекс массы тела
func (m UserMetrics) BMI() float64 {
	if m.HeightCM <= 0 {
		return 0
	}
	heightM := float64(m.HeightCM) / 100
	return m.WeightKG / (heightM * heightM)
}

// Recommendation сохранённая рекомендация (сгенерированная провайдером или фолбэком)
type Recommendation struct {
	ID     int64
	UserID int64
	Type   RecommendationType

	Metrics UserMetrics

	ExercisePlan  *string
	DietPlan      *string
	GeneralAdvice *string

	// Generated false, если провайдер был недоступен и сработал
	// детерминированный локальный фолбэк
	Generated bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRecommendationTypes список допустимых типов рекомендаций
var ValidRecommendationTypes = []RecommendationType{
	RecommendationExercise,
	RecommendationDiet,
	RecommendationCombined,
}

// ValidFitnessGoals список допустимых целей
var ValidFitnessGoals = []FitnessGoal{
	GoalWeightLoss,
	GoalMuscleGain,
	GoalEndurance,
	GoalStrength,
	GoalGeneralFitness,
	GoalFlexibility,
}

// ValidActivityLevels список допустимых уровней активности
var ValidActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLightlyActive,
	ActivityModeratelyActive,
	ActivityVeryActive,
	ActivityExtremelyActive,
}
