package generate_recommendation

import (
	"fmt"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/pkg/ptr"
)

// buildFallback строит детерминированную рекомендацию по метрикам,
// когда внешний провайдер недоступен. Планы составляются локально
// из цели и уровня активности, результат помечается Generated=false
func buildFallback(recType domain.RecommendationType, m domain.UserMetrics) (exercise, diet, advice *string) {
	if recType == domain.RecommendationExercise || recType == domain.RecommendationCombined {
		exercise = ptr.Ptr(fallbackExercisePlan(m))
	}
	if recType == domain.RecommendationDiet || recType == domain.RecommendationCombined {
		diet = ptr.Ptr(fallbackDietPlan(m))
	}
	advice = ptr.Ptr(fallbackAdvice(m))
	return exercise, diet, advice
}

func fallbackExercisePlan(m domain.UserMetrics) string {
	sessions := sessionsPerWeek(m.ActivityLevel)

	var focus string
	switch m.FitnessGoal {
	case domain.GoalWeightLoss:
		focus = "cardio sessions of 30-45 minutes combined with full-body circuit training"
	case domain.GoalMuscleGain:
		focus = "progressive resistance training split across major muscle groups"
	case domain.GoalEndurance:
		focus = "steady-state cardio with one interval session per week"
	case domain.GoalStrength:
		focus = "compound lifts (squat, deadlift, press) with 3-5 rep ranges"
	case domain.GoalFlexibility:
		focus = "mobility and stretching routines of 20-30 minutes"
	default:
		focus = "a mix of moderate cardio and full-body strength work"
	}

	return fmt.Sprintf("Train %d times per week, focusing on %s. Start each session with a 10-minute warm-up and finish with light stretching.", sessions, focus)
}

func fallbackDietPlan(m domain.UserMetrics) string {
	bmi := m.BMI()

	var calories string
	switch {
	case m.FitnessGoal == domain.GoalWeightLoss || bmi >= 30:
		calories = "a moderate caloric deficit of 300-500 kcal per day"
	case m.FitnessGoal == domain.GoalMuscleGain && bmi < 25:
		calories = "a caloric surplus of 200-300 kcal per day with 1.6-2.0 g of protein per kg of body weight"
	default:
		calories = "maintenance calories with balanced macronutrients"
	}

	return fmt.Sprintf("Aim for %s. Prioritize whole foods, vegetables, and lean protein sources; keep hydration at 30-35 ml of water per kg of body weight daily.", calories)
}

func fallbackAdvice(m domain.UserMetrics) string {
	bmi := m.BMI()

	switch {
	case bmi >= 30:
		return fmt.Sprintf("Your BMI is %.1f, which is in the obese range. Progress gradually, favor low-impact activities at first, and consider consulting a physician before intense training.", bmi)
	case bmi >= 25:
		return fmt.Sprintf("Your BMI is %.1f, slightly above the normal range. Consistency matters more than intensity - build a sustainable weekly routine.", bmi)
	case bmi < 18.5:
		return fmt.Sprintf("Your BMI is %.1f, below the normal range. Focus on adequate nutrition alongside training and avoid large caloric deficits.", bmi)
	default:
		return fmt.Sprintf("Your BMI is %.1f, within the normal range. Maintain your current habits and increase training load progressively.", bmi)
	}
}

// sessionsPerWeek подбирает частоту тренировок по текущему уровню активности
func sessionsPerWeek(level domain.ActivityLevel) int {
	switch level {
	case domain.ActivitySedentary:
		return 2
	case domain.ActivityLightlyActive:
		return 3
	case domain.ActivityModeratelyActive:
		return 4
	case domain.ActivityVeryActive, domain.ActivityExtremelyActive:
		return 5
	default:
		return 3
	}
}
