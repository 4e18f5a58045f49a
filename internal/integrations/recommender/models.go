package recommender

// GenerateRequest запрос к провайдеру рекомендаций
// Структурированные метрики пользователя, провайдер возвращает свободный текст
type GenerateRequest struct {
	Type          string  `json:"type"` // exercise | diet | combined
	Age           int     `json:"age"`
	HeightCM      int     `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	BMI           float64 `json:"bmi"`
	Gender        string  `json:"gender"`
	FitnessGoal   string  `json:"fitness_goal"`
	ActivityLevel string  `json:"activity_level"`
}

// GenerateResponse ответ провайдера рекомендаций
type GenerateResponse struct {
	ExercisePlan  *string `json:"exercise_plan,omitempty"`
	DietPlan      *string `json:"diet_plan,omitempty"`
	GeneralAdvice *string `json:"general_advice,omitempty"`
}
