package generate_recommendation

import (
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	generateRecommendation "github.com/m04kA/GMS-SchedulingService/internal/usecase/generate_recommendation"
)

// GenerateRecommendationRequest HTTP request model
type GenerateRecommendationRequest struct {
	Type          string  `json:"type"` // exercise | diet | combined
	Age           int     `json:"age"`
	HeightCM      int     `json:"heightCm"`
	WeightKG      float64 `json:"weightKg"`
	Gender        string  `json:"gender"`
	FitnessGoal   string  `json:"fitnessGoal"`
	ActivityLevel string  `json:"activityLevel"`
}

// RecommendationResponse HTTP response model
type RecommendationResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	Type          string  `json:"type"`
	BMI           float64 `json:"bmi"`
	ExercisePlan  *string `json:"exercisePlan,omitempty"`
	DietPlan      *string `json:"dietPlan,omitempty"`
	GeneralAdvice *string `json:"generalAdvice,omitempty"`
	Generated     bool    `json:"generated"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateRecommendationRequest) ToUseCaseRequest(userID int64) *generateRecommendation.Request {
	return &generateRecommendation.Request{
		UserID: userID,
		Type:   domain.RecommendationType(r.Type),
		Metrics: domain.UserMetrics{
			Age:           r.Age,
			HeightCM:      r.HeightCM,
			WeightKG:      r.WeightKG,
			Gender:        r.Gender,
			FitnessGoal:   domain.FitnessGoal(r.FitnessGoal),
			ActivityLevel: domain.ActivityLevel(r.ActivityLevel),
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateRecommendation.Response) *RecommendationResponse {
	rec := resp.Recommendation

	return &RecommendationResponse{
		ID:            rec.ID,
		UserID:        rec.UserID,
		Type:          string(rec.Type),
		BMI:           rec.Metrics.BMI(),
		ExercisePlan:  rec.ExercisePlan,
		DietPlan:      rec.DietPlan,
		GeneralAdvice: rec.GeneralAdvice,
		Generated:     rec.Generated,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
	}
}
