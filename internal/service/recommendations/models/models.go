package models

import (
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
)

// Request модели

// GetUserRecommendationsRequest запрос на получение истории рекомендаций
type GetUserRecommendationsRequest struct {
	UserID   int64 `json:"userId"`
	TargetID int64 `json:"targetId"` // Чью историю запрашиваем
	IsAdmin  bool  `json:"-"`
}

// Response модели

// RecommendationResponse ответ с данными рекомендации
type RecommendationResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Type   string `json:"type"`

	Age           int     `json:"age"`
	HeightCM      int     `json:"heightCm"`
	WeightKG      float64 `json:"weightKg"`
	BMI           float64 `json:"bmi"`
	Gender        string  `json:"gender"`
	FitnessGoal   string  `json:"fitnessGoal"`
	ActivityLevel string  `json:"activityLevel"`

	ExercisePlan  *string `json:"exercisePlan,omitempty"`
	DietPlan      *string `json:"dietPlan,omitempty"`
	GeneralAdvice *string `json:"generalAdvice,omitempty"`

	// Generated false означает, что провайдер был недоступен
	// и сработал локальный фолбэк
	Generated bool `json:"generated"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecommendationListResponse ответ со списком рекомендаций
type RecommendationListResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// Методы конвертации

// FromDomainRecommendation конвертирует domain модель в DTO
func FromDomainRecommendation(r *domain.Recommendation) *RecommendationResponse {
	if r == nil {
		return nil
	}

	return &RecommendationResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		Type:          string(r.Type),
		Age:           r.Metrics.Age,
		HeightCM:      r.Metrics.HeightCM,
		WeightKG:      r.Metrics.WeightKG,
		BMI:           r.Metrics.BMI(),
		Gender:        r.Metrics.Gender,
		FitnessGoal:   string(r.Metrics.FitnessGoal),
		ActivityLevel: string(r.Metrics.ActivityLevel),
		ExercisePlan:  r.ExercisePlan,
		DietPlan:      r.DietPlan,
		GeneralAdvice: r.GeneralAdvice,
		Generated:     r.Generated,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainRecommendationList конвертирует список domain моделей в DTO
func FromDomainRecommendationList(recommendations []*domain.Recommendation) *RecommendationListResponse {
	resp := &RecommendationListResponse{
		Recommendations: make([]RecommendationResponse, 0, len(recommendations)),
	}

	for _, rec := range recommendations {
		if recResp := FromDomainRecommendation(rec); recResp != nil {
			resp.Recommendations = append(resp.Recommendations, *recResp)
		}
	}

	return resp
}
