package generate_recommendation

import (
	"fmt"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !containsType(domain.ValidRecommendationTypes, req.Type) {
		return fmt.Errorf("%w: unknown recommendation type %q", ErrInvalidInput, req.Type)
	}

	m := req.Metrics
	if m.Age <= 0 || m.Age > 120 {
		return fmt.Errorf("%w: age must be in range 1-120", ErrInvalidInput)
	}
	if m.HeightCM <= 0 {
		return fmt.Errorf("%w: heightCM must be positive", ErrInvalidInput)
	}
	if m.WeightKG <= 0 {
		return fmt.Errorf("%w: weightKG must be positive", ErrInvalidInput)
	}

	if !containsGoal(domain.ValidFitnessGoals, m.FitnessGoal) {
		return fmt.Errorf("%w: unknown fitness goal %q", ErrInvalidInput, m.FitnessGoal)
	}
	if !containsLevel(domain.ValidActivityLevels, m.ActivityLevel) {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, m.ActivityLevel)
	}

	return nil
}

func containsType(list []domain.RecommendationType, v domain.RecommendationType) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsGoal(list []domain.FitnessGoal, v domain.FitnessGoal) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsLevel(list []domain.ActivityLevel, v domain.ActivityLevel) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
