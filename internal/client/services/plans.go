package services

import (
	"context"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

const plansPath = "/training-plans"

// TrainingPlanService manages training plans and their nested workouts.
type TrainingPlanService interface {
	List(ctx context.Context, studentID string) ([]models.TrainingPlan, error)
	Expiring(ctx context.Context, days int) ([]models.TrainingPlan, error)
	Get(ctx context.Context, id string) (*models.TrainingPlan, error)
	Create(ctx context.Context, data models.CreateTrainingPlanData) (*models.TrainingPlan, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*models.ToggleActiveResult, error)
}

type trainingPlanService struct {
	api API
}

func NewTrainingPlanService(api API) TrainingPlanService {
	return &trainingPlanService{api: api}
}

func (s *trainingPlanService) List(ctx context.Context, studentID string) ([]models.TrainingPlan, error) {
	var out []models.TrainingPlan
	if err := s.api.Get(ctx, plansPath, optionalQuery("studentId", studentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *trainingPlanService) Expiring(ctx context.Context, days int) ([]models.TrainingPlan, error) {
	var out []models.TrainingPlan
	if err := s.api.Get(ctx, plansPath+"/expiring", daysQuery(days), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *trainingPlanService) Get(ctx context.Context, id string) (*models.TrainingPlan, error) {
	var out models.TrainingPlan
	if err := s.api.Get(ctx, resourcePath(plansPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *trainingPlanService) Create(ctx context.Context, data models.CreateTrainingPlanData) (*models.TrainingPlan, error) {
	var out models.TrainingPlan
	if err := s.api.Post(ctx, plansPath, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *trainingPlanService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, resourcePath(plansPath, id))
}

func (s *trainingPlanService) ToggleActive(ctx context.Context, id string) (*models.ToggleActiveResult, error) {
	var out models.ToggleActiveResult
	if err := s.api.Patch(ctx, resourcePath(plansPath, id, "toggle-active"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
