package services

import (
	"context"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

const exercisesPath = "/exercises"

// ExerciseService manages the exercise catalog.
type ExerciseService interface {
	// List returns the catalog, narrowed server-side to muscleGroup when set.
	List(ctx context.Context, muscleGroup string) ([]models.Exercise, error)
	Get(ctx context.Context, id string) (*models.Exercise, error)
	Create(ctx context.Context, data models.CreateExerciseData) (*models.Exercise, error)
	Update(ctx context.Context, id string, data models.UpdateExerciseData) (*models.Exercise, error)
	Delete(ctx context.Context, id string) error
}

type exerciseService struct {
	api API
}

func NewExerciseService(api API) ExerciseService {
	return &exerciseService{api: api}
}

func (s *exerciseService) List(ctx context.Context, muscleGroup string) ([]models.Exercise, error) {
	var out []models.Exercise
	if err := s.api.Get(ctx, exercisesPath, optionalQuery("muscleGroup", muscleGroup), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *exerciseService) Get(ctx context.Context, id string) (*models.Exercise, error) {
	var out models.Exercise
	if err := s.api.Get(ctx, resourcePath(exercisesPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *exerciseService) Create(ctx context.Context, data models.CreateExerciseData) (*models.Exercise, error) {
	var out models.Exercise
	if err := s.api.Post(ctx, exercisesPath, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *exerciseService) Update(ctx context.Context, id string, data models.UpdateExerciseData) (*models.Exercise, error) {
	var out models.Exercise
	if err := s.api.Patch(ctx, resourcePath(exercisesPath, id), data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *exerciseService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, resourcePath(exercisesPath, id))
}
