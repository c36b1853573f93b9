package services

import (
	"context"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

const workoutsPath = "/workouts"

// WorkoutService manages individual workouts. For students the server
// scopes List to their own workouts.
type WorkoutService interface {
	List(ctx context.Context, studentID string) ([]models.Workout, error)
	// Expiring lists workouts expiring within days (DefaultExpiringDays when <= 0).
	Expiring(ctx context.Context, days int) ([]models.Workout, error)
	Get(ctx context.Context, id string) (*models.Workout, error)
	Create(ctx context.Context, data models.CreateWorkoutData) (*models.Workout, error)
	Update(ctx context.Context, id string, data models.UpdateWorkoutData) (*models.Workout, error)
	Complete(ctx context.Context, id string) (*models.Workout, error)
	Delete(ctx context.Context, id string) error
}

type workoutService struct {
	api API
}

func NewWorkoutService(api API) WorkoutService {
	return &workoutService{api: api}
}

func (s *workoutService) List(ctx context.Context, studentID string) ([]models.Workout, error) {
	var out []models.Workout
	if err := s.api.Get(ctx, workoutsPath, optionalQuery("studentId", studentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *workoutService) Expiring(ctx context.Context, days int) ([]models.Workout, error) {
	var out []models.Workout
	if err := s.api.Get(ctx, workoutsPath+"/expiring", daysQuery(days), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *workoutService) Get(ctx context.Context, id string) (*models.Workout, error) {
	var out models.Workout
	if err := s.api.Get(ctx, resourcePath(workoutsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *workoutService) Create(ctx context.Context, data models.CreateWorkoutData) (*models.Workout, error) {
	var out models.Workout
	if err := s.api.Post(ctx, workoutsPath, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *workoutService) Update(ctx context.Context, id string, data models.UpdateWorkoutData) (*models.Workout, error) {
	var out models.Workout
	if err := s.api.Patch(ctx, resourcePath(workoutsPath, id), data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *workoutService) Complete(ctx context.Context, id string) (*models.Workout, error) {
	var out models.Workout
	if err := s.api.Patch(ctx, resourcePath(workoutsPath, id, "complete"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *workoutService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, resourcePath(workoutsPath, id))
}
