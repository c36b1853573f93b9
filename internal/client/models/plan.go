package models

import "time"

type TrainingPlan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StudentID   string    `json:"studentId"`
	PersonalID  string    `json:"personalId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsActive    bool      `json:"isActive"`
	Workouts    []Workout `json:"workouts"`
	Student     *Ref      `json:"student,omitempty"`
	Personal    *Ref      `json:"personal,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WorkoutData is one workout of a training plan create payload.
type WorkoutData struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Exercises   []WorkoutExerciseData `json:"exercises"`
}

type CreateTrainingPlanData struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	StudentID   string        `json:"studentId"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	Workouts    []WorkoutData `json:"workouts"`
}

// ToggleActiveResult is returned by the toggle-active endpoint.
type ToggleActiveResult struct {
	Message  string `json:"message"`
	IsActive bool   `json:"isActive"`
}
