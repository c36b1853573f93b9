package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/common"
)

// WorkoutDraft accumulates a standalone workout for one student. A nil
// ExpiresAt leaves the expiry to the server.
type WorkoutDraft struct {
	DraftWorkout
	StudentID string
	ExpiresAt *time.Time
}

func NewWorkoutDraft(studentID string) *WorkoutDraft {
	return &WorkoutDraft{StudentID: studentID}
}

// AddExercise appends ex with the default prescription.
func (d *WorkoutDraft) AddExercise(ex Exercise) error {
	return d.DraftWorkout.add(ex)
}

// Build validates the draft and produces the create payload.
func (d *WorkoutDraft) Build() (CreateWorkoutData, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return CreateWorkoutData{}, fmt.Errorf("%w: workout name is required", common.ErrorValidation)
	}
	if d.StudentID == "" {
		return CreateWorkoutData{}, fmt.Errorf("%w: student is required", common.ErrorValidation)
	}
	if len(d.Exercises) == 0 {
		return CreateWorkoutData{}, fmt.Errorf("%w: add at least one exercise", common.ErrorValidation)
	}

	return CreateWorkoutData{
		Name:        name,
		Description: strings.TrimSpace(d.Description),
		StudentID:   d.StudentID,
		ExpiresAt:   d.ExpiresAt,
		Exercises:   d.DraftWorkout.exerciseData(),
	}, nil
}
