package models

import "time"

type WorkoutExercise struct {
	ID          string   `json:"id"`
	ExerciseID  string   `json:"exerciseId"`
	Exercise    Exercise `json:"exercise"`
	Order       int      `json:"order"`
	Sets        int      `json:"sets"`
	Reps        string   `json:"reps"`
	RestSeconds int      `json:"restSeconds,omitempty"`
	Weight      string   `json:"weight,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// PlanRef is the abbreviated training plan embedded in workouts.
type PlanRef struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type Workout struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	TrainingPlanID string            `json:"trainingPlanId,omitempty"`
	StudentID      string            `json:"studentId"`
	PersonalID     string            `json:"personalId"`
	ScheduledDate  *time.Time        `json:"scheduledDate,omitempty"`
	ExpiresAt      *time.Time        `json:"expiresAt,omitempty"`
	CompletedAt    *time.Time        `json:"completedAt,omitempty"`
	Exercises      []WorkoutExercise `json:"exercises"`
	Student        *Ref              `json:"student,omitempty"`
	Personal       *Ref              `json:"personal,omitempty"`
	TrainingPlan   *PlanRef          `json:"trainingPlan,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

func (w *Workout) Completed() bool {
	return w.CompletedAt != nil
}

// WorkoutExerciseData is one exercise line of a create payload.
type WorkoutExerciseData struct {
	ExerciseID  string `json:"exerciseId"`
	Order       int    `json:"order"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"restSeconds,omitempty"`
	Weight      string `json:"weight,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type CreateWorkoutData struct {
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	StudentID     string                `json:"studentId"`
	ScheduledDate *time.Time            `json:"scheduledDate,omitempty"`
	ExpiresAt     *time.Time            `json:"expiresAt,omitempty"`
	Exercises     []WorkoutExerciseData `json:"exercises"`
}

type UpdateWorkoutData struct {
	Name          *string               `json:"name,omitempty"`
	Description   *string               `json:"description,omitempty"`
	ScheduledDate *time.Time            `json:"scheduledDate,omitempty"`
	ExpiresAt     *time.Time            `json:"expiresAt,omitempty"`
	Exercises     []WorkoutExerciseData `json:"exercises,omitempty"`
}
