package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/trainerhub/internal/common"
)

// Defaults applied to an exercise added to a draft workout.
const (
	DefaultSets        = 3
	DefaultReps        = "12"
	DefaultRestSeconds = 60

	// DefaultPlanLength is the window between start and end of a new plan.
	DefaultPlanLength = 30 * 24 * time.Hour
)

var (
	ErrLastWorkout       = errors.New("a plan must keep at least one workout")
	ErrDuplicateExercise = errors.New("exercise already added to this workout")
	ErrWorkoutIndex      = errors.New("workout index out of range")
	ErrExerciseIndex     = errors.New("exercise index out of range")
)

// DraftExercise is an editable exercise line of a draft workout.
type DraftExercise struct {
	ExerciseID  string
	Name        string
	Sets        int
	Reps        string
	RestSeconds int
	Weight      string
	Notes       string
}

type DraftWorkout struct {
	Name        string
	Description string
	Exercises   []DraftExercise
}

// PlanDraft accumulates a training plan before it is submitted. A new draft
// holds one empty workout named "Workout A"; further workouts are named by
// the next letter.
type PlanDraft struct {
	Name        string
	Description string
	StudentID   string
	StartDate   time.Time
	EndDate     time.Time
	Workouts    []DraftWorkout
}

func NewPlanDraft(studentID string, now time.Time) *PlanDraft {
	return &PlanDraft{
		StudentID: studentID,
		StartDate: now,
		EndDate:   now.Add(DefaultPlanLength),
		Workouts:  []DraftWorkout{{Name: workoutName(0)}},
	}
}

func workoutName(i int) string {
	return fmt.Sprintf("Workout %c", rune('A'+i))
}

// AddWorkout appends an empty workout and returns its index.
func (d *PlanDraft) AddWorkout() int {
	d.Workouts = append(d.Workouts, DraftWorkout{Name: workoutName(len(d.Workouts))})
	return len(d.Workouts) - 1
}

func (d *PlanDraft) RemoveWorkout(i int) error {
	if i < 0 || i >= len(d.Workouts) {
		return ErrWorkoutIndex
	}
	if len(d.Workouts) == 1 {
		return ErrLastWorkout
	}
	d.Workouts = append(d.Workouts[:i], d.Workouts[i+1:]...)
	return nil
}

// AddExercise appends ex to workout w with the default prescription.
func (d *PlanDraft) AddExercise(w int, ex Exercise) error {
	if w < 0 || w >= len(d.Workouts) {
		return ErrWorkoutIndex
	}
	return d.Workouts[w].add(ex)
}

func (w *DraftWorkout) add(ex Exercise) error {
	for _, e := range w.Exercises {
		if e.ExerciseID == ex.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateExercise, ex.Name)
		}
	}

	w.Exercises = append(w.Exercises, DraftExercise{
		ExerciseID:  ex.ID,
		Name:        ex.Name,
		Sets:        DefaultSets,
		Reps:        DefaultReps,
		RestSeconds: DefaultRestSeconds,
	})
	return nil
}

// exerciseData numbers the exercises from 1 in order.
func (w *DraftWorkout) exerciseData() []WorkoutExerciseData {
	out := make([]WorkoutExerciseData, len(w.Exercises))
	for i, e := range w.Exercises {
		out[i] = WorkoutExerciseData{
			ExerciseID:  e.ExerciseID,
			Order:       i + 1,
			Sets:        e.Sets,
			Reps:        e.Reps,
			RestSeconds: e.RestSeconds,
			Weight:      strings.TrimSpace(e.Weight),
			Notes:       strings.TrimSpace(e.Notes),
		}
	}
	return out
}

func (d *PlanDraft) RemoveExercise(w, e int) error {
	if w < 0 || w >= len(d.Workouts) {
		return ErrWorkoutIndex
	}
	ex := d.Workouts[w].Exercises
	if e < 0 || e >= len(ex) {
		return ErrExerciseIndex
	}
	d.Workouts[w].Exercises = append(ex[:e], ex[e+1:]...)
	return nil
}

// Build validates the draft and produces the create payload. Text fields
// are trimmed, empty optional fields are omitted and exercises are numbered
// from 1 in workout order.
func (d *PlanDraft) Build() (CreateTrainingPlanData, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return CreateTrainingPlanData{}, fmt.Errorf("%w: plan name is required", common.ErrorValidation)
	}
	if d.StudentID == "" {
		return CreateTrainingPlanData{}, fmt.Errorf("%w: student is required", common.ErrorValidation)
	}
	if !d.EndDate.After(d.StartDate) {
		return CreateTrainingPlanData{}, fmt.Errorf("%w: end date must be after start date", common.ErrorValidation)
	}

	workouts := make([]WorkoutData, 0, len(d.Workouts))
	for i := range d.Workouts {
		w := &d.Workouts[i]
		if len(w.Exercises) == 0 {
			return CreateTrainingPlanData{}, fmt.Errorf("%w: every workout needs at least one exercise", common.ErrorValidation)
		}

		workouts = append(workouts, WorkoutData{
			Name:        strings.TrimSpace(w.Name),
			Description: strings.TrimSpace(w.Description),
			Exercises:   w.exerciseData(),
		})
	}

	return CreateTrainingPlanData{
		Name:        name,
		Description: strings.TrimSpace(d.Description),
		StudentID:   d.StudentID,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Workouts:    workouts,
	}, nil
}
