package models

import (
	"math"
	"strings"
	"time"
)

// AllMuscleGroups disables the muscle group filter in FilterExercises.
const AllMuscleGroups = "All"

// FilterExercises keeps exercises of the given muscle group (exact match;
// empty or AllMuscleGroups matches any) whose name contains query, ignoring
// case. The input slice is not modified.
func FilterExercises(list []Exercise, muscleGroup, query string) []Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Exercise, 0, len(list))
	for _, e := range list {
		if muscleGroup != "" && muscleGroup != AllMuscleGroups && e.MuscleGroup != muscleGroup {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.Name), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SearchExercises matches query against name or muscle group, ignoring case.
func SearchExercises(list []Exercise, query string) []Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Exercise(nil), list...)
	}

	var out []Exercise
	for _, e := range list {
		if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.MuscleGroup), q) {
			out = append(out, e)
		}
	}
	return out
}

// FilterStudents matches query against name or email, ignoring case.
func FilterStudents(list []Student, query string) []Student {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Student(nil), list...)
	}

	var out []Student
	for _, s := range list {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Email), q) {
			out = append(out, s)
		}
	}
	return out
}

// DaysUntil returns the number of days from now to expiry, rounded up.
// A past expiry yields zero or a negative count.
func DaysUntil(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// ActivePlans keeps plans flagged active.
func ActivePlans(list []TrainingPlan) []TrainingPlan {
	var out []TrainingPlan
	for _, p := range list {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// PendingWorkouts keeps workouts not yet completed.
func PendingWorkouts(list []Workout) []Workout {
	var out []Workout
	for _, w := range list {
		if !w.Completed() {
			out = append(out, w)
		}
	}
	return out
}
