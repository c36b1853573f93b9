package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []Exercise{
	{ID: "1", Name: "Bench Press", MuscleGroup: "Chest"},
	{ID: "2", Name: "Incline Dumbbell Press", MuscleGroup: "Chest"},
	{ID: "3", Name: "Squat", MuscleGroup: "Legs"},
	{ID: "4", Name: "Leg Press", MuscleGroup: "Legs"},
	{ID: "5", Name: "Plank", MuscleGroup: ""},
}

func ids(list []Exercise) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterExercises(t *testing.T) {
	tests := []struct {
		name   string
		muscle string
		query  string
		want   []string
	}{
		{name: "no filters", want: []string{"1", "2", "3", "4", "5"}},
		{name: "all sentinel", muscle: AllMuscleGroups, want: []string{"1", "2", "3", "4", "5"}},
		{name: "muscle only", muscle: "Legs", want: []string{"3", "4"}},
		{name: "query only case insensitive", query: "PRESS", want: []string{"1", "2", "4"}},
		{name: "muscle and query", muscle: "Chest", query: "incline", want: []string{"2"}},
		{name: "muscle is exact", muscle: "legs", want: []string{}},
		{name: "query does not match muscle", query: "chest", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterExercises(catalog, tt.muscle, tt.query)))
		})
	}
}

func TestSearchExercises_NameOrMuscleGroup(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, ids(SearchExercises(catalog, "chest")))
	assert.Equal(t, []string{"3"}, ids(SearchExercises(catalog, "squ")))
	assert.Len(t, SearchExercises(catalog, "  "), len(catalog))
	assert.Empty(t, SearchExercises(catalog, "deadlift"))
}

func TestFilterStudents_NameOrEmail(t *testing.T) {
	students := []Student{
		{User: User{ID: "s1", Name: "Ana Souza", Email: "ana@gym.com"}},
		{User: User{ID: "s2", Name: "Bruno", Email: "bruno@mail.com"}},
	}

	got := FilterStudents(students, "GYM")
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)

	got = FilterStudents(students, "bru")
	require.Len(t, got, 1)
	assert.Equal(t, "s2", got[0].ID)

	assert.Len(t, FilterStudents(students, ""), 2)
}

func TestDaysUntil_RoundsUp(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntil(now.Add(time.Hour), now))
	assert.Equal(t, 1, DaysUntil(now.Add(24*time.Hour), now))
	assert.Equal(t, 2, DaysUntil(now.Add(25*time.Hour), now))
	assert.Equal(t, 7, DaysUntil(now.Add(7*24*time.Hour), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, -1, DaysUntil(now.Add(-25*time.Hour), now))
}

func TestActivePlansAndPendingWorkouts(t *testing.T) {
	plans := []TrainingPlan{{ID: "p1", IsActive: true}, {ID: "p2"}, {ID: "p3", IsActive: true}}
	got := ActivePlans(plans)
	require.Len(t, got, 2)
	assert.Equal(t, "p3", got[1].ID)

	done := time.Now()
	workouts := []Workout{{ID: "w1"}, {ID: "w2", CompletedAt: &done}}
	pending := PendingWorkouts(workouts)
	require.Len(t, pending, 1)
	assert.Equal(t, "w1", pending[0].ID)
}
