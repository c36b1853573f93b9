package models

type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	MuscleGroup string `json:"muscleGroup,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
}

type CreateExerciseData struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	MuscleGroup string `json:"muscleGroup,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
}

type UpdateExerciseData struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	VideoURL    *string `json:"videoUrl,omitempty"`
	MuscleGroup *string `json:"muscleGroup,omitempty"`
	Equipment   *string `json:"equipment,omitempty"`
}

// MuscleGroups is the catalog offered by the exercise forms.
var MuscleGroups = []string{
	"Chest", "Back", "Shoulders", "Biceps", "Triceps",
	"Legs", "Glutes", "Abs", "Calves", "Forearms", "Full Body", "Cardio",
}
