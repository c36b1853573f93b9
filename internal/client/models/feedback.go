package models

import "time"

type FeedbackStatus string

const (
	FeedbackOpen     FeedbackStatus = "OPEN"
	FeedbackResolved FeedbackStatus = "RESOLVED"
)

type FeedbackResponse struct {
	ID         string    `json:"id"`
	FeedbackID string    `json:"feedbackId"`
	PersonalID string    `json:"personalId"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
	Personal   *Ref      `json:"personal,omitempty"`
}

// Feedback is a student's message about a workout and the trainer's replies.
type Feedback struct {
	ID         string             `json:"id"`
	WorkoutID  string             `json:"workoutId"`
	StudentID  string             `json:"studentId"`
	Message    string             `json:"message"`
	Status     FeedbackStatus     `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	ResolvedAt *time.Time         `json:"resolvedAt,omitempty"`
	Workout    *Ref               `json:"workout,omitempty"`
	Student    *Ref               `json:"student,omitempty"`
	Responses  []FeedbackResponse `json:"responses"`
}

type CreateFeedbackData struct {
	WorkoutID string `json:"workoutId"`
	Message   string `json:"message"`
}

type CreateResponseData struct {
	Message string `json:"message"`
}
