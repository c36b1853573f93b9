package models

import "time"

// Measurements shared by evaluations and their create payloads. All values
// are optional.
type Measurements struct {
	BodyFat          *float64 `json:"bodyFat,omitempty"`
	Chest            *float64 `json:"chest,omitempty"`
	Waist            *float64 `json:"waist,omitempty"`
	Hip              *float64 `json:"hip,omitempty"`
	LeftArm          *float64 `json:"leftArm,omitempty"`
	RightArm         *float64 `json:"rightArm,omitempty"`
	LeftThigh        *float64 `json:"leftThigh,omitempty"`
	RightThigh       *float64 `json:"rightThigh,omitempty"`
	LeftCalf         *float64 `json:"leftCalf,omitempty"`
	RightCalf        *float64 `json:"rightCalf,omitempty"`
	RestingHeartRate *int     `json:"restingHeartRate,omitempty"`
	BloodPressure    string   `json:"bloodPressure,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

type Evaluation struct {
	ID        string   `json:"id"`
	StudentID string   `json:"studentId"`
	Weight    float64  `json:"weight"`
	Height    float64  `json:"height"`
	BMI       *float64 `json:"bmi,omitempty"`
	Measurements
	EvaluationDate time.Time `json:"evaluationDate"`
}

type CreateEvaluationData struct {
	StudentID string  `json:"studentId"`
	Weight    float64 `json:"weight"`
	Height    float64 `json:"height"`
	Measurements
	EvaluationDate *time.Time `json:"evaluationDate,omitempty"`
}

type UpdateEvaluationData struct {
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Measurements
	EvaluationDate *time.Time `json:"evaluationDate,omitempty"`
}

// Progress compares a student's first and latest evaluation.
type Progress struct {
	WeightChange  float64  `json:"weightChange"`
	BodyFatChange *float64 `json:"bodyFatChange"`
	BMIChange     *float64 `json:"bmiChange"`
	PeriodDays    int      `json:"periodDays"`
}

type ProgressData struct {
	Evaluations []Evaluation `json:"evaluations"`
	Progress    *Progress    `json:"progress"`
}
