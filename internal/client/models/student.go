package models

// StudentCount is the relation counter block the API attaches to students.
type StudentCount struct {
	StudentWorkouts int `json:"studentWorkouts"`
	Evaluations     int `json:"evaluations"`
}

type Student struct {
	User
	Count *StudentCount `json:"_count,omitempty"`
}

type CreateStudentData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

type UpdateStudentData struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// Ref is the abbreviated form of a related entity embedded in responses.
type Ref struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}
