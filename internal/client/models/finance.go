package models

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentOverdue PaymentStatus = "OVERDUE"
)

type Payment struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"studentId"`
	PersonalID  string        `json:"personalId"`
	Amount      float64       `json:"amount"`
	Status      PaymentStatus `json:"status"`
	DueDate     time.Time     `json:"dueDate"`
	PaidDate    *time.Time    `json:"paidDate,omitempty"`
	Description string        `json:"description,omitempty"`
	Student     *Ref          `json:"student,omitempty"`
	Personal    *Ref          `json:"personal,omitempty"`
}

type FinancialSummary struct {
	PendingAmount                    float64 `json:"pendingAmount"`
	OverdueAmount                    float64 `json:"overdueAmount"`
	TotalReceived                    float64 `json:"totalReceived"`
	MonthlyRevenue                   float64 `json:"monthlyRevenue"`
	TotalStudentsWithPendingPayments int     `json:"totalStudentsWithPendingPayments"`
	// TotalDue is only sent in the student-scoped payments summary.
	TotalDue float64 `json:"totalDue,omitempty"`
}

type PaymentsResponse struct {
	Payments []Payment        `json:"payments"`
	Summary  FinancialSummary `json:"summary"`
}

type CreatePaymentData struct {
	StudentID   string    `json:"studentId"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"dueDate"`
	Description string    `json:"description,omitempty"`
}

type UpdatePaymentData struct {
	Amount      *float64       `json:"amount,omitempty"`
	DueDate     *time.Time     `json:"dueDate,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *PaymentStatus `json:"status,omitempty"`
}
