package models

import (
	"time"

	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
)

// DefaultManagerID is the fallback manager assigned to employees created
// without an explicit manager (admin-added employees and employee logins).
const DefaultManagerID = "1"

// User is an account in the directory. Employees always carry a ManagerID;
// admins and managers never do. Users are never deleted or role-changed.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      enums.Role `json:"role"`
	ManagerID *string    `json:"managerId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// IsEmployee reports whether the user holds the employee role.
func (u *User) IsEmployee() bool {
	return u != nil && u.Role == enums.RoleEmployee
}

// Feedback is a manager-authored review of an employee. It is mutated only by
// acknowledgement, which flips Acknowledged from false to true exactly once.
type Feedback struct {
	ID           string          `json:"id"`
	ManagerID    string          `json:"managerId"`
	EmployeeID   string          `json:"employeeId"`
	Strengths    string          `json:"strengths"`
	Improvements string          `json:"improvements"`
	Sentiment    enums.Sentiment `json:"sentiment"`
	CreatedAt    time.Time       `json:"createdAt"`
	Acknowledged bool            `json:"acknowledged"`
}

// FeedbackRequest is an employee-initiated ask for feedback, addressed to the
// employee's manager.
type FeedbackRequest struct {
	ID         string                `json:"id"`
	EmployeeID string                `json:"employeeId"`
	ManagerID  string                `json:"managerId"`
	Subject    string                `json:"subject"`
	Message    string                `json:"message"`
	Priority   enums.RequestPriority `json:"priority"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// SessionState is the per-session slice of application state: who is logged
// in, which screen is active, and which employee is targeted for feedback.
type SessionState struct {
	UserID             string     `json:"userId"`
	View               enums.View `json:"view"`
	SelectedEmployeeID *string    `json:"selectedEmployeeId,omitempty"`
}
