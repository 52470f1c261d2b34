package auth

import (
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/models"
)

// LoginRequest carries the mock-auth credentials: the email resolves the
// identity, the name and role only matter for first-time logins.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Role  string `json:"role" validate:"required,oneof=admin manager employee"`
}

// LoginResponse returns the resolved user and the bearer token for the new
// session.
type LoginResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
	View        enums.View  `json:"view"`
}

// SetViewRequest names the screen the client wants active.
type SetViewRequest struct {
	View string `json:"view" validate:"required,oneof=auth dashboard feedback addEmployee viewAllFeedback teamOverview requestFeedback"`
}

// SetSelectionRequest targets an employee for the feedback screen; a null id
// clears the selection.
type SetSelectionRequest struct {
	EmployeeID *string `json:"employeeId" validate:"omitempty,min=1"`
}

// SessionResponse is the state the client's layout switches on.
type SessionResponse struct {
	User             models.User  `json:"user"`
	View             enums.View   `json:"view"`
	SelectedEmployee *models.User `json:"selectedEmployee,omitempty"`
	AllowedViews     []enums.View `json:"allowedViews"`
}
