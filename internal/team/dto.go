package team

import "github.com/feedbacklink-io/feedbacklink-backend/pkg/models"

// AddEmployeeRequest carries the new team member's details. Email uniqueness
// is not checked; a re-invite of an existing address creates a second entry.
type AddEmployeeRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Email string `json:"email" validate:"required,email"`
}

// TeamResponse wraps the role-scoped member list.
type TeamResponse struct {
	Members []models.User `json:"members"`
}

// DirectoryResponse wraps the full user list, admin-only.
type DirectoryResponse struct {
	Users []models.User `json:"users"`
}
