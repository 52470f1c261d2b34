package feedback

import "github.com/feedbacklink-io/feedbacklink-backend/pkg/models"

// SubmitRequest is the feedback-entry form payload. Strengths and
// improvements must be present; validation happens here at the boundary so
// the store never sees empty text.
type SubmitRequest struct {
	EmployeeID   string `json:"employeeId" validate:"required,min=1"`
	Strengths    string `json:"strengths" validate:"required,min=1"`
	Improvements string `json:"improvements" validate:"required,min=1"`
	Sentiment    string `json:"sentiment" validate:"required,oneof=positive neutral negative"`
}

// AcknowledgeResponse reports whether the feedback id resolved; an unknown id
// is not an error.
type AcknowledgeResponse struct {
	Acknowledged bool `json:"acknowledged"`
}

// ListResponse wraps the role-scoped feedback history.
type ListResponse struct {
	Items []models.Feedback `json:"items"`
}

// RequestFeedbackRequest is the employee's ask-for-feedback form payload.
type RequestFeedbackRequest struct {
	Subject  string `json:"subject" validate:"required,min=1,max=200"`
	Message  string `json:"message" validate:"required,min=1"`
	Priority string `json:"priority" validate:"required,oneof=low normal high"`
}

// RequestListResponse wraps the visible feedback requests.
type RequestListResponse struct {
	Items []models.FeedbackRequest `json:"items"`
}
