package feedback

import (
	"context"
	"fmt"

	"github.com/feedbacklink-io/feedbacklink-backend/internal/state"
	"github.com/feedbacklink-io/feedbacklink-backend/internal/views"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	pkgerrors "github.com/feedbacklink-io/feedbacklink-backend/pkg/errors"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/models"
)

// Service exposes the feedback surface: submission, acknowledgement, the
// role-scoped history, and employee feedback requests.
type Service interface {
	Submit(ctx context.Context, accessID string, req SubmitRequest) (*models.Feedback, error)
	Acknowledge(ctx context.Context, accessID, feedbackID string) (*AcknowledgeResponse, error)
	Visible(ctx context.Context, accessID string) (*ListResponse, error)
	Request(ctx context.Context, accessID string, req RequestFeedbackRequest) (*models.FeedbackRequest, error)
	Requests(ctx context.Context, accessID string) (*RequestListResponse, error)
}

type stateStore interface {
	SubmitFeedback(sessionID, employeeID string, input state.FeedbackInput) (models.Feedback, error)
	AcknowledgeFeedback(sessionID, feedbackID string) (bool, error)
	SubmitFeedbackRequest(sessionID string, input state.RequestInput) (models.FeedbackRequest, error)
	Session(sessionID string) (models.SessionState, models.User, bool)
	Feedbacks() []models.Feedback
	FeedbackRequests() []models.FeedbackRequest
}

type service struct {
	store stateStore
}

// ServiceParams bundles the dependencies required to build a feedback service.
type ServiceParams struct {
	Store stateStore
}

// NewService constructs a feedback service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: params.Store}, nil
}

func (s *service) Submit(_ context.Context, accessID string, req SubmitRequest) (*models.Feedback, error) {
	sentiment, err := enums.ParseSentiment(req.Sentiment)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sentiment")
	}

	created, err := s.store.SubmitFeedback(accessID, req.EmployeeID, state.FeedbackInput{
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    sentiment,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *service) Acknowledge(_ context.Context, accessID, feedbackID string) (*AcknowledgeResponse, error) {
	found, err := s.store.AcknowledgeFeedback(accessID, feedbackID)
	if err != nil {
		return nil, err
	}
	return &AcknowledgeResponse{Acknowledged: found}, nil
}

func (s *service) Visible(_ context.Context, accessID string) (*ListResponse, error) {
	_, actor, ok := s.store.Session(accessID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active user")
	}
	return &ListResponse{
		Items: views.VisibleFeedbacksFor(actor, s.store.Feedbacks()),
	}, nil
}

func (s *service) Request(_ context.Context, accessID string, req RequestFeedbackRequest) (*models.FeedbackRequest, error) {
	priority, err := enums.ParseRequestPriority(req.Priority)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid priority")
	}

	created, err := s.store.SubmitFeedbackRequest(accessID, state.RequestInput{
		Subject:  req.Subject,
		Message:  req.Message,
		Priority: priority,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *service) Requests(_ context.Context, accessID string) (*RequestListResponse, error) {
	_, actor, ok := s.store.Session(accessID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active user")
	}
	return &RequestListResponse{
		Items: views.VisibleRequestsFor(actor, s.store.FeedbackRequests()),
	}, nil
}
