package team

import (
	"context"
	"fmt"

	"github.com/feedbacklink-io/feedbacklink-backend/internal/views"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	pkgerrors "github.com/feedbacklink-io/feedbacklink-backend/pkg/errors"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/models"
)

// Service exposes the team surface: adding employees and the role-scoped
// member listings.
type Service interface {
	AddEmployee(ctx context.Context, accessID string, req AddEmployeeRequest) (*models.User, error)
	TeamMembers(ctx context.Context, accessID string) (*TeamResponse, error)
	Directory(ctx context.Context, accessID string) (*DirectoryResponse, error)
}

type stateStore interface {
	AddEmployee(sessionID, name, email string) (models.User, error)
	Session(sessionID string) (models.SessionState, models.User, bool)
	Users() []models.User
}

type service struct {
	store stateStore
}

// ServiceParams bundles the dependencies required to build a team service.
type ServiceParams struct {
	Store stateStore
}

// NewService constructs a team service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("state store is required")
	}
	return &service{store: params.Store}, nil
}

func (s *service) AddEmployee(_ context.Context, accessID string, req AddEmployeeRequest) (*models.User, error) {
	employee, err := s.store.AddEmployee(accessID, req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *service) TeamMembers(_ context.Context, accessID string) (*TeamResponse, error) {
	_, actor, ok := s.store.Session(accessID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active user")
	}
	return &TeamResponse{
		Members: views.TeamMembersFor(actor, s.store.Users()),
	}, nil
}

func (s *service) Directory(_ context.Context, accessID string) (*DirectoryResponse, error) {
	_, actor, ok := s.store.Session(accessID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active user")
	}
	if actor.Role != enums.RoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "directory is admin-only")
	}
	return &DirectoryResponse{Users: s.store.Users()}, nil
}
