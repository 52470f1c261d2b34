package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/feedbacklink-io/feedbacklink-backend/internal/views"
	pkgAuth "github.com/feedbacklink-io/feedbacklink-backend/pkg/auth"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/auth/session"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/config"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	pkgerrors "github.com/feedbacklink-io/feedbacklink-backend/pkg/errors"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/models"
)

// Service owns the session lifecycle: login, logout, and the per-session
// view/selection state the client renders from.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, accessID string) error
	Session(ctx context.Context, accessID string) (*SessionResponse, error)
	SetView(ctx context.Context, accessID string, req SetViewRequest) (*SessionResponse, error)
	SetSelection(ctx context.Context, accessID string, req SetSelectionRequest) (*SessionResponse, error)
}

type stateStore interface {
	Login(sessionID, email, name string, role enums.Role) (models.User, error)
	Logout(sessionID string)
	SetView(sessionID string, view enums.View) error
	SetSelectedEmployee(sessionID string, employeeID *string) error
	Session(sessionID string) (models.SessionState, models.User, bool)
	Users() []models.User
}

type sessionManager interface {
	Register(ctx context.Context, accessID string) error
	Revoke(ctx context.Context, accessID string) error
}

type service struct {
	store   stateStore
	session sessionManager
	jwtCfg  config.JWTConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Store          stateStore
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
}

// NewService constructs a session service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("state store is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		store:   params.Store,
		session: params.SessionManager,
		jwtCfg:  params.JWTConfig,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	role, err := enums.ParseRole(req.Role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
	}

	accessID := session.NewAccessID()
	user, err := s.store.Login(accessID, req.Email, req.Name, role)
	if err != nil {
		return nil, err
	}

	if err := s.session.Register(ctx, accessID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "register session")
	}

	// The token carries the resolved role, not the requested one: a known
	// email keeps its stored identity.
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &LoginResponse{
		User:        user,
		AccessToken: token,
		View:        enums.ViewDashboard,
	}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if err := s.session.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoke session")
	}
	s.store.Logout(accessID)
	return nil
}

func (s *service) Session(_ context.Context, accessID string) (*SessionResponse, error) {
	return s.sessionResponse(accessID)
}

func (s *service) SetView(_ context.Context, accessID string, req SetViewRequest) (*SessionResponse, error) {
	view, err := enums.ParseView(req.View)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid view")
	}
	if err := s.store.SetView(accessID, view); err != nil {
		return nil, err
	}
	return s.sessionResponse(accessID)
}

func (s *service) SetSelection(_ context.Context, accessID string, req SetSelectionRequest) (*SessionResponse, error) {
	if err := s.store.SetSelectedEmployee(accessID, req.EmployeeID); err != nil {
		return nil, err
	}
	return s.sessionResponse(accessID)
}

func (s *service) sessionResponse(accessID string) (*SessionResponse, error) {
	sess, user, ok := s.store.Session(accessID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active user")
	}

	resp := &SessionResponse{
		User:         user,
		View:         sess.View,
		AllowedViews: views.AllowedFor(user.Role),
	}
	if selected, found := views.SelectedEmployee(sess.SelectedEmployeeID, s.store.Users()); found {
		resp.SelectedEmployee = &selected
	}
	return resp, nil
}
