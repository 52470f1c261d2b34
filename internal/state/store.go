package state

import (
	"strings"
	"sync"
	"time"

	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	pkgerrors "github.com/feedbacklink-io/feedbacklink-backend/pkg/errors"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/models"
	"github.com/google/uuid"
)

// Store is the single source of truth for the directory, the feedback
// history, and per-session view state. Every mutation goes through a named
// operation under one mutex; acknowledge and submit on the same feedback id
// therefore serialize, and nothing outside this package writes fields
// directly.
type Store struct {
	mu sync.Mutex

	clock func() time.Time
	newID func() string

	users     []models.User
	feedbacks []models.Feedback
	requests  []models.FeedbackRequest
	sessions  map[string]*models.SessionState
}

// Option overrides a Store dependency, used by tests to pin ids and time.
type Option func(*Store)

// WithClock replaces the wall clock.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIDGenerator replaces the fresh-id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New returns an empty store. Call SeedDemo to load the sample data set.
func New(opts ...Option) *Store {
	s := &Store{
		clock:    func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		sessions: map[string]*models.SessionState{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FeedbackInput is the validated payload for a feedback submission.
type FeedbackInput struct {
	Strengths    string
	Improvements string
	Sentiment    enums.Sentiment
}

// RequestInput is the validated payload for an employee feedback request.
type RequestInput struct {
	Subject  string
	Message  string
	Priority enums.RequestPriority
}

// Login resolves the email against the directory. A known email wins over the
// supplied name and role; an unseen email creates a fresh user, defaulting
// employees onto the default manager. The session lands on the dashboard.
func (s *Store) Login(sessionID, email, name string, role enums.Role) (models.User, error) {
	if strings.TrimSpace(sessionID) == "" {
		return models.User{}, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if !role.IsValid() {
		return models.User{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, found := s.findUserByEmail(email)
	if !found {
		user = models.User{
			ID:        s.newID(),
			Email:     strings.TrimSpace(email),
			Name:      strings.TrimSpace(name),
			Role:      role,
			CreatedAt: s.clock(),
		}
		if role == enums.RoleEmployee {
			managerID := models.DefaultManagerID
			user.ManagerID = &managerID
		}
		s.users = append(s.users, user)
	}

	s.sessions[sessionID] = &models.SessionState{
		UserID: user.ID,
		View:   enums.ViewDashboard,
	}
	return user, nil
}

// Logout drops the session: no current user, no selection, view back to auth.
func (s *Store) Logout(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// AddEmployee creates an employee under the acting manager, or under the
// default manager when an admin adds one. Email uniqueness is deliberately
// not enforced (see DESIGN.md). The session returns to the dashboard.
func (s *Store) AddEmployee(sessionID, name, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, sess, err := s.actor(sessionID)
	if err != nil {
		return models.User{}, err
	}
	if actor.Role != enums.RoleManager && actor.Role != enums.RoleAdmin {
		return models.User{}, pkgerrors.New(pkgerrors.CodeForbidden, "only managers and admins can add employees")
	}

	managerID := actor.ID
	if actor.Role == enums.RoleAdmin {
		managerID = models.DefaultManagerID
	}

	employee := models.User{
		ID:        s.newID(),
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Role:      enums.RoleEmployee,
		ManagerID: &managerID,
		CreatedAt: s.clock(),
	}
	s.users = append(s.users, employee)
	sess.View = enums.ViewDashboard
	return employee, nil
}

// SubmitFeedback appends a feedback entry authored by the acting user. Each
// call creates a distinct entity; identical content is never deduplicated.
// The selection is cleared and the session returns to the dashboard. The
// target employee is not checked against the actor's reports (see DESIGN.md).
func (s *Store) SubmitFeedback(sessionID, employeeID string, input FeedbackInput) (models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, sess, err := s.actor(sessionID)
	if err != nil {
		return models.Feedback{}, err
	}
	if !input.Sentiment.IsValid() {
		return models.Feedback{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid sentiment")
	}

	feedback := models.Feedback{
		ID:           s.newID(),
		ManagerID:    actor.ID,
		EmployeeID:   employeeID,
		Strengths:    input.Strengths,
		Improvements: input.Improvements,
		Sentiment:    input.Sentiment,
		CreatedAt:    s.clock(),
		Acknowledged: false,
	}
	s.feedbacks = append(s.feedbacks, feedback)
	sess.SelectedEmployeeID = nil
	sess.View = enums.ViewDashboard
	return feedback, nil
}

// AcknowledgeFeedback flips the entry to acknowledged. Idempotent: a second
// call leaves it true. An unknown id is a no-op, reported via the return
// value rather than an error.
func (s *Store) AcknowledgeFeedback(sessionID, feedbackID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, _, err := s.actor(sessionID); err != nil {
		return false, err
	}

	for i := range s.feedbacks {
		if s.feedbacks[i].ID == feedbackID {
			s.feedbacks[i].Acknowledged = true
			return true, nil
		}
	}
	return false, nil
}

// SubmitFeedbackRequest records an employee's ask for feedback, addressed to
// their manager. The session returns to the dashboard.
func (s *Store) SubmitFeedbackRequest(sessionID string, input RequestInput) (models.FeedbackRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, sess, err := s.actor(sessionID)
	if err != nil {
		return models.FeedbackRequest{}, err
	}
	if actor.Role != enums.RoleEmployee {
		return models.FeedbackRequest{}, pkgerrors.New(pkgerrors.CodeForbidden, "only employees can request feedback")
	}
	if !input.Priority.IsValid() {
		return models.FeedbackRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid priority")
	}

	managerID := models.DefaultManagerID
	if actor.ManagerID != nil {
		managerID = *actor.ManagerID
	}

	request := models.FeedbackRequest{
		ID:         s.newID(),
		EmployeeID: actor.ID,
		ManagerID:  managerID,
		Subject:    input.Subject,
		Message:    input.Message,
		Priority:   input.Priority,
		CreatedAt:  s.clock(),
	}
	s.requests = append(s.requests, request)
	sess.View = enums.ViewDashboard
	return request, nil
}

// SetView transitions the session to the named view. The transition is
// unconditional: reachability per role is the caller's concern, the store
// only rejects unknown view names.
func (s *Store) SetView(sessionID string, view enums.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, sess, err := s.actor(sessionID)
	if err != nil {
		return err
	}
	if !view.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid view")
	}
	sess.View = view
	return nil
}

// SetSelectedEmployee targets an employee for the feedback screen; nil clears.
func (s *Store) SetSelectedEmployee(sessionID string, employeeID *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, sess, err := s.actor(sessionID)
	if err != nil {
		return err
	}
	sess.SelectedEmployeeID = employeeID
	return nil
}

// Session returns the session state and its user.
func (s *Store) Session(sessionID string) (models.SessionState, models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return models.SessionState{}, models.User{}, false
	}
	user, found := s.findUserByID(sess.UserID)
	if !found {
		return models.SessionState{}, models.User{}, false
	}
	return *sess, user, true
}

// Users returns a snapshot of the full directory.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Feedbacks returns a snapshot of the full feedback history.
func (s *Store) Feedbacks() []models.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Feedback, len(s.feedbacks))
	copy(out, s.feedbacks)
	return out
}

// FeedbackRequests returns a snapshot of all employee feedback requests.
func (s *Store) FeedbackRequests() []models.FeedbackRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FeedbackRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// UserByID looks a user up by id.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUserByID(id)
}

// UserByEmail looks a user up by email, case-insensitively.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUserByEmail(email)
}

// actor resolves the session to its user. Callers must hold the mutex.
func (s *Store) actor(sessionID string) (models.User, *models.SessionState, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return models.User{}, nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active user")
	}
	user, found := s.findUserByID(sess.UserID)
	if !found {
		return models.User{}, nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active user")
	}
	return user, sess, nil
}

func (s *Store) findUserByID(id string) (models.User, bool) {
	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *Store) findUserByEmail(email string) (models.User, bool) {
	needle := strings.TrimSpace(email)
	for _, user := range s.users {
		if strings.EqualFold(user.Email, needle) {
			return user, true
		}
	}
	return models.User{}, false
}
