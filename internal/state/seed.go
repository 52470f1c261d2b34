package state

import (
	"fmt"
	"time"

	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/models"
	"go.uber.org/multierr"
)

// SeedDemo loads the sample directory and feedback history the product demo
// ships with: one admin, one manager, six employees reporting to the manager,
// and three historical feedback entries. Ids are stable so clients and tests
// can reference them.
func (s *Store) SeedDemo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	managerID := models.DefaultManagerID

	employee := func(id, email, name string) models.User {
		return models.User{
			ID:        id,
			Email:     email,
			Name:      name,
			Role:      enums.RoleEmployee,
			ManagerID: &managerID,
			CreatedAt: now,
		}
	}

	s.users = []models.User{
		{ID: "0", Email: "admin@company.com", Name: "Super Admin", Role: enums.RoleAdmin, CreatedAt: now},
		{ID: "1", Email: "manager@company.com", Name: "Manager", Role: enums.RoleManager, CreatedAt: now},
		employee("2", "gagan@company.com", "Gagan A C"),
		employee("3", "punith@company.com", "Punith"),
		employee("4", "shivashankar@company.com", "Shivashankar"),
		employee("5", "sharath@company.com", "Sharath"),
		employee("6", "jeevan@company.com", "Jeevan"),
		employee("7", "tejas@company.com", "Tejas"),
	}

	s.feedbacks = []models.Feedback{
		{
			ID:           "1",
			ManagerID:    "1",
			EmployeeID:   "2",
			Strengths:    "Excellent problem-solving skills and great team collaboration. Shows initiative in taking on challenging tasks.",
			Improvements: "Could improve time management and communication with stakeholders. Consider taking leadership training.",
			Sentiment:    enums.SentimentPositive,
			CreatedAt:    now.Add(-7 * 24 * time.Hour),
			Acknowledged: false,
		},
		{
			ID:           "2",
			ManagerID:    "1",
			EmployeeID:   "3",
			Strengths:    "Strong technical skills and attention to detail. Consistently delivers high-quality work.",
			Improvements: "Would benefit from more proactive communication and involvement in team discussions.",
			Sentiment:    enums.SentimentPositive,
			CreatedAt:    now.Add(-14 * 24 * time.Hour),
			Acknowledged: true,
		},
		{
			ID:           "3",
			ManagerID:    "1",
			EmployeeID:   "4",
			Strengths:    "Great leadership potential and excellent communication skills. Always willing to help team members.",
			Improvements: "Focus on technical depth and consider specializing in specific areas.",
			Sentiment:    enums.SentimentPositive,
			CreatedAt:    now.Add(-21 * 24 * time.Hour),
			Acknowledged: true,
		},
	}

	return s.validateLocked()
}

// validateLocked checks the directory invariants: employees carry exactly one
// manager id resolving to a manager, non-employees carry none, and feedback
// references resolve. Violations are aggregated so a broken seed reports
// everything at once.
func (s *Store) validateLocked() error {
	var err error

	roleByID := make(map[string]enums.Role, len(s.users))
	for _, user := range s.users {
		roleByID[user.ID] = user.Role
	}

	for _, user := range s.users {
		switch user.Role {
		case enums.RoleEmployee:
			if user.ManagerID == nil {
				err = multierr.Append(err, fmt.Errorf("employee %s has no manager", user.ID))
				continue
			}
			if roleByID[*user.ManagerID] != enums.RoleManager {
				err = multierr.Append(err, fmt.Errorf("employee %s references non-manager %s", user.ID, *user.ManagerID))
			}
		default:
			if user.ManagerID != nil {
				err = multierr.Append(err, fmt.Errorf("%s %s must not carry a manager id", user.Role, user.ID))
			}
		}
	}

	for _, feedback := range s.feedbacks {
		if roleByID[feedback.ManagerID] != enums.RoleManager {
			err = multierr.Append(err, fmt.Errorf("feedback %s authored by non-manager %s", feedback.ID, feedback.ManagerID))
		}
		if roleByID[feedback.EmployeeID] != enums.RoleEmployee {
			err = multierr.Append(err, fmt.Errorf("feedback %s targets non-employee %s", feedback.ID, feedback.EmployeeID))
		}
	}

	return err
}
