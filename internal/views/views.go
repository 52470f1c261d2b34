// Package views holds the pure role-scoping rules: which screens a role may
// enter and which slice of the directory and feedback history each role sees.
// Nothing here touches the store or performs side effects.
package views

import (
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/models"
)

// TeamMembersFor returns the employees a user manages: a manager sees their
// direct reports, an admin sees every employee, an employee sees nobody.
func TeamMembersFor(user models.User, users []models.User) []models.User {
	members := []models.User{}
	switch user.Role {
	case enums.RoleManager:
		for _, candidate := range users {
			if candidate.ManagerID != nil && *candidate.ManagerID == user.ID {
				members = append(members, candidate)
			}
		}
	case enums.RoleAdmin:
		for _, candidate := range users {
			if candidate.Role == enums.RoleEmployee {
				members = append(members, candidate)
			}
		}
	}
	return members
}

// VisibleFeedbacksFor returns the feedback subset a user may read: employees
// see feedback about them, managers see feedback they authored, admins see
// everything.
func VisibleFeedbacksFor(user models.User, feedbacks []models.Feedback) []models.Feedback {
	if user.Role == enums.RoleAdmin {
		out := make([]models.Feedback, len(feedbacks))
		copy(out, feedbacks)
		return out
	}

	visible := []models.Feedback{}
	for _, feedback := range feedbacks {
		switch user.Role {
		case enums.RoleEmployee:
			if feedback.EmployeeID == user.ID {
				visible = append(visible, feedback)
			}
		case enums.RoleManager:
			if feedback.ManagerID == user.ID {
				visible = append(visible, feedback)
			}
		}
	}
	return visible
}

// VisibleRequestsFor returns the feedback requests a user may read: managers
// see requests addressed to them, admins see all, employees see their own.
func VisibleRequestsFor(user models.User, requests []models.FeedbackRequest) []models.FeedbackRequest {
	visible := []models.FeedbackRequest{}
	for _, request := range requests {
		switch user.Role {
		case enums.RoleAdmin:
			visible = append(visible, request)
		case enums.RoleManager:
			if request.ManagerID == user.ID {
				visible = append(visible, request)
			}
		case enums.RoleEmployee:
			if request.EmployeeID == user.ID {
				visible = append(visible, request)
			}
		}
	}
	return visible
}

// SelectedEmployee resolves the session's selection against the directory.
func SelectedEmployee(selection *string, users []models.User) (models.User, bool) {
	if selection == nil {
		return models.User{}, false
	}
	for _, user := range users {
		if user.ID == *selection {
			return user, true
		}
	}
	return models.User{}, false
}

// allowedViews is the screen reachability table. The auth screen belongs to
// unauthenticated sessions and is never offered to a logged-in role.
var allowedViews = map[enums.Role][]enums.View{
	enums.RoleAdmin: {
		enums.ViewDashboard,
		enums.ViewAddEmployee,
		enums.ViewAllFeedback,
		enums.ViewTeamOverview,
	},
	enums.RoleManager: {
		enums.ViewDashboard,
		enums.ViewFeedback,
		enums.ViewAddEmployee,
		enums.ViewAllFeedback,
		enums.ViewTeamOverview,
	},
	enums.RoleEmployee: {
		enums.ViewDashboard,
		enums.ViewAllFeedback,
		enums.ViewRequestFeedback,
	},
}

// Allowed reports whether a role may enter the named view.
func Allowed(view enums.View, role enums.Role) bool {
	for _, candidate := range allowedViews[role] {
		if candidate == view {
			return true
		}
	}
	return false
}

// AllowedFor lists every view a role may enter, dashboard first.
func AllowedFor(role enums.Role) []enums.View {
	views := allowedViews[role]
	out := make([]enums.View, len(views))
	copy(out, views)
	return out
}
