package enums

import "fmt"

// View names the screen a session currently has active.
type View string

const (
	ViewAuth            View = "auth"
	ViewDashboard       View = "dashboard"
	ViewFeedback        View = "feedback"
	ViewAddEmployee     View = "addEmployee"
	ViewAllFeedback     View = "viewAllFeedback"
	ViewTeamOverview    View = "teamOverview"
	ViewRequestFeedback View = "requestFeedback"
)

var validViews = []View{
	ViewAuth,
	ViewDashboard,
	ViewFeedback,
	ViewAddEmployee,
	ViewAllFeedback,
	ViewTeamOverview,
	ViewRequestFeedback,
}

// String implements fmt.Stringer.
func (v View) String() string {
	return string(v)
}

// IsValid reports whether the value is a known View.
func (v View) IsValid() bool {
	for _, candidate := range validViews {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseView converts raw input into a View.
func ParseView(value string) (View, error) {
	for _, candidate := range validViews {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid view %q", value)
}
