package enums

import "fmt"

// RequestPriority ranks how urgently an employee wants feedback.
type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "low"
	RequestPriorityNormal RequestPriority = "normal"
	RequestPriorityHigh   RequestPriority = "high"
)

var validRequestPriorities = []RequestPriority{
	RequestPriorityLow,
	RequestPriorityNormal,
	RequestPriorityHigh,
}

// String implements fmt.Stringer.
func (p RequestPriority) String() string {
	return string(p)
}

// IsValid reports whether the value is a known RequestPriority.
func (p RequestPriority) IsValid() bool {
	for _, candidate := range validRequestPriorities {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseRequestPriority converts raw input into a RequestPriority.
func ParseRequestPriority(value string) (RequestPriority, error) {
	for _, candidate := range validRequestPriorities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid request priority %q", value)
}
