package feedback

import (
	"context"
	"testing"

	"github.com/feedbacklink-io/feedbacklink-backend/internal/state"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/enums"
	pkgerrors "github.com/feedbacklink-io/feedbacklink-backend/pkg/errors"
)

func buildTestService(t *testing.T) (Service, *state.Store) {
	t.Helper()
	store := state.New()
	if err := store.SeedDemo(); err != nil {
		t.Fatalf("seed demo: %v", err)
	}
	svc, err := NewService(ServiceParams{Store: store})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, store
}

func login(t *testing.T, store *state.Store, sessionID, email string, role enums.Role) {
	t.Helper()
	if _, err := store.Login(sessionID, email, "Test User", role); err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
}

func TestServiceSubmitReturnsCreatedFeedback(t *testing.T) {
	svc, store := buildTestService(t)
	login(t, store, "sess-mgr", "manager@company.com", enums.RoleManager)

	created, err := svc.Submit(context.Background(), "sess-mgr", SubmitRequest{
		EmployeeID:   "2",
		Strengths:    "Ships reliably.",
		Improvements: "Document decisions.",
		Sentiment:    "neutral",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.ManagerID != "1" || created.EmployeeID != "2" {
		t.Fatalf("unexpected attribution %s/%s", created.ManagerID, created.EmployeeID)
	}
	if created.Sentiment != enums.SentimentNeutral {
		t.Fatalf("unexpected sentiment %s", created.Sentiment)
	}
	if created.Acknowledged {
		t.Fatal("new feedback starts unacknowledged")
	}
}

func TestServiceSubmitRejectsBadSentiment(t *testing.T) {
	svc, store := buildTestService(t)
	login(t, store, "sess-mgr", "manager@company.com", enums.RoleManager)

	_, err := svc.Submit(context.Background(), "sess-mgr", SubmitRequest{
		EmployeeID:   "2",
		Strengths:    "x",
		Improvements: "y",
		Sentiment:    "ecstatic",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceSubmitWithoutSession(t *testing.T) {
	svc, _ := buildTestService(t)
	_, err := svc.Submit(context.Background(), "missing", SubmitRequest{
		EmployeeID:   "2",
		Strengths:    "x",
		Improvements: "y",
		Sentiment:    "positive",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestServiceAcknowledgeReportsResolution(t *testing.T) {
	svc, store := buildTestService(t)
	login(t, store, "sess-emp", "gagan@company.com", enums.RoleEmployee)

	resp, err := svc.Acknowledge(context.Background(), "sess-emp", "1")
	if err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	if !resp.Acknowledged {
		t.Fatal("known feedback id must resolve")
	}

	// An unknown id is a quiet no-op, not an error.
	resp, err = svc.Acknowledge(context.Background(), "sess-emp", "999")
	if err != nil {
		t.Fatalf("acknowledge unknown: %v", err)
	}
	if resp.Acknowledged {
		t.Fatal("unknown feedback id must report false")
	}
}

func TestServiceVisibleScopedByRole(t *testing.T) {
	svc, store := buildTestService(t)
	login(t, store, "sess-admin", "admin@company.com", enums.RoleAdmin)
	login(t, store, "sess-emp", "gagan@company.com", enums.RoleEmployee)

	all, err := svc.Visible(context.Background(), "sess-admin")
	if err != nil {
		t.Fatalf("admin visible: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("admin sees all seeded feedback, got %d", len(all.Items))
	}

	own, err := svc.Visible(context.Background(), "sess-emp")
	if err != nil {
		t.Fatalf("employee visible: %v", err)
	}
	if len(own.Items) != 1 || own.Items[0].EmployeeID != "2" {
		t.Fatalf("employee sees only their feedback, got %d items", len(own.Items))
	}
}

func TestServiceRequestRoutesToManager(t *testing.T) {
	svc, store := buildTestService(t)
	login(t, store, "sess-emp", "gagan@company.com", enums.RoleEmployee)
	login(t, store, "sess-mgr", "manager@company.com", enums.RoleManager)

	created, err := svc.Request(context.Background(), "sess-emp", RequestFeedbackRequest{
		Subject:  "Quarterly check-in",
		Message:  "Could you review my last sprint?",
		Priority: "high",
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if created.ManagerID != "1" {
		t.Fatalf("request must route to the employee's manager, got %s", created.ManagerID)
	}
	if created.Priority != enums.RequestPriorityHigh {
		t.Fatalf("unexpected priority %s", created.Priority)
	}

	inbox, err := svc.Requests(context.Background(), "sess-mgr")
	if err != nil {
		t.Fatalf("manager requests: %v", err)
	}
	if len(inbox.Items) != 1 || inbox.Items[0].ID != created.ID {
		t.Fatal("manager must see the routed request")
	}
}

func TestServiceRequestRejectsBadPriority(t *testing.T) {
	svc, store := buildTestService(t)
	login(t, store, "sess-emp", "gagan@company.com", enums.RoleEmployee)

	_, err := svc.Request(context.Background(), "sess-emp", RequestFeedbackRequest{
		Subject:  "s",
		Message:  "m",
		Priority: "urgent",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceRequestForbiddenForManager(t *testing.T) {
	svc, store := buildTestService(t)
	login(t, store, "sess-mgr", "manager@company.com", enums.RoleManager)

	_, err := svc.Request(context.Background(), "sess-mgr", RequestFeedbackRequest{
		Subject:  "s",
		Message:  "m",
		Priority: "low",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
