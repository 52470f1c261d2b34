package session

import (
	"context"
	"testing"
	"time"

	"github.com/feedbacklink-io/feedbacklink-backend/pkg/config"
)

func TestManagerRegisterAndRevoke(t *testing.T) {
	mgr, err := NewManager(config.JWTConfig{ExpirationMinutes: 30})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	ctx := context.Background()

	id := NewAccessID()
	if err := mgr.Register(ctx, id); err != nil {
		t.Fatalf("register: %v", err)
	}

	ok, err := mgr.HasSession(ctx, id)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("expected session to be live after register")
	}

	if err := mgr.Revoke(ctx, id); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err = mgr.HasSession(ctx, id)
	if err != nil {
		t.Fatalf("has session after revoke: %v", err)
	}
	if ok {
		t.Fatal("expected session gone after revoke")
	}
}

func TestManagerUnknownSession(t *testing.T) {
	mgr, err := NewManager(config.JWTConfig{ExpirationMinutes: 30})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	ok, err := mgr.HasSession(context.Background(), "nope")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("unknown access id should not have a session")
	}
}

func TestManagerExpiredEntriesAreDropped(t *testing.T) {
	mgr, err := NewManager(config.JWTConfig{ExpirationMinutes: 30})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	mgr.ttl = -time.Second

	ctx := context.Background()
	id := NewAccessID()
	if err := mgr.Register(ctx, id); err != nil {
		t.Fatalf("register: %v", err)
	}
	ok, err := mgr.HasSession(ctx, id)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expected expired session to be treated as gone")
	}
}

func TestManagerRequiresPositiveTTL(t *testing.T) {
	if _, err := NewManager(config.JWTConfig{}); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}
