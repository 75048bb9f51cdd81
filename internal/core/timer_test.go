package core

import (
	"context"
	"testing"
	"time"
)

func TestFixedStepRemaining(t *testing.T) {
	now := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("step %v, want 100ms", fs.Step())
	}
	if fs.Remaining() != 0 {
		t.Fatal("first tick must be due immediately")
	}
	if err := fs.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}

	now = now.Add(30 * time.Millisecond)
	if got := fs.Remaining(); got != 70*time.Millisecond {
		t.Fatalf("remaining %v, want 70ms", got)
	}
	now = now.Add(time.Second)
	if fs.Remaining() != 0 {
		t.Fatal("overdue tick must not report negative wait")
	}
}

func TestFixedStepDefaultTPS(t *testing.T) {
	if got := NewFixedStep(0).Step(); got != 100*time.Millisecond {
		t.Fatalf("default step %v, want 100ms", got)
	}
}

func TestFixedStepWaitCanceled(t *testing.T) {
	fs := NewFixedStep(1)
	if err := fs.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := fs.Wait(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
