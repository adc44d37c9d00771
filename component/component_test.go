package component

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/cloudkit/logger"
)

// fakeComponent records lifecycle calls.
type fakeComponent struct {
	name     string
	startErr error
	stopErr  error
	events   *[]string
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(context.Context) error {
	*f.events = append(*f.events, "start:"+f.name)
	return f.startErr
}

func (f *fakeComponent) Stop(context.Context) error {
	*f.events = append(*f.events, "stop:"+f.name)
	return f.stopErr
}

func (f *fakeComponent) Health(context.Context) Health {
	return Health{Name: f.name, Status: StatusHealthy}
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	r := NewRegistry(logger.Nop())
	var events []string
	if err := r.Register(&fakeComponent{name: "a", events: &events}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&fakeComponent{name: "a", events: &events}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestStartStopOrdering(t *testing.T) {
	r := NewRegistry(logger.Nop())
	var events []string
	for _, name := range []string{"a", "b", "c"} {
		if err := r.Register(&fakeComponent{name: name, events: &events}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	ctx := context.Background()
	if err := r.StartAll(ctx); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	if err := r.StopAll(ctx); err != nil {
		t.Fatalf("StopAll: %v", err)
	}

	want := []string{"start:a", "start:b", "start:c", "stop:c", "stop:b", "stop:a"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestStartAllStopsAtFirstFailure(t *testing.T) {
	r := NewRegistry(logger.Nop())
	var events []string
	boom := errors.New("boom")
	_ = r.Register(&fakeComponent{name: "ok", events: &events})
	_ = r.Register(&fakeComponent{name: "bad", startErr: boom, events: &events})
	_ = r.Register(&fakeComponent{name: "never", events: &events})

	err := r.StartAll(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	for _, e := range events {
		if e == "start:never" {
			t.Error("component after failure should not start")
		}
	}
}

func TestStopAllSkipsUnstarted(t *testing.T) {
	r := NewRegistry(logger.Nop())
	var events []string
	_ = r.Register(&fakeComponent{name: "a", events: &events})

	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no stop events, got %v", events)
	}
}

func TestHealthAll(t *testing.T) {
	r := NewRegistry(logger.Nop())
	var events []string
	_ = r.Register(&fakeComponent{name: "a", events: &events})
	_ = r.Register(&fakeComponent{name: "b", events: &events})

	healths := r.HealthAll(context.Background())
	if len(healths) != 2 {
		t.Fatalf("expected 2 health entries, got %d", len(healths))
	}
	if healths[0].Name != "a" || healths[1].Name != "b" {
		t.Errorf("unexpected order: %v", healths)
	}
}

func TestGet(t *testing.T) {
	r := NewRegistry(logger.Nop())
	var events []string
	c := &fakeComponent{name: "cloud", events: &events}
	_ = r.Register(c)

	got, ok := r.Get("cloud")
	if !ok || got != Component(c) {
		t.Error("expected to retrieve registered component")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("expected miss for unknown name")
	}
}
