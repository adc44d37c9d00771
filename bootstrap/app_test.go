package bootstrap

import (
	"context"
	"fmt"
	"testing"

	"github.com/kbukum/cloudkit/cloud"
	"github.com/kbukum/cloudkit/component"
	"github.com/kbukum/cloudkit/config"
	"github.com/kbukum/cloudkit/logger"
)

func newTestApp(t *testing.T, values map[string]any) *App {
	t.Helper()
	app, err := New("testapp",
		WithSettings(config.NewMapSettings(values)),
		WithLogger(logger.Nop()),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return app
}

func TestAppLifecycle(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, map[string]any{
		"cloud": map[string]any{"provider": "local"},
	})

	t.Run("cloud component is pre-registered", func(t *testing.T) {
		if _, ok := app.Components.Get("cloud"); !ok {
			t.Fatal("cloud component not registered")
		}
		if app.CloudService() != nil {
			t.Error("cloud service must be nil before start")
		}
	})

	t.Run("start builds the cloud service", func(t *testing.T) {
		if err := app.Start(ctx); err != nil {
			t.Fatalf("Start error: %v", err)
		}
		if app.CloudService() == nil {
			t.Fatal("cloud service is nil after start")
		}
		if got := app.Cloud().Config().Provider(); got != cloud.ProviderLocal {
			t.Errorf("provider = %q", got)
		}
	})

	t.Run("health covers registered components", func(t *testing.T) {
		healths := app.Health(ctx)
		if len(healths) != 1 {
			t.Fatalf("got %d health entries, want 1", len(healths))
		}
		if healths[0].Status != component.StatusHealthy {
			t.Errorf("status = %q", healths[0].Status)
		}
	})

	t.Run("stop releases the cloud service", func(t *testing.T) {
		if err := app.Stop(ctx); err != nil {
			t.Fatalf("Stop error: %v", err)
		}
		if app.CloudService() != nil {
			t.Error("cloud service must be nil after stop")
		}
	})
}

func TestAppStartFailsOnBadProvider(t *testing.T) {
	app := newTestApp(t, map[string]any{
		"cloud": map[string]any{"provider": "openstack"},
	})
	if err := app.Start(context.Background()); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

type failingComponent struct{}

func (f *failingComponent) Name() string { return "failing" }
func (f *failingComponent) Start(_ context.Context) error {
	return fmt.Errorf("boom")
}
func (f *failingComponent) Stop(_ context.Context) error { return nil }
func (f *failingComponent) Health(_ context.Context) component.Health {
	return component.Health{Name: "failing", Status: component.StatusUnhealthy}
}

func TestAppStartStopsOnFirstFailure(t *testing.T) {
	app := newTestApp(t, map[string]any{
		"cloud": map[string]any{"provider": "local"},
	})
	if err := app.Register(&failingComponent{}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if err := app.Start(context.Background()); err == nil {
		t.Fatal("expected start failure")
	}
}

func TestLoggerBuiltFromSettings(t *testing.T) {
	app, err := New("testapp", WithSettings(config.NewMapSettings(map[string]any{
		"logging": map[string]any{"level": "debug", "format": "json"},
		"cloud":   map[string]any{"provider": "local"},
	})))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if app.Logger == nil {
		t.Fatal("logger is nil")
	}
}
