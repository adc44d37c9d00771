package cloud

import (
	"context"
	"testing"

	"github.com/kbukum/cloudkit/component"
	"github.com/kbukum/cloudkit/config"
	"github.com/kbukum/cloudkit/logger"
)

func TestComponentLifecycle(t *testing.T) {
	ctx := context.Background()
	settings := config.NewMapSettings(map[string]any{
		"cloud": map[string]any{"provider": "local", "region": "eu-central-1"},
	})
	c := NewComponent(settings, logger.Nop())

	t.Run("unhealthy before start", func(t *testing.T) {
		if h := c.Health(ctx); h.Status != component.StatusUnhealthy {
			t.Errorf("status = %q, want unhealthy", h.Status)
		}
		if c.Service() != nil || c.Config() != nil {
			t.Error("service and config must be nil before start")
		}
	})

	t.Run("start resolves config and builds service", func(t *testing.T) {
		if err := c.Start(ctx); err != nil {
			t.Fatalf("Start error: %v", err)
		}
		if c.Service() == nil {
			t.Fatal("service is nil after start")
		}
		if c.Config().Provider() != ProviderLocal {
			t.Errorf("provider = %q", c.Config().Provider())
		}
		if h := c.Health(ctx); h.Status != component.StatusHealthy {
			t.Errorf("status = %q, want healthy", h.Status)
		}
	})

	t.Run("describe reflects resolved config", func(t *testing.T) {
		d := c.Describe()
		if d.Details != "provider=local region=eu-central-1" {
			t.Errorf("details = %q", d.Details)
		}
	})

	t.Run("stop releases references", func(t *testing.T) {
		if err := c.Stop(ctx); err != nil {
			t.Fatalf("Stop error: %v", err)
		}
		if c.Service() != nil {
			t.Error("service must be nil after stop")
		}
		if h := c.Health(ctx); h.Status != component.StatusUnhealthy {
			t.Errorf("status = %q, want unhealthy", h.Status)
		}
	})
}

func TestComponentStartFailsOnBadProvider(t *testing.T) {
	settings := config.NewMapSettings(map[string]any{
		"cloud": map[string]any{"provider": "openstack"},
	})
	c := NewComponent(settings, logger.Nop())
	if err := c.Start(context.Background()); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
