package cloud

import (
	"context"
	"fmt"

	"github.com/kbukum/cloudkit/component"
	"github.com/kbukum/cloudkit/config"
	"github.com/kbukum/cloudkit/logger"
)

// Component wraps resolution and service construction as a lifecycle-managed
// component. The web layer (or any other consumer) holds the Service it
// exposes and never inspects the Config directly.
type Component struct {
	settings config.Settings
	log      *logger.Logger
	cfg      *Config
	service  Service
}

// NewComponent creates a cloud component for use with the component registry.
func NewComponent(settings config.Settings, log *logger.Logger) *Component {
	return &Component{
		settings: settings,
		log:      log.WithComponent("cloud"),
	}
}

// Service returns the constructed cloud service, or nil if not started.
func (c *Component) Service() Service { return c.service }

// Config returns the resolved cloud configuration, or nil if not started.
func (c *Component) Config() *Config { return c.cfg }

// Name returns the component name.
func (c *Component) Name() string { return "cloud" }

// Start resolves the cloud configuration and constructs the provider service.
func (c *Component) Start(_ context.Context) error {
	cfg, err := Resolve(c.settings)
	if err != nil {
		return fmt.Errorf("cloud start: %w", err)
	}
	c.cfg = cfg
	c.service = NewService(cfg, c.log)

	c.log.Info("cloud service initialized", map[string]interface{}{
		logger.FieldProvider: cfg.Provider().String(),
		logger.FieldRegion:   cfg.Region(),
	})
	return nil
}

// Stop releases the service reference. Native clients manage their own
// connections, so there is nothing further to tear down.
func (c *Component) Stop(_ context.Context) error {
	c.service = nil
	c.cfg = nil
	return nil
}

// Health returns the current health status of the cloud component.
func (c *Component) Health(_ context.Context) component.Health {
	if c.service == nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: "cloud service not initialized",
		}
	}
	return component.Health{
		Name:    c.Name(),
		Status:  component.StatusHealthy,
		Message: fmt.Sprintf("provider=%s", c.cfg.Provider()),
	}
}

// Describe returns infrastructure summary info for the startup display.
func (c *Component) Describe() component.Description {
	details := "not started"
	if c.cfg != nil {
		details = fmt.Sprintf("provider=%s region=%s", c.cfg.Provider(), c.cfg.Region())
	}
	return component.Description{
		Name:    "Cloud Services",
		Type:    "cloud",
		Details: details,
	}
}

// compile-time checks
var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)
