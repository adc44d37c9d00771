package cloud

import (
	"context"
	"sync"

	"github.com/kbukum/cloudkit/logger"
)

// Service is the capability contract every provider implementation
// satisfies. Each accessor returns an opaque, provider-native client handle,
// or nil when no client is available. Callers branch only on nil, never on
// the concrete provider type: "not configured", "not supported", and
// "dependency missing" all look the same.
//
// Implementations hold only the shared, immutable Config and are safe for
// concurrent use. Construction of the native client is the only potentially
// blocking step; cancellation is the ctx of that call.
type Service interface {
	// StorageClient returns an object-storage client handle, or nil.
	StorageClient(ctx context.Context) any

	// CacheClient returns a key-value cache client handle, or nil.
	CacheClient(ctx context.Context) any

	// QueueClient returns a message-queue client handle, or nil.
	QueueClient(ctx context.Context) any
}

// ClientFactory is a caller-supplied client constructor for the custom
// provider. When present in the custom configuration under one of the
// Key*ClientFactory keys, it fully replaces built-in construction for that
// resource kind and is invoked with exactly the derived resource-kind
// configuration.
type ClientFactory func(cfg map[string]any) any

// Factory constructs a provider service bound to the given config.
type Factory func(cfg *Config, log *logger.Logger) Service

var (
	registryMu sync.RWMutex
	factories  = make(map[Provider]Factory)
)

// Register registers a service factory for the given provider. Provider
// subpackages call this from init; importing a subpackage is what makes its
// provider constructible (see cloud/all).
func Register(p Provider, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[p] = f
}

// NewService constructs the service implementation for the config's active
// provider. Acquisition is infallible by design: an unregistered or unknown
// provider falls back to the dependency-free local service rather than
// erroring. Instances are never cached or pooled; construction is cheap.
func NewService(cfg *Config, log *logger.Logger) Service {
	if log == nil {
		log = logger.NewDefault("cloudkit")
	}
	if cfg == nil {
		return NewLocalService()
	}

	registryMu.RLock()
	f, ok := factories[cfg.Provider()]
	registryMu.RUnlock()

	if !ok {
		log.WithComponent("cloud").Debug("no service registered for provider, using local",
			map[string]interface{}{logger.FieldProvider: cfg.Provider().String()})
		return NewLocalService()
	}
	return f(cfg, log)
}
