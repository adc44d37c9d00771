package cloud

import (
	"context"
	"testing"

	"github.com/kbukum/cloudkit/config"
	"github.com/kbukum/cloudkit/logger"
)

type stubService struct{ marker string }

func (s *stubService) StorageClient(_ context.Context) any { return s.marker + ":storage" }
func (s *stubService) CacheClient(_ context.Context) any   { return s.marker + ":cache" }
func (s *stubService) QueueClient(_ context.Context) any   { return s.marker + ":queue" }

func resolveFor(t *testing.T, provider string) *Config {
	t.Helper()
	cfg, err := Resolve(config.NewMapSettings(map[string]any{
		"cloud": map[string]any{"provider": provider},
	}))
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	return cfg
}

func TestNewService(t *testing.T) {
	log := logger.Nop()

	t.Run("nil config falls back to local", func(t *testing.T) {
		svc := NewService(nil, log)
		if _, ok := svc.(*LocalService); !ok {
			t.Fatalf("got %T, want *LocalService", svc)
		}
	})

	t.Run("nil logger is tolerated", func(t *testing.T) {
		svc := NewService(resolveFor(t, "local"), nil)
		if svc == nil {
			t.Fatal("service is nil")
		}
	})

	t.Run("local provider yields the local service", func(t *testing.T) {
		svc := NewService(resolveFor(t, "local"), log)
		if _, ok := svc.(*LocalService); !ok {
			t.Fatalf("got %T, want *LocalService", svc)
		}
	})

	t.Run("unregistered provider falls back to local", func(t *testing.T) {
		// aws is not imported by this package's tests, so no factory exists.
		svc := NewService(resolveFor(t, "aws"), log)
		if _, ok := svc.(*LocalService); !ok {
			t.Fatalf("got %T, want *LocalService", svc)
		}
	})

	t.Run("registered factory wins", func(t *testing.T) {
		Register(ProviderHetzner, func(_ *Config, _ *logger.Logger) Service {
			return &stubService{marker: "stub"}
		})
		defer func() {
			registryMu.Lock()
			delete(factories, ProviderHetzner)
			registryMu.Unlock()
		}()

		svc := NewService(resolveFor(t, "hetzner"), log)
		stub, ok := svc.(*stubService)
		if !ok {
			t.Fatalf("got %T, want *stubService", svc)
		}
		if got := stub.StorageClient(context.Background()); got != "stub:storage" {
			t.Errorf("storage client = %v", got)
		}
	})
}

func TestLocalServiceReturnsNilClients(t *testing.T) {
	svc := NewLocalService()
	ctx := context.Background()

	if svc.StorageClient(ctx) != nil {
		t.Error("storage client should be nil")
	}
	if svc.CacheClient(ctx) != nil {
		t.Error("cache client should be nil")
	}
	if svc.QueueClient(ctx) != nil {
		t.Error("queue client should be nil")
	}
}
