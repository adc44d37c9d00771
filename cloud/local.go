package cloud

import (
	"context"

	"github.com/kbukum/cloudkit/logger"
)

func init() {
	Register(ProviderLocal, func(_ *Config, _ *logger.Logger) Service {
		return NewLocalService()
	})
}

// LocalService is the no-op provider: every accessor returns nil. It exists
// so the system has a safe, dependency-free default, and it is the fallback
// when no factory is registered for the active provider.
type LocalService struct{}

// NewLocalService creates the local no-op service.
func NewLocalService() *LocalService { return &LocalService{} }

// StorageClient always returns nil.
func (s *LocalService) StorageClient(_ context.Context) any { return nil }

// CacheClient always returns nil.
func (s *LocalService) CacheClient(_ context.Context) any { return nil }

// QueueClient always returns nil.
func (s *LocalService) QueueClient(_ context.Context) any { return nil }

// compile-time check
var _ Service = (*LocalService)(nil)
