// Package gcp implements the cloud.Service contract for Google Cloud: GCS
// object storage, Memorystore (Redis protocol), and Pub/Sub queues.
package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	gcs "cloud.google.com/go/storage"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"github.com/kbukum/cloudkit/cloud"
	"github.com/kbukum/cloudkit/logger"
)

// memorystorePort is fixed: Memorystore exposes the standard Redis port.
const memorystorePort = 6379

func init() {
	cloud.Register(cloud.ProviderGCP, func(cfg *cloud.Config, log *logger.Logger) cloud.Service {
		return New(cfg, log)
	})
}

// Probe reports whether the GCP SDK is usable in this process. Overridable
// to model reduced builds; evaluated once per service construction.
var Probe = func() error { return nil }

// Service implements cloud.Service for Google Cloud.
type Service struct {
	cfg       *cloud.Config
	log       *logger.Logger
	available bool
}

// New creates a GCP cloud service bound to the given config.
func New(cfg *cloud.Config, log *logger.Logger) *Service {
	s := &Service{
		cfg: cfg,
		log: log.WithComponent("cloud.gcp"),
	}
	if err := Probe(); err != nil {
		s.log.WithError(err).Warn("gcp sdk unavailable, clients will be absent")
		return s
	}
	s.available = true
	return s
}

// StorageClient returns a GCS client, or nil when GCS storage is not the
// derived storage type.
func (s *Service) StorageClient(ctx context.Context) any {
	if !s.available {
		return nil
	}

	storageCfg := s.cfg.StorageConfig()
	if storageCfg.Type() != cloud.StorageTypeGCS {
		return nil
	}

	client, err := gcs.NewClient(ctx, s.clientOptions()...)
	if err != nil {
		s.log.WithError(err).Warn("failed to construct gcs client")
		return nil
	}
	return client
}

// CacheClient returns a Redis client for the configured Memorystore
// instance, or nil when not configured.
func (s *Service) CacheClient(_ context.Context) any {
	if !s.available {
		return nil
	}

	cacheCfg := s.cfg.CacheConfig()
	if cacheCfg.Type() != cloud.CacheTypeMemorystore {
		return nil
	}
	instance := cacheCfg.String("instance")
	if instance == "" {
		return nil
	}

	return goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%d", instance, memorystorePort),
	})
}

// QueueClient returns a Pub/Sub client, or nil when Pub/Sub is not the
// derived queue type.
func (s *Service) QueueClient(ctx context.Context) any {
	if !s.available {
		return nil
	}

	queueCfg := s.cfg.QueueConfig()
	if queueCfg.Type() != cloud.QueueTypePubSub {
		return nil
	}

	client, err := pubsub.NewClient(ctx, queueCfg.String("project_id"), s.clientOptions()...)
	if err != nil {
		s.log.WithError(err).Warn("failed to construct pubsub client")
		return nil
	}
	return client
}

// clientOptions assembles shared client options: an explicit credentials
// file when configured, ambient default credentials otherwise.
func (s *Service) clientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if view := s.cfg.GCP(); view != nil && view.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(view.CredentialsPath))
	}
	return opts
}

// compile-time check
var _ cloud.Service = (*Service)(nil)
