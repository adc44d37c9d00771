// Package custom implements the cloud.Service contract for fully
// user-defined infrastructure. Each resource kind first honors a
// caller-supplied factory function from the custom configuration; without
// one, a small set of well-known open-source clients is constructed by type
// (S3-compatible object storage via MinIO, Redis, RabbitMQ).
package custom

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	amqp "github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/cloudkit/cloud"
	"github.com/kbukum/cloudkit/logger"
)

func init() {
	cloud.Register(cloud.ProviderCustom, func(cfg *cloud.Config, log *logger.Logger) cloud.Service {
		return New(cfg, log)
	})
}

// Probe reports whether the bundled open-source clients are usable in this
// process. Overridable to model reduced builds; evaluated once per service
// construction. Caller-supplied factories are honored regardless.
var Probe = func() error { return nil }

// Service implements cloud.Service for the custom provider.
type Service struct {
	cfg       *cloud.Config
	log       *logger.Logger
	available bool
}

// New creates a custom cloud service bound to the given config.
func New(cfg *cloud.Config, log *logger.Logger) *Service {
	s := &Service{
		cfg: cfg,
		log: log.WithComponent("cloud.custom"),
	}
	if err := Probe(); err != nil {
		s.log.WithError(err).Warn("bundled clients unavailable, falling back to factories only")
		return s
	}
	s.available = true
	return s
}

// StorageClient returns a storage client from the caller's factory or, by
// type, a MinIO client for S3-compatible endpoints. nil when unconfigured.
func (s *Service) StorageClient(_ context.Context) any {
	storageCfg := s.cfg.StorageConfig()
	if f := s.clientFactory(cloud.KeyStorageClientFactory); f != nil {
		return f(storageCfg)
	}
	if !s.available || len(storageCfg) == 0 {
		return nil
	}

	switch storageCfg.Type() {
	case cloud.StorageTypeS3, cloud.StorageTypeMinio:
		client, err := minio.New(stringOr(storageCfg, "endpoint", "localhost:9000"), &minio.Options{
			Creds: credentials.NewStaticV4(
				stringOr(storageCfg, "access_key", "minioadmin"),
				stringOr(storageCfg, "secret_key", "minioadmin"),
				"",
			),
			Secure: storageCfg.Bool("secure", false),
		})
		if err != nil {
			s.log.WithError(err).Warn("failed to construct minio client")
			return nil
		}
		return client
	}
	return nil
}

// CacheClient returns a cache client from the caller's factory or, by type,
// a Redis client. nil when unconfigured.
func (s *Service) CacheClient(_ context.Context) any {
	cacheCfg := s.cfg.CacheConfig()
	if f := s.clientFactory(cloud.KeyCacheClientFactory); f != nil {
		return f(cacheCfg)
	}
	if !s.available || len(cacheCfg) == 0 {
		return nil
	}

	switch cacheCfg.Type() {
	case cloud.CacheTypeRedis:
		return goredis.NewClient(&goredis.Options{
			Addr:     fmt.Sprintf("%s:%d", stringOr(cacheCfg, "host", "localhost"), cacheCfg.Int("port", 6379)),
			DB:       cacheCfg.Int("db", 0),
			Password: cacheCfg.String("password"),
		})
	}
	return nil
}

// QueueClient returns a queue client from the caller's factory or, by type,
// an open RabbitMQ channel. nil when unconfigured or unreachable.
func (s *Service) QueueClient(_ context.Context) any {
	queueCfg := s.cfg.QueueConfig()
	if f := s.clientFactory(cloud.KeyQueueClientFactory); f != nil {
		return f(queueCfg)
	}
	if !s.available || len(queueCfg) == 0 {
		return nil
	}

	switch queueCfg.Type() {
	case cloud.QueueTypeRabbitMQ:
		uri := amqp.URI{
			Scheme:   "amqp",
			Host:     stringOr(queueCfg, "host", "localhost"),
			Port:     queueCfg.Int("port", 5672),
			Username: stringOr(queueCfg, "username", "guest"),
			Password: stringOr(queueCfg, "password", "guest"),
			Vhost:    stringOr(queueCfg, "vhost", "/"),
		}
		conn, err := amqp.Dial(uri.String())
		if err != nil {
			s.log.WithError(err).Warn("failed to connect to rabbitmq")
			return nil
		}
		ch, err := conn.Channel()
		if err != nil {
			s.log.WithError(err).Warn("failed to open rabbitmq channel")
			_ = conn.Close()
			return nil
		}
		return ch
	}
	return nil
}

// clientFactory looks up a caller-supplied constructor override in the
// custom configuration. The override, when present, receives exactly the
// derived resource-kind configuration and its result is returned verbatim.
func (s *Service) clientFactory(key string) cloud.ClientFactory {
	custom := s.cfg.CustomProvider()
	if custom == nil {
		return nil
	}
	switch f := custom[key].(type) {
	case cloud.ClientFactory:
		return f
	case func(map[string]any) any:
		return f
	}
	return nil
}

func stringOr(rc cloud.ResourceConfig, key, def string) string {
	if v := rc.String(key); v != "" {
		return v
	}
	return def
}

// compile-time check
var _ cloud.Service = (*Service)(nil)
