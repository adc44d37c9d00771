// Package aws implements the cloud.Service contract for AWS: S3 object
// storage, ElastiCache (Redis protocol), and SQS queues.
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/cloudkit/cloud"
	"github.com/kbukum/cloudkit/logger"
)

func init() {
	cloud.Register(cloud.ProviderAWS, func(cfg *cloud.Config, log *logger.Logger) cloud.Service {
		return New(cfg, log)
	})
}

// Probe reports whether the AWS SDK is usable in this process. Overridable
// to model reduced builds; evaluated once per service construction.
var Probe = func() error { return nil }

// Service implements cloud.Service for AWS.
type Service struct {
	cfg       *cloud.Config
	log       *logger.Logger
	available bool
}

// New creates an AWS cloud service bound to the given config.
func New(cfg *cloud.Config, log *logger.Logger) *Service {
	s := &Service{
		cfg: cfg,
		log: log.WithComponent("cloud.aws"),
	}
	if err := Probe(); err != nil {
		s.log.WithError(err).Warn("aws sdk unavailable, clients will be absent")
		return s
	}
	s.available = true
	return s
}

// StorageClient returns an S3 client, or nil when AWS storage is not
// configured for this provider.
func (s *Service) StorageClient(ctx context.Context) any {
	if !s.available || s.cfg.AWS() == nil {
		return nil
	}

	storageCfg := s.cfg.StorageConfig()
	if storageCfg.Type() != cloud.StorageTypeS3 {
		return nil
	}

	awsCfg, err := s.loadConfig(ctx, storageCfg.String("region"))
	if err != nil {
		s.log.WithError(err).Warn("failed to load aws config for s3")
		return nil
	}
	return awss3.NewFromConfig(awsCfg)
}

// CacheClient returns a Redis client for the configured ElastiCache
// endpoint, or nil when not configured.
func (s *Service) CacheClient(_ context.Context) any {
	if !s.available {
		return nil
	}

	cacheCfg := s.cfg.CacheConfig()
	if cacheCfg.Type() != cloud.CacheTypeElastiCache {
		return nil
	}
	endpoint := cacheCfg.String("endpoint")
	if endpoint == "" {
		return nil
	}

	return goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%d", endpoint, cacheCfg.Int("port", 6379)),
	})
}

// QueueClient returns an SQS client, or nil when AWS queuing is not
// configured. The queue config's region takes precedence over the
// provider-wide region.
func (s *Service) QueueClient(ctx context.Context) any {
	if !s.available {
		return nil
	}
	view := s.cfg.AWS()
	if view == nil {
		return nil
	}

	queueCfg := s.cfg.QueueConfig()
	if queueCfg.Type() != cloud.QueueTypeSQS {
		return nil
	}

	region := queueCfg.String("region")
	if region == "" {
		region = view.Region
	}

	awsCfg, err := s.loadConfig(ctx, region)
	if err != nil {
		s.log.WithError(err).Warn("failed to load aws config for sqs")
		return nil
	}
	return awssqs.NewFromConfig(awsCfg)
}

// loadConfig assembles the shared SDK configuration for storage and queue
// clients: region plus an optional named credential profile. SkipProfile
// suppresses the profile explicitly (e.g. in CI where no shared config
// exists).
func (s *Service) loadConfig(ctx context.Context, region string) (awssdk.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if view := s.cfg.AWS(); view != nil && view.Profile != "" && !view.SkipProfile {
		opts = append(opts, awsconfig.WithSharedConfigProfile(view.Profile))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// compile-time check
var _ cloud.Service = (*Service)(nil)
