// Package azure implements the cloud.Service contract for Azure: Blob
// Storage, Azure Cache for Redis (management plane), and Service Bus queues.
package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/redis/armredis/v3"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/kbukum/cloudkit/cloud"
	"github.com/kbukum/cloudkit/logger"
)

func init() {
	cloud.Register(cloud.ProviderAzure, func(cfg *cloud.Config, log *logger.Logger) cloud.Service {
		return New(cfg, log)
	})
}

// Probe reports whether the Azure SDK is usable in this process. Overridable
// to model reduced builds; evaluated once per service construction.
var Probe = func() error { return nil }

// Service implements cloud.Service for Azure.
type Service struct {
	cfg       *cloud.Config
	log       *logger.Logger
	available bool
}

// New creates an Azure cloud service bound to the given config.
func New(cfg *cloud.Config, log *logger.Logger) *Service {
	s := &Service{
		cfg: cfg,
		log: log.WithComponent("cloud.azure"),
	}
	if err := Probe(); err != nil {
		s.log.WithError(err).Warn("azure sdk unavailable, clients will be absent")
		return s
	}
	s.available = true
	return s
}

// view returns the Azure configuration view, or nil when the config block is
// absent or entirely empty. An empty block means "not configured", which
// degrades to absence for every resource kind.
func (s *Service) view() *cloud.AzureView {
	v := s.cfg.Azure()
	if v == nil || v.IsZero() {
		return nil
	}
	return v
}

// StorageClient returns a Blob Storage client built from the configured
// connection string, or nil when not configured.
func (s *Service) StorageClient(_ context.Context) any {
	if !s.available {
		return nil
	}
	view := s.view()
	if view == nil || view.ConnectionString == "" {
		return nil
	}

	client, err := azblob.NewClientFromConnectionString(view.ConnectionString, nil)
	if err != nil {
		s.log.WithError(err).Warn("failed to construct blob storage client")
		return nil
	}
	return client
}

// CacheClient returns a management-plane client for Azure Cache for Redis,
// bound to ambient default credentials, or nil when not configured.
func (s *Service) CacheClient(_ context.Context) any {
	if !s.available {
		return nil
	}
	view := s.view()
	if view == nil || view.SubscriptionID == "" {
		return nil
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		s.log.WithError(err).Warn("failed to acquire default azure credential")
		return nil
	}

	client, err := armredis.NewClient(view.SubscriptionID, cred, nil)
	if err != nil {
		s.log.WithError(err).Warn("failed to construct redis management client")
		return nil
	}
	return client
}

// QueueClient returns a Service Bus client built from the configured
// connection string, or nil when not configured.
func (s *Service) QueueClient(_ context.Context) any {
	if !s.available {
		return nil
	}
	view := s.view()
	if view == nil || view.ConnectionString == "" {
		return nil
	}

	client, err := azservicebus.NewClientFromConnectionString(view.ConnectionString, nil)
	if err != nil {
		s.log.WithError(err).Warn("failed to construct service bus client")
		return nil
	}
	return client
}

// compile-time check
var _ cloud.Service = (*Service)(nil)
