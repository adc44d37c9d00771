// Package hetzner implements the cloud.Service contract for Hetzner Cloud.
//
// Hetzner offers competitively priced European datacenters, but only object
// storage (Storage Box) has a managed API surface here: the storage client
// is an authenticated HTTP client carrying the API bearer token. Hetzner
// provides no managed cache or queue service, so those accessors always
// return nil. That is a real capability gap in the provider, not an
// implementation gap.
package hetzner

import (
	"context"

	"github.com/kbukum/cloudkit/cloud"
	"github.com/kbukum/cloudkit/httpclient"
	"github.com/kbukum/cloudkit/logger"
)

// apiBaseURL is the Hetzner Cloud API endpoint.
const apiBaseURL = "https://api.hetzner.cloud/v1"

func init() {
	cloud.Register(cloud.ProviderHetzner, func(cfg *cloud.Config, log *logger.Logger) cloud.Service {
		return New(cfg, log)
	})
}

// Probe reports whether the Hetzner client stack is usable in this process.
// Overridable to model reduced builds; evaluated once per service
// construction.
var Probe = func() error { return nil }

// Service implements cloud.Service for Hetzner Cloud.
type Service struct {
	cfg       *cloud.Config
	log       *logger.Logger
	available bool

	apiToken   string
	datacenter string
}

// New creates a Hetzner cloud service bound to the given config.
func New(cfg *cloud.Config, log *logger.Logger) *Service {
	s := &Service{
		cfg: cfg,
		log: log.WithComponent("cloud.hetzner"),
	}
	if view := cfg.Hetzner(); view != nil {
		s.apiToken = view.APIToken
		s.datacenter = view.Datacenter
	}
	if err := Probe(); err != nil {
		s.log.WithError(err).Warn("hetzner client unavailable, clients will be absent")
		return s
	}
	s.available = true
	return s
}

// Datacenter returns the configured datacenter.
func (s *Service) Datacenter() string { return s.datacenter }

// StorageClient returns an authenticated HTTP client for Storage Box
// operations, or nil when no API token is configured.
func (s *Service) StorageClient(_ context.Context) any {
	if !s.available || s.apiToken == "" {
		return nil
	}

	client, err := httpclient.New(httpclient.Config{
		BaseURL: apiBaseURL,
		Headers: map[string]string{"Content-Type": "application/json"},
		Auth:    &httpclient.AuthConfig{Type: httpclient.AuthBearer, Token: s.apiToken},
	})
	if err != nil {
		s.log.WithError(err).Warn("failed to construct storage box client")
		return nil
	}
	return client
}

// CacheClient always returns nil: Hetzner has no managed Redis service.
func (s *Service) CacheClient(_ context.Context) any {
	return nil
}

// QueueClient always returns nil: Hetzner has no managed message queue.
func (s *Service) QueueClient(_ context.Context) any {
	return nil
}

// compile-time check
var _ cloud.Service = (*Service)(nil)
