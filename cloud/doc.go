// Package cloud provides a uniform facade over storage, cache, and queue
// services across infrastructure providers, driven entirely by declarative
// configuration.
//
// A generic settings source is resolved into an immutable Config, a Service
// is constructed for the active provider, and callers obtain opaque native
// client handles through the three-method Service interface. A nil handle
// uniformly means "no client available" (not configured, not supported by
// the provider, or SDK unavailable); callers never branch on provider
// identity.
//
// Provider implementations live in subpackages and register themselves at
// import time:
//
//	import (
//	    "github.com/kbukum/cloudkit/cloud"
//	    _ "github.com/kbukum/cloudkit/cloud/all" // register every provider
//	)
//
//	settings, _ := config.Load("my-service")
//	cfg, err := cloud.Resolve(settings)
//	if err != nil { ... }
//	svc := cloud.NewService(cfg, log)
//	if s3 := svc.StorageClient(ctx); s3 != nil { ... }
//
// Unknown providers fail fast at Resolve; NewService never fails and falls
// back to the dependency-free local service.
package cloud
