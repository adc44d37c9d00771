package cloud

import (
	"github.com/spf13/cast"

	"github.com/kbukum/cloudkit/config"
)

// Resource-kind type discriminators. Every derived resource configuration
// carries one under the "type" key.
const (
	TypeLocal = "local"

	StorageTypeS3      = "s3"
	StorageTypeGCS     = "gcs"
	StorageTypeAzure   = "azure"
	StorageTypeHetzner = "hetzner"
	StorageTypeMinio   = "minio"

	CacheTypeElastiCache = "elasticache"
	CacheTypeMemorystore = "memorystore"
	CacheTypeAzure       = "cache"
	CacheTypeRedis       = "redis"

	QueueTypeSQS        = "sqs"
	QueueTypePubSub     = "pubsub"
	QueueTypeServiceBus = "servicebus"
	QueueTypeRabbitMQ   = "rabbitmq"
)

// Custom provider factory override keys. When the custom configuration maps
// one of these to a ClientFactory, it fully replaces the built-in client
// construction for that resource kind.
const (
	KeyStorageClientFactory = "storage_client_factory"
	KeyCacheClientFactory   = "cache_client_factory"
	KeyQueueClientFactory   = "queue_client_factory"
)

// ResourceConfig is a derived, resource-kind configuration: an untyped
// key/value mapping with a "type" discriminator plus provider-specific
// fields repackaged under kind-neutral names.
type ResourceConfig map[string]any

// Type returns the type discriminator.
func (rc ResourceConfig) Type() string { return rc.String("type") }

// String returns the value at key as a string, or "" when absent.
func (rc ResourceConfig) String(key string) string {
	if v, ok := rc[key]; ok {
		return cast.ToString(v)
	}
	return ""
}

// Int returns the value at key as an int, or def when absent or unparseable.
func (rc ResourceConfig) Int(key string, def int) int {
	v, ok := rc[key]
	if !ok {
		return def
	}
	if n, err := cast.ToIntE(v); err == nil {
		return n
	}
	return def
}

// Bool returns the value at key as a bool, or def when absent.
func (rc ResourceConfig) Bool(key string, def bool) bool {
	v, ok := rc[key]
	if !ok {
		return def
	}
	if b, err := cast.ToBoolE(v); err == nil {
		return b
	}
	return def
}

// localConfig is the short-circuit result for non-cloud providers.
func localConfig() ResourceConfig {
	return ResourceConfig{"type": TypeLocal}
}

// customSection returns the named sub-mapping of the custom configuration
// verbatim. The custom provider's shape is caller-defined, so no field
// renaming happens here.
func (c *Config) customSection(name string) ResourceConfig {
	v, ok := c.custom[name]
	if !ok {
		return ResourceConfig{}
	}
	if m, err := cast.ToStringMapE(v); err == nil {
		return ResourceConfig(m)
	}
	return ResourceConfig{}
}

// StorageConfig derives the object-storage configuration for the active
// provider. Derivation is pure: two calls with unchanged settings yield
// structurally equal results, and nothing is cached.
func (c *Config) StorageConfig() ResourceConfig {
	if !c.IsCloud() && c.provider != ProviderCustom {
		return localConfig()
	}

	switch c.provider {
	case ProviderAWS:
		return ResourceConfig{
			"type":   StorageTypeS3,
			"bucket": config.GetString(c.settings, "cloud.aws.s3.bucket", ""),
			"region": c.region,
		}
	case ProviderGCP:
		return ResourceConfig{
			"type":       StorageTypeGCS,
			"bucket":     config.GetString(c.settings, "cloud.gcp.storage.bucket", ""),
			"project_id": c.projectID,
		}
	case ProviderAzure:
		return ResourceConfig{
			"type":         StorageTypeAzure,
			"container":    config.GetString(c.settings, "cloud.azure.storage.container", ""),
			"account_name": config.GetString(c.settings, "cloud.azure.storage.account_name", ""),
		}
	case ProviderHetzner:
		return ResourceConfig{
			"type":        StorageTypeHetzner,
			"storage_box": config.GetString(c.settings, "cloud.hetzner.storage.box_id", ""),
			"datacenter":  config.GetString(c.settings, "cloud.hetzner.datacenter", DefaultHetznerDatacenter),
			"subdomain":   config.GetString(c.settings, "cloud.hetzner.storage.subdomain", ""),
		}
	case ProviderCustom:
		return c.customSection("storage")
	}
	return localConfig()
}

// CacheConfig derives the key-value cache configuration for the active
// provider.
func (c *Config) CacheConfig() ResourceConfig {
	if !c.IsCloud() && c.provider != ProviderCustom {
		return localConfig()
	}

	switch c.provider {
	case ProviderAWS:
		return ResourceConfig{
			"type":     CacheTypeElastiCache,
			"endpoint": config.GetString(c.settings, "cloud.aws.elasticache.endpoint", ""),
			"port":     config.GetInt(c.settings, "cloud.aws.elasticache.port", 6379),
		}
	case ProviderGCP:
		return ResourceConfig{
			"type":     CacheTypeMemorystore,
			"instance": config.GetString(c.settings, "cloud.gcp.memorystore.instance", ""),
			"region":   c.region,
		}
	case ProviderAzure:
		return ResourceConfig{
			"type":           CacheTypeAzure,
			"name":           config.GetString(c.settings, "cloud.azure.cache.name", ""),
			"resource_group": config.GetString(c.settings, "cloud.azure.resource_group", ""),
		}
	case ProviderHetzner:
		// Hetzner has no managed Redis; this shape targets a self-hosted
		// instance on Hetzner Cloud.
		return ResourceConfig{
			"type":     CacheTypeRedis,
			"host":     config.GetString(c.settings, "cloud.hetzner.cache.host", ""),
			"port":     config.GetInt(c.settings, "cloud.hetzner.cache.port", 6379),
			"password": config.GetString(c.settings, "cloud.hetzner.cache.password", ""),
		}
	case ProviderCustom:
		return c.customSection("cache")
	}
	return localConfig()
}

// QueueConfig derives the message-queue configuration for the active
// provider.
func (c *Config) QueueConfig() ResourceConfig {
	if !c.IsCloud() && c.provider != ProviderCustom {
		return localConfig()
	}

	switch c.provider {
	case ProviderAWS:
		return ResourceConfig{
			"type":      QueueTypeSQS,
			"queue_url": config.GetString(c.settings, "cloud.aws.sqs.queue_url", ""),
			"region":    c.region,
		}
	case ProviderGCP:
		return ResourceConfig{
			"type":         QueueTypePubSub,
			"topic":        config.GetString(c.settings, "cloud.gcp.pubsub.topic", ""),
			"subscription": config.GetString(c.settings, "cloud.gcp.pubsub.subscription", ""),
			"project_id":   c.projectID,
		}
	case ProviderAzure:
		return ResourceConfig{
			"type":      QueueTypeServiceBus,
			"namespace": config.GetString(c.settings, "cloud.azure.servicebus.namespace", ""),
			"queue":     config.GetString(c.settings, "cloud.azure.servicebus.queue", ""),
		}
	case ProviderHetzner:
		// Hetzner has no managed message queue; this shape targets a
		// self-hosted RabbitMQ on Hetzner Cloud.
		return ResourceConfig{
			"type":     QueueTypeRabbitMQ,
			"host":     config.GetString(c.settings, "cloud.hetzner.queue.host", ""),
			"port":     config.GetInt(c.settings, "cloud.hetzner.queue.port", 5672),
			"username": config.GetString(c.settings, "cloud.hetzner.queue.username", "guest"),
			"password": config.GetString(c.settings, "cloud.hetzner.queue.password", "guest"),
			"vhost":    config.GetString(c.settings, "cloud.hetzner.queue.vhost", "/"),
		}
	case ProviderCustom:
		return c.customSection("queue")
	}
	return localConfig()
}
