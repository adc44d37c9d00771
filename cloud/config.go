package cloud

import (
	"github.com/kbukum/cloudkit/config"
)

// Default configuration values.
const (
	// DefaultRegion is used when cloud.region is unset.
	DefaultRegion = "us-east-1"

	// DefaultHetznerDatacenter is the fallback Hetzner datacenter.
	DefaultHetznerDatacenter = "fsn1"
)

// Config is the resolved cloud configuration root. It is constructed once
// per settings load by Resolve and is immutable afterwards, so it is safe to
// share across concurrent callers without synchronization. Re-reading
// settings requires a new Resolve call.
type Config struct {
	provider  Provider
	region    string
	projectID string
	tenantID  string
	custom    map[string]any
	settings  config.Settings
}

// Resolve projects a generic settings source into a cloud Config.
// An unrecognized cloud.provider value is a configuration error and fails
// fast; every downstream path is designed to degrade instead of failing.
func Resolve(s config.Settings) (*Config, error) {
	provider, err := ParseProvider(config.GetString(s, "cloud.provider", ""))
	if err != nil {
		return nil, err
	}

	return &Config{
		provider:  provider,
		region:    config.GetString(s, "cloud.region", DefaultRegion),
		projectID: config.GetString(s, "cloud.project_id", ""),
		tenantID:  config.GetString(s, "cloud.tenant_id", ""),
		custom:    config.GetStringMap(s, "cloud.custom"),
		settings:  s,
	}, nil
}

// Provider returns the active provider identifier.
func (c *Config) Provider() Provider { return c.provider }

// Region returns the configured region.
func (c *Config) Region() string { return c.region }

// ProjectID returns the project identifier, meaningful for GCP and Hetzner.
func (c *Config) ProjectID() string { return c.projectID }

// TenantID returns the tenant identifier, meaningful for Azure.
func (c *Config) TenantID() string { return c.tenantID }

// IsCloud reports whether a managed cloud backend is active. Local and
// custom both count as "no managed backend" here: custom brings its own
// client wiring.
func (c *Config) IsCloud() bool {
	return c.provider != ProviderLocal && c.provider != ProviderCustom
}

// --- Provider configuration views ---
//
// Each accessor returns a populated view only when the active provider
// matches; otherwise nil. Views are never partially populated for a
// non-active provider.

// AWSView is the AWS-specific configuration view.
type AWSView struct {
	Region  string
	Profile string
	RoleARN string

	// SkipProfile suppresses passing the named credential profile to the
	// SDK. It replaces ambient test-framework detection with an explicit
	// configuration flag (cloud.aws.skip_profile).
	SkipProfile bool
}

// AWS returns the AWS configuration view, or nil when AWS is not active.
func (c *Config) AWS() *AWSView {
	if c.provider != ProviderAWS {
		return nil
	}
	return &AWSView{
		Region:      c.region,
		Profile:     config.GetString(c.settings, "cloud.aws.profile", ""),
		RoleARN:     config.GetString(c.settings, "cloud.aws.role_arn", ""),
		SkipProfile: config.GetBool(c.settings, "cloud.aws.skip_profile", false),
	}
}

// GCPView is the GCP-specific configuration view.
type GCPView struct {
	ProjectID       string
	Region          string
	CredentialsPath string
}

// GCP returns the GCP configuration view, or nil when GCP is not active.
func (c *Config) GCP() *GCPView {
	if c.provider != ProviderGCP {
		return nil
	}
	return &GCPView{
		ProjectID:       c.projectID,
		Region:          c.region,
		CredentialsPath: config.GetString(c.settings, "cloud.gcp.credentials_path", ""),
	}
}

// AzureView is the Azure-specific configuration view.
type AzureView struct {
	TenantID         string
	SubscriptionID   string
	ResourceGroup    string
	ConnectionString string
}

// IsZero reports whether the view carries no Azure settings at all.
func (v *AzureView) IsZero() bool {
	return v.TenantID == "" && v.SubscriptionID == "" && v.ResourceGroup == "" && v.ConnectionString == ""
}

// Azure returns the Azure configuration view, or nil when Azure is not active.
func (c *Config) Azure() *AzureView {
	if c.provider != ProviderAzure {
		return nil
	}
	return &AzureView{
		TenantID:         c.tenantID,
		SubscriptionID:   config.GetString(c.settings, "cloud.azure.subscription_id", ""),
		ResourceGroup:    config.GetString(c.settings, "cloud.azure.resource_group", ""),
		ConnectionString: config.GetString(c.settings, "cloud.azure.connection_string", ""),
	}
}

// HetznerView is the Hetzner-specific configuration view.
type HetznerView struct {
	APIToken   string
	Datacenter string
	ProjectID  string
}

// Hetzner returns the Hetzner configuration view, or nil when Hetzner is not
// active.
func (c *Config) Hetzner() *HetznerView {
	if c.provider != ProviderHetzner {
		return nil
	}
	return &HetznerView{
		APIToken:   config.GetString(c.settings, "cloud.hetzner.api_token", ""),
		Datacenter: config.GetString(c.settings, "cloud.hetzner.datacenter", DefaultHetznerDatacenter),
		ProjectID:  config.GetString(c.settings, "cloud.hetzner.project_id", ""),
	}
}

// CustomProvider returns the free-form custom provider configuration, or nil
// when the custom provider is not active. The mapping's shape is
// caller-defined; provider code treats it as opaque beyond the recognized
// storage/cache/queue sections and *_client_factory keys.
func (c *Config) CustomProvider() map[string]any {
	if c.provider != ProviderCustom {
		return nil
	}
	return c.custom
}
