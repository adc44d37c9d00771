package cloud

import (
	"fmt"
	"strings"

	"github.com/kbukum/cloudkit/errors"
)

// Provider identifies a supported infrastructure backend.
type Provider string

// Supported providers.
const (
	ProviderAWS     Provider = "aws"
	ProviderGCP     Provider = "gcp"
	ProviderAzure   Provider = "azure"
	ProviderHetzner Provider = "hetzner"
	ProviderCustom  Provider = "custom"
	ProviderLocal   Provider = "local"
)

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderAWS, ProviderGCP, ProviderAzure, ProviderHetzner, ProviderCustom, ProviderLocal:
		return true
	}
	return false
}

// ParseProvider parses a provider identifier. The empty string defaults to
// local; anything else unrecognized is a configuration error.
func ParseProvider(s string) (Provider, error) {
	if s == "" {
		return ProviderLocal, nil
	}
	p := Provider(strings.ToLower(s))
	if !p.Valid() {
		return "", errors.InvalidInput(fmt.Sprintf("unknown cloud provider %q", s)).
			WithDetail("provider", s)
	}
	return p, nil
}
