package httpclient

import (
	"fmt"
	"net/http"
)

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthBearer uses Bearer token authentication.
	AuthBearer
	// AuthBasic uses HTTP Basic authentication.
	AuthBasic
	// AuthAPIKey uses API key authentication via a request header.
	AuthAPIKey
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Type is the authentication method.
	Type AuthType
	// Token is the bearer token (AuthBearer).
	Token string
	// Username is the basic auth username (AuthBasic).
	Username string
	// Password is the basic auth password (AuthBasic).
	Password string
	// Key is the API key value (AuthAPIKey).
	Key string
	// Name is the header name (AuthAPIKey). Defaults to "X-API-Key".
	Name string
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (a *AuthConfig) ApplyDefaults() {
	if a.Type == AuthAPIKey && a.Name == "" {
		a.Name = "X-API-Key"
	}
}

// Validate checks that the configuration matches the selected auth type.
func (a *AuthConfig) Validate() error {
	switch a.Type {
	case AuthNone:
		return nil
	case AuthBearer:
		if a.Token == "" {
			return fmt.Errorf("httpclient: bearer auth requires a token")
		}
	case AuthBasic:
		if a.Username == "" {
			return fmt.Errorf("httpclient: basic auth requires a username")
		}
	case AuthAPIKey:
		if a.Key == "" {
			return fmt.Errorf("httpclient: api key auth requires a key")
		}
	default:
		return fmt.Errorf("httpclient: unknown auth type %d", a.Type)
	}
	return nil
}

// apply sets authentication on the request.
func (a *AuthConfig) apply(req *http.Request) {
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthBasic:
		req.SetBasicAuth(a.Username, a.Password)
	case AuthAPIKey:
		req.Header.Set(a.Name, a.Key)
	}
}
