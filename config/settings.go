// Package config provides configuration loading and access for cloudkit.
//
// Settings is the generic accessor consumed by the rest of the module:
// dotted-path lookups with caller-supplied defaults. The Viper-backed
// implementation is the production path; MapSettings serves embedding and
// tests.
package config

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Settings is a generic nested settings accessor. Keys are dotted paths
// (e.g. "cloud.aws.s3.bucket"); def is returned when the key is unset.
type Settings interface {
	Get(key string, def any) any
}

// GetString looks up a string value with a default.
func GetString(s Settings, key, def string) string {
	return cast.ToString(s.Get(key, def))
}

// GetInt looks up an integer value with a default.
func GetInt(s Settings, key string, def int) int {
	v := s.Get(key, def)
	if n, err := cast.ToIntE(v); err == nil {
		return n
	}
	return def
}

// GetBool looks up a boolean value with a default.
func GetBool(s Settings, key string, def bool) bool {
	v := s.Get(key, def)
	if b, err := cast.ToBoolE(v); err == nil {
		return b
	}
	return def
}

// GetStringMap looks up a nested mapping; returns an empty map when unset.
func GetStringMap(s Settings, key string) map[string]any {
	v := s.Get(key, nil)
	if v == nil {
		return map[string]any{}
	}
	if m, err := cast.ToStringMapE(v); err == nil {
		return m
	}
	return map[string]any{}
}

// ViperSettings adapts a viper instance to the Settings interface.
type ViperSettings struct {
	v *viper.Viper
}

// NewViperSettings wraps an existing viper instance.
func NewViperSettings(v *viper.Viper) *ViperSettings {
	return &ViperSettings{v: v}
}

// Get returns the value at key, or def when the key is unset.
func (s *ViperSettings) Get(key string, def any) any {
	if !s.v.IsSet(key) {
		return def
	}
	val := s.v.Get(key)
	if val == nil {
		return def
	}
	return val
}

// Viper returns the underlying viper instance.
func (s *ViperSettings) Viper() *viper.Viper { return s.v }

// MapSettings is a Settings implementation backed by a nested map.
// Lookup walks the map one dotted-path segment at a time.
type MapSettings struct {
	values map[string]any
}

// NewMapSettings creates a MapSettings over the given nested map.
// A nil map is treated as empty.
func NewMapSettings(values map[string]any) *MapSettings {
	if values == nil {
		values = map[string]any{}
	}
	return &MapSettings{values: values}
}

// Get returns the value at key, or def when any path segment is missing.
func (s *MapSettings) Get(key string, def any) any {
	current := any(s.values)
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		current, ok = m[part]
		if !ok {
			return def
		}
	}
	if current == nil {
		return def
	}
	return current
}

// compile-time checks
var (
	_ Settings = (*ViperSettings)(nil)
	_ Settings = (*MapSettings)(nil)
)
