// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config resolves the pipeline CLI's ambient knobs — things
// that are never part of the mandatory positional CLI contract
// (spec.md §6) but still need a layered, documented resolution order.
// The pattern (env-prefixed viper.AutomaticEnv over hard-coded defaults)
// is scaled down from
// _examples/portalco-dir/server/config/config.go's DefaultEnvPrefix
// convention.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable this package
// binds, so PIPELINE_LOG_LEVEL resolves the LogLevel key below.
const EnvPrefix = "PIPELINE"

const (
	keyLogLevel          = "log_level"
	keyDefaultCapacity   = "default_capacity"
	defaultLogLevel      = "info"
	defaultCapacityUnset = 0
)

// Config holds the resolved ambient knobs.
type Config struct {
	// LogLevel is the Observability logger's minimum level:
	// "debug", "info", "warn", or "error".
	LogLevel string

	// DefaultCapacity is a fallback queue capacity for programmatic
	// embedding of the orchestrator (callers that do not go through
	// the CLI's mandatory queue_size argument). Zero means unset; the
	// CLI itself never consults this value, since its queue_size
	// argument is always required (spec.md §6).
	DefaultCapacity int
}

// Load resolves Config from the environment, falling back to
// defaults. Explicit constructor/CLI arguments elsewhere in this
// program always take precedence over anything Load returns.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyDefaultCapacity, defaultCapacityUnset)

	return Config{
		LogLevel:        v.GetString(keyLogLevel),
		DefaultCapacity: v.GetInt(keyDefaultCapacity),
	}
}
