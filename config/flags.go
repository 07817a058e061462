package config

import (
	"github.com/spf13/pflag"
)

const (
	FlagConfig   = "config"
	FlagAPIKey   = "api-key"
	FlagBaseURL  = "base-url"
	FlagLogLevel = "log-level"
	FlagTimeout  = "timeout"
)

// BindFlags registers the flags that can override the file and environment layers.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "path to a yaml config file (env DBOT_CONFIG)")
	fs.String(FlagAPIKey, "", "trading API key (env DBOT_API_KEY)")
	fs.String(FlagBaseURL, "", "trading API base URL (env DBOT_BASE_URL)")
	fs.String(FlagLogLevel, "", "log level: trace, debug, info, warn, error (env DBOT_LOG_LEVEL)")
	fs.Duration(FlagTimeout, 0, "per-request HTTP timeout (env DBOT_TIMEOUT)")
}

// ApplyFlags copies every explicitly set flag onto c.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) {
	if fs.Changed(FlagAPIKey) {
		c.API.Key, _ = fs.GetString(FlagAPIKey)
	}
	if fs.Changed(FlagBaseURL) {
		c.API.BaseURL, _ = fs.GetString(FlagBaseURL)
	}
	if fs.Changed(FlagLogLevel) {
		c.Log.Level, _ = fs.GetString(FlagLogLevel)
	}
	if fs.Changed(FlagTimeout) {
		c.API.Timeout, _ = fs.GetDuration(FlagTimeout)
	}
}

// FromFlags loads the config named by the flag set and applies the flag layer.
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	path, _ := fs.GetString(FlagConfig)
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyFlags(fs)
	return cfg, nil
}
