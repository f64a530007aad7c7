// SPDX-License-Identifier: MPL-2.0

// Package config loads the locator configuration: the resource roots to
// scan for webjars and the URL prefixes used when rewriting paths.
// Precedence is defaults, then the config file, then WEBJARS_* environment
// variables, then CLI flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"webjars-locator/internal/issue"
	"webjars-locator/pkg/webjar"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "webjars"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"

	// DefaultURLPrefix is the canonical local prefix webjars are served
	// under when nothing else is configured.
	DefaultURLPrefix = "/webjars/"
)

// ErrNoBaseDirs is returned when a configuration names no resource roots.
var ErrNoBaseDirs = errors.New("no base directories configured")

// Config is the effective locator configuration.
type Config struct {
	// BaseDirs are the resource roots scanned for installed webjars, in
	// precedence order (the classpath analogue).
	BaseDirs []string `mapstructure:"base_dirs"`
	// URLPrefix is the canonical local URL prefix, trailing slash included.
	URLPrefix string `mapstructure:"url_prefix"`
	// CDNPrefix is an optional CDN prefix tried before URLPrefix.
	CDNPrefix string `mapstructure:"cdn_prefix"`
	// IncludeVersion controls whether rewritten paths carry the version
	// segment.
	IncludeVersion bool `mapstructure:"include_version"`
}

// DefaultConfig returns the built-in defaults: serve from ./webjars
// content roots under /webjars/ with versioned paths and no CDN.
func DefaultConfig() *Config {
	return &Config{
		BaseDirs:       []string{"."},
		URLPrefix:      DefaultURLPrefix,
		CDNPrefix:      "",
		IncludeVersion: true,
	}
}

// ConfigDir returns the configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration. An explicit path is used exclusively;
// otherwise the platform config directory is searched and a missing file
// falls back to defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("base_dirs", defaults.BaseDirs)
	v.SetDefault("url_prefix", defaults.URLPrefix)
	v.SetDefault("cdn_prefix", defaults.CDNPrefix)
	v.SetDefault("include_version", defaults.IncludeVersion)

	v.SetEnvPrefix("WEBJARS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file is valid YAML").
				Wrap(err).
				BuildError()
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, issue.WrapWithOperation(err, "load configuration")
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for usability.
func (c *Config) Validate() error {
	if len(c.BaseDirs) == 0 {
		return issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Set base_dirs to at least one directory containing webjar content").
			Wrap(ErrNoBaseDirs).
			BuildError()
	}
	return nil
}

// Chain builds the prefix chain for this configuration: the CDN prefix
// first when configured, then the canonical local prefix. The
// IncludeVersion flag applies to every generated prefix.
func (c *Config) Chain() webjar.PrefixChain {
	var chain webjar.PrefixChain
	if c.CDNPrefix != "" {
		chain = append(chain, webjar.Prefix{Location: c.CDNPrefix, IncludeVersion: c.IncludeVersion})
	}
	chain = append(chain, webjar.Prefix{Location: c.URLPrefix, IncludeVersion: c.IncludeVersion})
	return chain
}
