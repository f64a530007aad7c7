// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for the webjars locator.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"webjars-locator/internal/config"
	"webjars-locator/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose diagnostic output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// baseDirs overrides the configured resource roots
	baseDirs []string
	// urlPrefix overrides the configured local URL prefix
	urlPrefix string
	// cdnPrefix overrides the configured CDN prefix
	cdnPrefix string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "webjars",
		Short: "RequireJS configuration generator for webjars",
		Long: TitleStyle.Render("webjars") + SubtitleStyle.Render(" - RequireJS configuration generator for webjars") + `

webjars scans one or more resource roots for installed webjars
(front-end packages repackaged with classpath-style metadata),
normalizes each package's loader metadata - npm package.json,
bower.json, or the legacy pom.xml-embedded config - into one
canonical RequireJS configuration, and rewrites every path for
the configured CDN and local URL prefixes.

` + SubtitleStyle.Render("Examples:") + `
  webjars list                       List discovered webjars and their formats
  webjars json                       Print the loader config as JSON
  webjars js                         Print the embeddable setup script
  webjars js --cdn https://cdn.example.com/webjars/
  webjars json --base-dir ./build/resources`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/webjars/config.yaml)")
	rootCmd.PersistentFlags().StringArrayVar(&baseDirs, "base-dir", nil, "resource root to scan (repeatable, overrides config)")
	rootCmd.PersistentFlags().StringVar(&urlPrefix, "prefix", "", "local URL prefix for rewritten paths")
	rootCmd.PersistentFlags().StringVar(&cdnPrefix, "cdn", "", "CDN prefix tried before the local prefix")

	rootCmd.AddCommand(jsonCmd)
	rootCmd.AddCommand(jsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if len(baseDirs) > 0 {
		cfg.BaseDirs = baseDirs
	}
	if urlPrefix != "" {
		cfg.URLPrefix = urlPrefix
	}
	if cdnPrefix != "" {
		cfg.CDNPrefix = cdnPrefix
	}
	return cfg, cfg.Validate()
}

// formatErrorForDisplay formats an error for user display. ActionableError
// values render their suggestions; verbose mode shows the error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
