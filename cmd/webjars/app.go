// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"webjars-locator/internal/config"
	"webjars-locator/internal/registry"
	"webjars-locator/internal/requirejs"
	"webjars-locator/internal/resource"

	"github.com/charmbracelet/log"
)

// newEngine is the composition root for the CLI layer: it assembles the
// resource store chain, the package registry, and the resolution engine
// from the effective configuration.
func newEngine(cfg *config.Config) *requirejs.Engine {
	store := make(resource.Chain, 0, len(cfg.BaseDirs))
	for _, dir := range cfg.BaseDirs {
		store = append(store, resource.NewDir(dir))
	}

	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "webjars",
	})

	return requirejs.New(store, registry.New(store), logger)
}
