// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// jsonCmd prints the resolved loader configuration as a JSON object
	// keyed by package id.
	jsonCmd = &cobra.Command{
		Use:   "json",
		Short: "Print the RequireJS config for all webjars as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return displayError(err)
			}

			engine := newEngine(cfg)
			out, err := engine.SetupJSON(cfg.Chain())
			if err != nil {
				return displayError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	// jsCmd prints the embeddable setup script: version listing, loader
	// shims, one config statement per resolved webjar, and the raw
	// legacy blocks.
	jsCmd = &cobra.Command{
		Use:   "js",
		Short: "Print the embeddable RequireJS setup script",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return displayError(err)
			}

			engine := newEngine(cfg)
			script, err := engine.SetupScript(cfg.Chain())
			if err != nil {
				return displayError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), script)
			return nil
		},
	}
)

// displayError rewraps an error with its user-facing formatting
// (suggestions, and in verbose mode the error chain) so the CLI runner
// renders the full message.
func displayError(err error) error {
	return errors.New(formatErrorForDisplay(err, verbose))
}
