// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// configCmd groups configuration-related subcommands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage locator configuration",
	}

	// configShowCmd prints the effective configuration after defaults,
	// config file, environment, and flag overrides are applied.
	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return displayError(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, TitleStyle.Render("Effective configuration"))
			fmt.Fprintf(out, "  base_dirs:       %s\n", strings.Join(cfg.BaseDirs, ", "))
			fmt.Fprintf(out, "  url_prefix:      %s\n", cfg.URLPrefix)
			if cfg.CDNPrefix != "" {
				fmt.Fprintf(out, "  cdn_prefix:      %s\n", cfg.CDNPrefix)
			}
			fmt.Fprintf(out, "  include_version: %t\n", cfg.IncludeVersion)
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
}
