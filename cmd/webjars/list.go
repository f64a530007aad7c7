// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd prints the discovered webjars with their versions, descriptor
// formats, and resolution state for the effective prefix chain.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered webjars and their descriptor formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return displayError(err)
		}

		engine := newEngine(cfg)
		agg, err := engine.Setup(cfg.Chain())
		if err != nil {
			return displayError(err)
		}

		out := cmd.OutOrStdout()
		if len(agg.Outcomes) == 0 {
			fmt.Fprintln(out, SubtitleStyle.Render("No webjars found."))
			return nil
		}

		fmt.Fprintln(out, TitleStyle.Render("Installed webjars"))
		for _, outcome := range agg.Outcomes {
			format := "unknown"
			if f, ok := engine.Classify(outcome.Ref.ID); ok {
				format = f.String()
			}

			state := SuccessStyle.Render("resolved")
			switch {
			case outcome.Config == nil && outcome.LegacyScript != "":
				state = WarningStyle.Render("legacy script")
			case outcome.Config == nil:
				state = ErrorStyle.Render("unresolved")
			}

			fmt.Fprintf(out, "  %s %s  %s  %s\n",
				CmdStyle.Render(outcome.Ref.ID),
				outcome.Ref.Version,
				SubtitleStyle.Render(format),
				state)
		}

		if verbose {
			for _, d := range agg.Diagnostics {
				fmt.Fprintf(out, "  %s %s: %s\n",
					WarningStyle.Render(string(d.Code)), d.Package.ID, d.Message)
			}
		}
		return nil
	},
}
