package main

import (
	"encoding/json"
	"fmt"
	"os"

	"emperror.dev/errors"
	"github.com/nhanced-tech/stylecheck/internal/config"
	"github.com/nhanced-tech/stylecheck/internal/mddocs"
	"github.com/nhanced-tech/stylecheck/internal/report"
	"github.com/nhanced-tech/stylecheck/internal/utils/colors"
	"github.com/spf13/cobra"
)

var docsFlags struct {
	Format string
}

var docsCmd = &cobra.Command{
	Use:   "docs [dir]",
	Short: "Check documentation integrity",
	Long: `Check every markdown file under the given directory (default: the
current directory): relative links and images must resolve to existing files,
table of contents entries must match a heading, and code fences must be
balanced.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		issues, err := mddocs.CheckDir(dir, config.Style.Docs.Exclude)
		if err != nil {
			return err
		}

		switch docsFlags.Format {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(issues); err != nil {
				return err
			}
		case "text", "":
			for _, issue := range issues {
				loc := issue.Path
				if issue.Line > 0 {
					loc = fmt.Sprintf("%s:%d", issue.Path, issue.Line)
				}
				fmt.Printf("%s: %s\n", loc, issue.Message)
			}
			if len(issues) == 0 {
				fmt.Println(colors.Success("Documentation checks passed."))
			}
		default:
			return errors.Errorf("unknown output format %q", docsFlags.Format)
		}

		if len(issues) > 0 {
			return report.ErrExitSilently{ExitCode: 1}
		}
		return nil
	},
}

func init() {
	docsCmd.Flags().StringVar(
		&docsFlags.Format, "format", "text",
		"output format (text or json)",
	)
}
