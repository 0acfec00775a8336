package main

import (
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/nhanced-tech/stylecheck/internal/config"
	"github.com/nhanced-tech/stylecheck/internal/evaluator"
	"github.com/nhanced-tech/stylecheck/internal/report"
	"github.com/nhanced-tech/stylecheck/internal/rules"
	"github.com/nhanced-tech/stylecheck/internal/scanner"
	"github.com/spf13/cobra"
)

var checkFlags struct {
	// Output format: "text" or "json".
	Format string
	// Treat warnings as errors.
	Strict bool
	// Additional include/exclude globs (merged with config).
	Include []string
	Exclude []string
	// Restrict the run to the listed rule IDs.
	Only []string
}

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check source files against the style rules",
	Long: `Scan the given files and directories (default: the current directory)
and report every style rule violation. The exit status is 0 when the scan is
clean, 1 when violations were found, and 2 on usage or configuration errors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			paths = []string{"."}
		}

		enabled, err := selectRules()
		if err != nil {
			return err
		}

		include := append(config.Style.Check.Include, checkFlags.Include...)
		exclude := append(config.Style.Check.Exclude, checkFlags.Exclude...)
		files, err := scanner.New(include, exclude).Walk(paths)
		if err != nil {
			return err
		}

		findings := evaluator.New(enabled).Evaluate(files)
		rep := report.Build(findings, len(files), checkFlags.Strict)

		switch checkFlags.Format {
		case "json":
			err = report.JSON(os.Stdout, rep)
		case "text", "":
			err = report.Text(os.Stdout, rep)
		default:
			return errors.Errorf("unknown output format %q", checkFlags.Format)
		}
		if err != nil {
			return err
		}

		if rep.Failed() {
			return report.ErrExitSilently{ExitCode: 1}
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(
		&checkFlags.Format, "format", "text",
		"output format (text or json)",
	)
	checkCmd.Flags().BoolVar(
		&checkFlags.Strict, "strict", false,
		"treat warnings as errors",
	)
	checkCmd.Flags().StringSliceVar(
		&checkFlags.Include, "include", nil,
		"glob patterns of files to scan (doublestar syntax)",
	)
	checkCmd.Flags().StringSliceVar(
		&checkFlags.Exclude, "exclude", nil,
		"glob patterns of files to skip",
	)
	checkCmd.Flags().StringSliceVar(
		&checkFlags.Only, "only", nil,
		"run only the listed rule IDs",
	)
}

// selectRules resolves the --only flag against the registry, defaulting to
// every enabled rule.
func selectRules() ([]rules.Rule, error) {
	if len(checkFlags.Only) == 0 {
		return rules.Enabled(), nil
	}
	var selected []rules.Rule
	for _, id := range checkFlags.Only {
		r := rules.Get(strings.TrimSpace(id))
		if r == nil {
			return nil, errors.Errorf("unknown rule %q (see `stylecheck rules`)", id)
		}
		selected = append(selected, r)
	}
	return selected, nil
}
