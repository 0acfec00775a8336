package main

import (
	"fmt"

	"github.com/nhanced-tech/stylecheck/internal/conventions"
	"github.com/nhanced-tech/stylecheck/internal/report"
	"github.com/nhanced-tech/stylecheck/internal/utils/colors"
	"github.com/spf13/cobra"
)

var branchCmd = &cobra.Command{
	Use:   "branch [name]",
	Short: "Check a branch name against the branching conventions",
	Long: `Check that a branch name uses one of the four category prefixes
(feature/, bugfix/, release/, hotfix/) followed by a lower-kebab-case slug.
With no argument, the current branch of the repository is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) > 0 {
			name = args[0]
		} else {
			repo, err := getRepo()
			if err != nil {
				return err
			}
			name, err = repo.CurrentBranchName()
			if err != nil {
				return err
			}
		}

		problems := conventions.LintBranchName(name)
		for _, p := range problems {
			fmt.Println(colors.Failure("branch: "), p.Message)
		}
		if len(problems) > 0 {
			return report.ErrExitSilently{ExitCode: 1}
		}
		fmt.Printf("%s %s\n", colors.Success("Branch name looks good:"), name)
		return nil
	},
}
