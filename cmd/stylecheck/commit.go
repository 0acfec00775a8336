package main

import (
	"fmt"
	"io"
	"os"

	"emperror.dev/errors"
	"github.com/nhanced-tech/stylecheck/internal/conventions"
	"github.com/nhanced-tech/stylecheck/internal/report"
	"github.com/nhanced-tech/stylecheck/internal/utils/colors"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit [file]",
	Short: "Check a commit message against the commit conventions",
	Long: `Check a commit message for the "type(scope): description" format.
The message is read from the given file, from stdin when the file is "-", or
from the HEAD commit of the current repository when no file is given.

This is intended to be wired into a commit-msg hook:

    stylecheck commit "$1"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := readCommitMessage(args)
		if err != nil {
			return err
		}

		problems := conventions.LintCommitMessage(msg)
		for _, p := range problems {
			fmt.Println(colors.Failure("commit: "), p.Message)
		}
		if len(problems) > 0 {
			return report.ErrExitSilently{ExitCode: 1}
		}
		fmt.Println(colors.Success("Commit message looks good."))
		return nil
	},
}

func readCommitMessage(args []string) (string, error) {
	if len(args) == 0 {
		repo, err := getRepo()
		if err != nil {
			return "", errors.WrapIf(err, "no message file given and not inside a git repository")
		}
		return repo.HeadCommitMessage()
	}
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read commit message from stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "failed to read commit message from %q", args[0])
	}
	return string(data), nil
}
