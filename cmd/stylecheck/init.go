package main

import (
	"fmt"
	"os"

	"emperror.dev/errors"
	"github.com/nhanced-tech/stylecheck/internal/config"
	"github.com/nhanced-tech/stylecheck/internal/utils/colors"
	"github.com/spf13/cobra"
)

const configFileName = "stylecheck.yaml"

var initFlags struct {
	Force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a commented stylecheck.yaml with the default configuration into
the current directory. The file round-trips: every key corresponds to a
configuration field and can be edited in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFileName); err == nil && !initFlags.Force {
			return errors.Errorf("%s already exists (use --force to overwrite)", configFileName)
		}

		data, err := config.DefaultYAML()
		if err != nil {
			return err
		}
		if err := os.WriteFile(configFileName, data, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", configFileName)
		}
		fmt.Printf("%s %s\n", colors.Success("Wrote"), configFileName)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(
		&initFlags.Force, "force", false,
		"overwrite an existing configuration file",
	)
}
