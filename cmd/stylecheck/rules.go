package main

import (
	"fmt"
	"strings"

	"github.com/nhanced-tech/stylecheck/internal/rules"
	"github.com/nhanced-tech/stylecheck/internal/utils/colors"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered style rules",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range rules.All() {
			langs := "all"
			if rl := r.Languages(); len(rl) > 0 {
				var names []string
				for _, l := range rl {
					names = append(names, string(l))
				}
				langs = strings.Join(names, ", ")
			}
			fmt.Printf("%s  %-7s  %-12s  %s\n",
				colors.Bold(r.ID()),
				rules.EffectiveSeverity(r),
				colors.Faint(langs),
				r.Summary(),
			)
		}
	},
}
