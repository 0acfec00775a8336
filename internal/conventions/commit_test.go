package conventions

import (
	"strings"
	"testing"

	"github.com/nhanced-tech/stylecheck/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLintCommitMessage(t *testing.T) {
	for _, tt := range []struct {
		name string
		msg  string
		want []string // substrings, one per expected problem
	}{
		{"simple feat", "feat: add bootloader watchdog", nil},
		{"scoped fix", "fix(uart): handle rx overrun", nil},
		{"breaking change", "refactor(hal)!: drop legacy pin api", nil},
		{"with body", "docs: describe flashing\n\nThe long version.", nil},
		{"empty", "", []string{"empty"}},
		{"no type", "add bootloader watchdog", []string{"does not match"}},
		{"unknown type", "feature: add watchdog", []string{"unknown commit type"}},
		{"bad scope", "fix(UART): handle rx overrun", []string{"not lower-kebab-case"}},
		{"trailing period", "feat: add watchdog.", []string{"must not end with a period"}},
		{
			"missing blank line",
			"feat: add watchdog\nThe body follows immediately.",
			[]string{"separated from the subject by a blank line"},
		},
		{
			"two problems",
			"feature: add watchdog.",
			[]string{"unknown commit type", "must not end with a period"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			problems := LintCommitMessage(tt.msg)
			require.Len(t, problems, len(tt.want))
			for i, want := range tt.want {
				require.Contains(t, problems[i].Message, want)
			}
		})
	}
}

func TestLintCommitMessageSubjectLimit(t *testing.T) {
	prev := config.Style.Commit
	config.Style.Commit = config.Commit{SubjectLimit: 72, BodyLineLimit: 100}
	t.Cleanup(func() { config.Style.Commit = prev })

	long := "feat: " + strings.Repeat("x", 80)
	problems := LintCommitMessage(long)
	require.Len(t, problems, 1)
	require.Contains(t, problems[0].Message, "limit 72")
}

func TestLintCommitMessageBodyLineLimit(t *testing.T) {
	prev := config.Style.Commit
	config.Style.Commit = config.Commit{SubjectLimit: 72, BodyLineLimit: 20}
	t.Cleanup(func() { config.Style.Commit = prev })

	msg := "fix: short subject\n\n" + strings.Repeat("y", 30) + "\nshort line"
	problems := LintCommitMessage(msg)
	require.Len(t, problems, 1)
	require.Contains(t, problems[0].Message, "body line is 30 characters long (limit 20)")
}
