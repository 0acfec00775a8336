// Package conventions implements the process conventions from the
// organization guide: commit message format and branch naming.
package conventions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nhanced-tech/stylecheck/internal/config"
	"github.com/nhanced-tech/stylecheck/internal/utils/stringutils"
)

// Problem is a single violation of a process convention.
type Problem struct {
	Message string `json:"message"`
}

// CommitTypes is the fixed set of allowed commit type prefixes.
var CommitTypes = []string{
	"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore",
}

var (
	subjectRe = regexp.MustCompile(`^([a-z]+)(\(([^)]*)\))?(!)?: (.+)$`)
	scopeRe   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// LintCommitMessage checks a full commit message (subject plus optional
// body) against the organization's commit conventions.
func LintCommitMessage(msg string) []Problem {
	var problems []Problem

	subject, body := stringutils.ParseSubjectBody(msg)
	if subject == "" {
		return []Problem{{Message: "commit message is empty"}}
	}

	m := subjectRe.FindStringSubmatch(subject)
	if m == nil {
		problems = append(problems, Problem{Message: fmt.Sprintf(
			"subject %q does not match \"type(scope): description\"", subject,
		)})
	} else {
		if !isCommitType(m[1]) {
			problems = append(problems, Problem{Message: fmt.Sprintf(
				"unknown commit type %q (allowed: %s)", m[1], strings.Join(CommitTypes, ", "),
			)})
		}
		if m[2] != "" && !scopeRe.MatchString(m[3]) {
			problems = append(problems, Problem{Message: fmt.Sprintf(
				"scope %q is not lower-kebab-case", m[3],
			)})
		}
	}
	if limit := config.Style.Commit.SubjectLimit; limit > 0 && len([]rune(subject)) > limit {
		problems = append(problems, Problem{Message: fmt.Sprintf(
			"subject is %d characters long (limit %d)", len([]rune(subject)), limit,
		)})
	}
	if strings.HasSuffix(subject, ".") {
		problems = append(problems, Problem{Message: "subject must not end with a period"})
	}

	if body != "" {
		// ParseSubjectBody trims the separating blank lines, so detect a
		// missing separator from the raw message.
		lines := stringutils.SplitLines(strings.Trim(msg, "\n"))
		if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
			problems = append(problems, Problem{Message: "body must be separated from the subject by a blank line"})
		}
		limit := config.Style.Commit.BodyLineLimit
		for _, line := range stringutils.SplitLines(body) {
			if limit > 0 && len([]rune(line)) > limit {
				problems = append(problems, Problem{Message: fmt.Sprintf(
					"body line is %d characters long (limit %d)", len([]rune(line)), limit,
				)})
			}
		}
	}

	return problems
}

func isCommitType(t string) bool {
	for _, allowed := range CommitTypes {
		if t == allowed {
			return true
		}
	}
	return false
}
