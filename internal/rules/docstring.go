package rules

import (
	"fmt"
	"strings"

	"github.com/nhanced-tech/stylecheck/internal/scanner"
)

func init() {
	register(docstring{})
}

type docstring struct{}

func (docstring) ID() string { return "ST008" }
func (docstring) Summary() string {
	return "Python functions and classes must have a docstring"
}
func (docstring) Severity() Severity { return SeverityWarning }
func (docstring) Languages() []scanner.Language {
	return []scanner.Language{scanner.LanguagePython}
}

func (r docstring) Check(f *scanner.FileFacts) []Finding {
	var findings []Finding
	for _, fn := range f.Functions {
		if fn.HasDocstring {
			continue
		}
		// Private helpers (single leading underscore) are exempt; dunder
		// methods are not helpers and still need no docstring per the guide.
		if strings.HasPrefix(fn.Name, "_") {
			continue
		}
		findings = append(findings, Finding{
			RuleID:   r.ID(),
			Path:     f.Path,
			Line:     fn.StartLine,
			Message:  fmt.Sprintf("%q has no docstring", fn.Name),
			Severity: EffectiveSeverity(r),
		})
	}
	return findings
}
