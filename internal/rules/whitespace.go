package rules

import (
	"strings"
	"unicode"

	"github.com/nhanced-tech/stylecheck/internal/config"
	"github.com/nhanced-tech/stylecheck/internal/scanner"
)

func init() {
	register(trailingSpace{})
	register(tabIndent{})
}

type trailingSpace struct{}

func (trailingSpace) ID() string                    { return "ST009" }
func (trailingSpace) Summary() string               { return "lines must not end with whitespace" }
func (trailingSpace) Severity() Severity            { return SeverityWarning }
func (trailingSpace) Languages() []scanner.Language { return nil }

func (r trailingSpace) Check(f *scanner.FileFacts) []Finding {
	var findings []Finding
	for i, line := range f.Lines {
		if line == "" {
			continue
		}
		if unicode.IsSpace(rune(line[len(line)-1])) {
			findings = append(findings, Finding{
				RuleID:   r.ID(),
				Path:     f.Path,
				Line:     i + 1,
				Message:  "trailing whitespace",
				Severity: EffectiveSeverity(r),
			})
		}
	}
	return findings
}

type tabIndent struct{}

func (tabIndent) ID() string                    { return "ST010" }
func (tabIndent) Summary() string               { return "indentation must use spaces, not tabs" }
func (tabIndent) Severity() Severity            { return SeverityWarning }
func (tabIndent) Languages() []scanner.Language { return nil }

func (r tabIndent) Check(f *scanner.FileFacts) []Finding {
	if config.Style.Check.AllowTabs {
		return nil
	}
	var findings []Finding
	for i, line := range f.Lines {
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if strings.Contains(indent, "\t") {
			findings = append(findings, Finding{
				RuleID:   r.ID(),
				Path:     f.Path,
				Line:     i + 1,
				Message:  "hard tab in indentation",
				Severity: EffectiveSeverity(r),
			})
		}
	}
	return findings
}
