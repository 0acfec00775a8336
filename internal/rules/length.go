package rules

import (
	"fmt"

	"github.com/nhanced-tech/stylecheck/internal/config"
	"github.com/nhanced-tech/stylecheck/internal/scanner"
)

func init() {
	register(fileLength{})
	register(funcLength{})
	register(lineLength{})
}

type fileLength struct{}

func (fileLength) ID() string                    { return "ST001" }
func (fileLength) Summary() string               { return "files must not exceed the maximum line count" }
func (fileLength) Severity() Severity            { return SeverityWarning }
func (fileLength) Languages() []scanner.Language { return nil }

func (r fileLength) Check(f *scanner.FileFacts) []Finding {
	max := config.Style.Check.MaxFileLines
	if max <= 0 || f.LineCount() <= max {
		return nil
	}
	return []Finding{{
		RuleID:   r.ID(),
		Path:     f.Path,
		Message:  fmt.Sprintf("file is %d lines long (limit %d); consider splitting it", f.LineCount(), max),
		Severity: EffectiveSeverity(r),
	}}
}

type funcLength struct{}

func (funcLength) ID() string                    { return "ST002" }
func (funcLength) Summary() string               { return "functions must not exceed the maximum line count" }
func (funcLength) Severity() Severity            { return SeverityError }
func (funcLength) Languages() []scanner.Language { return nil }

func (r funcLength) Check(f *scanner.FileFacts) []Finding {
	max := config.Style.Check.MaxFuncLines
	if max <= 0 {
		return nil
	}
	var findings []Finding
	for _, fn := range f.Functions {
		// Python classes ride along in Functions for the docstring check,
		// but a class is not a function.
		if fn.IsClass {
			continue
		}
		length := fn.EndLine - fn.StartLine + 1
		if length > max {
			findings = append(findings, Finding{
				RuleID:   r.ID(),
				Path:     f.Path,
				Line:     fn.StartLine,
				Message:  fmt.Sprintf("function %q is %d lines long (limit %d)", fn.Name, length, max),
				Severity: EffectiveSeverity(r),
			})
		}
	}
	return findings
}

type lineLength struct{}

func (lineLength) ID() string                    { return "ST003" }
func (lineLength) Summary() string               { return "lines must not exceed the maximum length" }
func (lineLength) Severity() Severity            { return SeverityWarning }
func (lineLength) Languages() []scanner.Language { return nil }

func (r lineLength) Check(f *scanner.FileFacts) []Finding {
	max := config.Style.Check.MaxLineLength
	if max <= 0 {
		return nil
	}
	var findings []Finding
	for i, line := range f.Lines {
		// Count runes, not bytes; tabs count as a single column here since
		// the guides forbid tabs separately (ST010).
		if n := len([]rune(line)); n > max {
			findings = append(findings, Finding{
				RuleID:   r.ID(),
				Path:     f.Path,
				Line:     i + 1,
				Message:  fmt.Sprintf("line is %d characters long (limit %d)", n, max),
				Severity: EffectiveSeverity(r),
			})
		}
	}
	return findings
}
