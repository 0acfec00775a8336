package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nhanced-tech/stylecheck/internal/scanner"
)

var (
	lowerSnakeRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	upperSnakeRe = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	pascalRe     = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

func init() {
	register(funcNaming{})
	register(constNaming{})
	register(typeNaming{})
}

type funcNaming struct{}

func (funcNaming) ID() string { return "ST005" }
func (funcNaming) Summary() string {
	return "function names must be lower_snake_case"
}
func (funcNaming) Severity() Severity            { return SeverityError }
func (funcNaming) Languages() []scanner.Language { return nil }

func (r funcNaming) Check(f *scanner.FileFacts) []Finding {
	var findings []Finding
	for _, id := range f.Identifiers {
		if id.Kind != scanner.KindFunction {
			continue
		}
		// Python dunder methods (__init__ etc.) are snake_case once the
		// underscore affixes are stripped.
		name := strings.Trim(id.Name, "_")
		if name == "" || lowerSnakeRe.MatchString(name) {
			continue
		}
		findings = append(findings, Finding{
			RuleID:   r.ID(),
			Path:     f.Path,
			Line:     id.Line,
			Message:  fmt.Sprintf("function %q is not lower_snake_case", id.Name),
			Severity: EffectiveSeverity(r),
		})
	}
	return findings
}

type constNaming struct{}

func (constNaming) ID() string { return "ST006" }
func (constNaming) Summary() string {
	return "macro and constant names must be UPPER_SNAKE_CASE"
}
func (constNaming) Severity() Severity            { return SeverityError }
func (constNaming) Languages() []scanner.Language { return nil }

func (r constNaming) Check(f *scanner.FileFacts) []Finding {
	var findings []Finding
	for _, id := range f.Identifiers {
		if id.Kind != scanner.KindMacro && id.Kind != scanner.KindConstant {
			continue
		}
		if upperSnakeRe.MatchString(id.Name) {
			continue
		}
		kind := "constant"
		if id.Kind == scanner.KindMacro {
			kind = "macro"
		}
		findings = append(findings, Finding{
			RuleID:   r.ID(),
			Path:     f.Path,
			Line:     id.Line,
			Message:  fmt.Sprintf("%s %q is not UPPER_SNAKE_CASE", kind, id.Name),
			Severity: EffectiveSeverity(r),
		})
	}
	return findings
}

type typeNaming struct{}

func (typeNaming) ID() string { return "ST007" }
func (typeNaming) Summary() string {
	return "C typedefs must end in _t; Python classes must be PascalCase"
}
func (typeNaming) Severity() Severity            { return SeverityWarning }
func (typeNaming) Languages() []scanner.Language { return nil }

func (r typeNaming) Check(f *scanner.FileFacts) []Finding {
	var findings []Finding
	for _, id := range f.Identifiers {
		switch id.Kind {
		case scanner.KindTypedef:
			if strings.HasSuffix(id.Name, "_t") {
				continue
			}
			findings = append(findings, Finding{
				RuleID:   r.ID(),
				Path:     f.Path,
				Line:     id.Line,
				Message:  fmt.Sprintf("typedef %q should end in \"_t\"", id.Name),
				Severity: EffectiveSeverity(r),
			})
		case scanner.KindClass:
			if pascalRe.MatchString(id.Name) {
				continue
			}
			findings = append(findings, Finding{
				RuleID:   r.ID(),
				Path:     f.Path,
				Line:     id.Line,
				Message:  fmt.Sprintf("class %q is not PascalCase", id.Name),
				Severity: EffectiveSeverity(r),
			})
		}
	}
	return findings
}
