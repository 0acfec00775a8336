// Package rules holds the registry of checkable style rules distilled from
// the organization's style guides (embedded C, Python, and the GitHub
// process guide).
package rules

import (
	"github.com/nhanced-tech/stylecheck/internal/scanner"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single pass/fail result for one rule against one file.
type Finding struct {
	RuleID string `json:"rule"`
	Path   string `json:"path"`
	// 1-based line of the offending construct; 0 means the finding applies
	// to the file as a whole.
	Line     int      `json:"line,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	// Optional additional context, rendered indented under the finding.
	Detail string `json:"detail,omitempty"`
}

// Rule is a single checkable style rule.
type Rule interface {
	// ID is the stable identifier (e.g. "ST005") used in config and output.
	ID() string
	// Summary is a one-line description of what the rule enforces.
	Summary() string
	// Severity is the default severity; config may override it per rule.
	Severity() Severity
	// Languages returns the languages the rule applies to. Nil means all.
	Languages() []scanner.Language
	Check(f *scanner.FileFacts) []Finding
}
