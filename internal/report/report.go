// Package report renders evaluation results and decides the process exit
// status.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/kr/text"
	"github.com/nhanced-tech/stylecheck/internal/rules"
	"github.com/nhanced-tech/stylecheck/internal/utils/colors"
)

type Summary struct {
	FilesScanned int  `json:"files_scanned"`
	Errors       int  `json:"errors"`
	Warnings     int  `json:"warnings"`
	Strict       bool `json:"strict"`
}

type Report struct {
	Findings []rules.Finding `json:"findings"`
	Summary  Summary         `json:"summary"`
}

// Build aggregates findings into a report.
func Build(findings []rules.Finding, filesScanned int, strict bool) Report {
	r := Report{
		Findings: findings,
		Summary: Summary{
			FilesScanned: filesScanned,
			Strict:       strict,
		},
	}
	for _, f := range findings {
		switch f.Severity {
		case rules.SeverityError:
			r.Summary.Errors++
		default:
			r.Summary.Warnings++
		}
	}
	return r
}

// Failed reports whether the run should exit non-zero: any error, or any
// warning when running strict.
func (r Report) Failed() bool {
	if r.Summary.Errors > 0 {
		return true
	}
	return r.Summary.Strict && r.Summary.Warnings > 0
}

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Text writes the human-readable report.
func Text(w io.Writer, r Report) error {
	for _, f := range r.Findings {
		loc := f.Path
		if f.Line > 0 {
			loc = fmt.Sprintf("%s:%d", f.Path, f.Line)
		}
		sev := colors.Warning(string(f.Severity))
		if f.Severity == rules.SeverityError {
			sev = colors.Failure(string(f.Severity))
		}
		if _, err := fmt.Fprintf(w, "%s: %s: [%s] %s\n", loc, sev, f.RuleID, f.Message); err != nil {
			return err
		}
		if f.Detail != "" {
			if _, err := io.WriteString(w, text.Indent(f.Detail, "    ")+"\n"); err != nil {
				return err
			}
		}
	}

	status := colors.Success("PASS")
	if r.Failed() {
		status = colors.Failure("FAIL")
	}
	summary := fmt.Sprintf(
		"%s  %s files scanned, %s errors, %s warnings",
		status,
		humanize.Comma(int64(r.Summary.FilesScanned)),
		humanize.Comma(int64(r.Summary.Errors)),
		humanize.Comma(int64(r.Summary.Warnings)),
	)
	_, err := fmt.Fprintln(w, summaryStyle.Render(summary))
	return err
}

// JSON writes the machine-readable report (for CI consumers).
func JSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
