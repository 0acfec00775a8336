// Package evaluator applies the enabled rules to scanned file facts.
package evaluator

import (
	"slices"
	"strings"

	"github.com/nhanced-tech/stylecheck/internal/rules"
	"github.com/nhanced-tech/stylecheck/internal/scanner"
	"github.com/sirupsen/logrus"
)

type Evaluator struct {
	rules []rules.Rule
}

func New(rs []rules.Rule) *Evaluator {
	return &Evaluator{rules: rs}
}

// Evaluate runs every applicable rule against every file. Findings are
// returned in file-walk order; within a file they are sorted by line, then
// rule ID.
func (e *Evaluator) Evaluate(files []*scanner.FileFacts) []rules.Finding {
	var findings []rules.Finding
	for _, f := range files {
		var fileFindings []rules.Finding
		for _, r := range e.rules {
			if !applies(r, f.Language) {
				continue
			}
			fileFindings = append(fileFindings, r.Check(f)...)
		}
		slices.SortStableFunc(fileFindings, func(a, b rules.Finding) int {
			if a.Line != b.Line {
				return a.Line - b.Line
			}
			return strings.Compare(a.RuleID, b.RuleID)
		})
		logrus.WithFields(logrus.Fields{
			"path":     f.Path,
			"findings": len(fileFindings),
		}).Debug("evaluated file")
		findings = append(findings, fileFindings...)
	}
	return findings
}

func applies(r rules.Rule, lang scanner.Language) bool {
	langs := r.Languages()
	return len(langs) == 0 || slices.Contains(langs, lang)
}
