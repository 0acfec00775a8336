package evaluator

import (
	"testing"

	"github.com/nhanced-tech/stylecheck/internal/rules"
	"github.com/nhanced-tech/stylecheck/internal/scanner"
	"github.com/stretchr/testify/require"
)

type fakeRule struct {
	id       string
	langs    []scanner.Language
	findings []rules.Finding
}

func (r fakeRule) ID() string                    { return r.id }
func (r fakeRule) Summary() string               { return "fake" }
func (r fakeRule) Severity() rules.Severity      { return rules.SeverityError }
func (r fakeRule) Languages() []scanner.Language { return r.langs }
func (r fakeRule) Check(f *scanner.FileFacts) []rules.Finding {
	var out []rules.Finding
	for _, finding := range r.findings {
		finding.RuleID = r.id
		finding.Path = f.Path
		out = append(out, finding)
	}
	return out
}

func TestEvaluateOrdering(t *testing.T) {
	files := []*scanner.FileFacts{
		{Path: "b.c", Language: scanner.LanguageC},
		{Path: "a.c", Language: scanner.LanguageC},
	}
	e := New([]rules.Rule{
		fakeRule{id: "ST902", findings: []rules.Finding{{Line: 3}, {Line: 1}}},
		fakeRule{id: "ST901", findings: []rules.Finding{{Line: 3}}},
	})

	findings := e.Evaluate(files)

	// Files stay in walk order; within a file, findings sort by line then
	// rule ID.
	require.Equal(t, []string{"b.c", "b.c", "b.c", "a.c", "a.c", "a.c"}, paths(findings))
	require.Equal(t, 1, findings[0].Line)
	require.Equal(t, "ST901", findings[1].RuleID)
	require.Equal(t, "ST902", findings[2].RuleID)
}

func TestEvaluateLanguageFilter(t *testing.T) {
	files := []*scanner.FileFacts{
		{Path: "a.c", Language: scanner.LanguageC},
		{Path: "b.py", Language: scanner.LanguagePython},
	}
	e := New([]rules.Rule{
		fakeRule{
			id:       "ST900",
			langs:    []scanner.Language{scanner.LanguagePython},
			findings: []rules.Finding{{Line: 1}},
		},
	})

	findings := e.Evaluate(files)
	require.Equal(t, []string{"b.py"}, paths(findings))
}

func paths(findings []rules.Finding) []string {
	var out []string
	for _, f := range findings {
		out = append(out, f.Path)
	}
	return out
}
