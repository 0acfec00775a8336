package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nhanced-tech/stylecheck/internal/rules"
	"github.com/stretchr/testify/require"
)

func sampleFindings() []rules.Finding {
	return []rules.Finding{
		{RuleID: "ST002", Path: "a.c", Line: 10, Message: "too long", Severity: rules.SeverityError},
		{RuleID: "ST009", Path: "a.c", Line: 4, Message: "trailing whitespace", Severity: rules.SeverityWarning},
	}
}

func TestBuild(t *testing.T) {
	r := Build(sampleFindings(), 3, false)
	require.Equal(t, 3, r.Summary.FilesScanned)
	require.Equal(t, 1, r.Summary.Errors)
	require.Equal(t, 1, r.Summary.Warnings)
}

func TestFailed(t *testing.T) {
	for _, tt := range []struct {
		name     string
		findings []rules.Finding
		strict   bool
		failed   bool
	}{
		{"clean", nil, false, false},
		{"clean strict", nil, true, false},
		{"errors", sampleFindings(), false, true},
		{
			"warnings only",
			[]rules.Finding{{Severity: rules.SeverityWarning}},
			false,
			false,
		},
		{
			"warnings only strict",
			[]rules.Finding{{Severity: rules.SeverityWarning}},
			true,
			true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.failed, Build(tt.findings, 1, tt.strict).Failed())
		})
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, Build(sampleFindings(), 2, false)))

	out := buf.String()
	require.Contains(t, out, "a.c:10")
	require.Contains(t, out, "[ST002] too long")
	require.Contains(t, out, "[ST009] trailing whitespace")
	require.Contains(t, out, "FAIL")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, Build(sampleFindings(), 2, true)))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Findings, 2)
	require.Equal(t, 2, decoded.Summary.FilesScanned)
	require.True(t, decoded.Summary.Strict)
	require.Equal(t, "ST002", decoded.Findings[0].RuleID)
}
