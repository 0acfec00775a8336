package rules

import (
	"github.com/nhanced-tech/stylecheck/internal/config"
	"github.com/nhanced-tech/stylecheck/internal/scanner"
)

func init() {
	register(fileHeader{})
}

type fileHeader struct{}

func (fileHeader) ID() string { return "ST004" }
func (fileHeader) Summary() string {
	return "source files must start with a header comment block"
}
func (fileHeader) Severity() Severity            { return SeverityWarning }
func (fileHeader) Languages() []scanner.Language { return nil }

func (r fileHeader) Check(f *scanner.FileFacts) []Finding {
	if !config.Style.Check.RequireFileHeader {
		return nil
	}
	if f.LineCount() == 0 || f.HasHeaderComment {
		return nil
	}
	return []Finding{{
		RuleID:   r.ID(),
		Path:     f.Path,
		Line:     1,
		Message:  "file does not start with a header comment",
		Severity: EffectiveSeverity(r),
	}}
}
