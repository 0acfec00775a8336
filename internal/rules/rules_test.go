package rules

import (
	"strings"
	"testing"

	"github.com/nhanced-tech/stylecheck/internal/config"
	"github.com/nhanced-tech/stylecheck/internal/scanner"
	"github.com/stretchr/testify/require"
)

func withCheckConfig(t *testing.T, c config.Check) {
	t.Helper()
	prev := config.Style.Check
	config.Style.Check = c
	t.Cleanup(func() { config.Style.Check = prev })
}

func findingMessages(fs []Finding) []string {
	var msgs []string
	for _, f := range fs {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

func TestRegistry(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].ID(), all[i].ID(), "registry must be sorted by ID")
	}
	require.NotNil(t, Get("ST001"))
	require.NotNil(t, Get("st001"), "lookup is case-insensitive")
	require.Nil(t, Get("ST999"))
}

func TestEnabledHonorsDisabledList(t *testing.T) {
	withCheckConfig(t, config.Check{Disabled: []string{"st001", "ST009"}})
	for _, r := range Enabled() {
		require.NotEqual(t, "ST001", r.ID())
		require.NotEqual(t, "ST009", r.ID())
	}
}

func TestEffectiveSeverityOverride(t *testing.T) {
	withCheckConfig(t, config.Check{Severity: map[string]string{"ST001": "error"}})
	require.Equal(t, SeverityError, EffectiveSeverity(Get("ST001")))
	require.Equal(t, SeverityError, EffectiveSeverity(Get("ST002")), "default is unchanged")
}

func TestFileLength(t *testing.T) {
	withCheckConfig(t, config.Check{MaxFileLines: 3})
	f := scanner.Scan("long.py", scanner.LanguagePython, "a = 1\nb = 2\nc = 3\nd = 4\n")
	findings := Get("ST001").Check(f)
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Message, "4 lines long (limit 3)")

	withCheckConfig(t, config.Check{MaxFileLines: 0})
	require.Empty(t, Get("ST001").Check(f), "zero limit disables the rule")
}

func TestFuncLength(t *testing.T) {
	withCheckConfig(t, config.Check{MaxFuncLines: 3})
	src := `// hdr
void long_one(void)
{
    int a = 1;
    int b = 2;
}
`
	f := scanner.Scan("long.c", scanner.LanguageC, src)
	findings := Get("ST002").Check(f)
	require.Len(t, findings, 1)
	require.Equal(t, 2, findings[0].Line)
	require.Contains(t, findings[0].Message, `"long_one" is 5 lines long (limit 3)`)
}

func TestFuncLengthIgnoresClasses(t *testing.T) {
	withCheckConfig(t, config.Check{MaxFuncLines: 3})
	src := `"""Mod."""

class BigButFine:
    """A class may be long; only its methods are measured."""

    A = 1
    B = 2
    C = 3

    def short(self):
        return self.A

    def too_long(self):
        a = self.A
        b = self.B
        return a + b
`
	f := scanner.Scan("big.py", scanner.LanguagePython, src)
	findings := Get("ST002").Check(f)
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Message, `"too_long"`)
}

func TestLineLength(t *testing.T) {
	withCheckConfig(t, config.Check{MaxLineLength: 10})
	f := scanner.Scan("wide.py", scanner.LanguagePython, "short = 1\nthis_is_much_too_long = 2\n")
	findings := Get("ST003").Check(f)
	require.Len(t, findings, 1)
	require.Equal(t, 2, findings[0].Line)
}

func TestFileHeader(t *testing.T) {
	withCheckConfig(t, config.Check{RequireFileHeader: true})

	noHeader := scanner.Scan("a.c", scanner.LanguageC, "int a;\n")
	require.Len(t, Get("ST004").Check(noHeader), 1)

	withHeader := scanner.Scan("b.c", scanner.LanguageC, "/* b */\nint b;\n")
	require.Empty(t, Get("ST004").Check(withHeader))

	empty := scanner.Scan("c.c", scanner.LanguageC, "")
	require.Empty(t, Get("ST004").Check(empty), "empty files need no header")

	withCheckConfig(t, config.Check{RequireFileHeader: false})
	require.Empty(t, Get("ST004").Check(noHeader))
}

func TestFuncNaming(t *testing.T) {
	withCheckConfig(t, config.Check{})
	src := `// hdr
void read_sensor(void) { }
void BadName(void) { }
`
	f := scanner.Scan("n.c", scanner.LanguageC, src)
	findings := Get("ST005").Check(f)
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Message, `"BadName"`)
}

func TestFuncNamingAllowsDunders(t *testing.T) {
	withCheckConfig(t, config.Check{})
	f := scanner.Scan("d.py", scanner.LanguagePython, "class C:\n    def __init__(self):\n        pass\n")
	for _, finding := range Get("ST005").Check(f) {
		require.False(t, strings.Contains(finding.Message, "__init__"))
	}
}

func TestConstNaming(t *testing.T) {
	withCheckConfig(t, config.Check{})
	src := "// hdr\n#define MAX_RETRIES 3\n#define bad_macro 1\n"
	f := scanner.Scan("m.h", scanner.LanguageC, src)
	findings := Get("ST006").Check(f)
	require.Equal(t, []string{`macro "bad_macro" is not UPPER_SNAKE_CASE`}, findingMessages(findings))
}

func TestTypeNaming(t *testing.T) {
	withCheckConfig(t, config.Check{})

	c := scanner.Scan("t.h", scanner.LanguageC, "typedef unsigned char byte;\ntypedef int count_t;\n")
	findings := Get("ST007").Check(c)
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Message, `"byte"`)

	py := scanner.Scan("t.py", scanner.LanguagePython, "class snake_case_class:\n    pass\n")
	findings = Get("ST007").Check(py)
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Message, "not PascalCase")
}

func TestDocstring(t *testing.T) {
	withCheckConfig(t, config.Check{})
	src := `"""Mod."""

def documented():
    """Doc."""
    return 1

def undocumented():
    return 2

def _private_helper():
    return 3
`
	f := scanner.Scan("d.py", scanner.LanguagePython, src)
	findings := Get("ST008").Check(f)
	require.Equal(t, []string{`"undocumented" has no docstring`}, findingMessages(findings))
}

func TestTrailingSpace(t *testing.T) {
	withCheckConfig(t, config.Check{})
	f := scanner.Scan("w.py", scanner.LanguagePython, "a = 1 \nb = 2\n")
	findings := Get("ST009").Check(f)
	require.Len(t, findings, 1)
	require.Equal(t, 1, findings[0].Line)
}

func TestTabIndent(t *testing.T) {
	withCheckConfig(t, config.Check{})
	f := scanner.Scan("t.c", scanner.LanguageC, "// hdr\nvoid f(void)\n{\n\treturn;\n}\n")
	findings := Get("ST010").Check(f)
	require.Len(t, findings, 1)
	require.Equal(t, 4, findings[0].Line)

	withCheckConfig(t, config.Check{AllowTabs: true})
	require.Empty(t, Get("ST010").Check(f))
}
