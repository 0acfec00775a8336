package scanner

import (
	"regexp"
	"strings"
)

var (
	pyDefRe   = regexp.MustCompile(`^(\s*)(def|class)\s+([A-Za-z_]\w*)`)
	pyConstRe = regexp.MustCompile(`^([A-Z][A-Z0-9_]*)\s*(?::[^=]+)?=[^=]`)
)

// scanPython extracts def/class definitions (with docstring detection and
// indentation-based extents) and module-level constants.
func scanPython(f *FileFacts) {
	type openDef struct {
		name   string
		indent int
		start  int
		class  bool
		// Index into f.Functions once appended; extents are patched when the
		// definition closes.
		idx int
	}
	var stack []openDef
	inString := "" // non-empty while inside a triple-quoted string, holds the delimiter
	sigOpen := 0   // unbalanced parens in a def/class header spanning lines

	// closeDefs pops every open definition whose suite has ended at the
	// given indentation, marking lastLine as the final line of its body.
	closeDefs := func(indent, lastLine int) {
		for len(stack) > 0 && indent <= stack[len(stack)-1].indent {
			d := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			f.Functions[d.idx].EndLine = lastLine
		}
	}

	lastCode := 0
	for i, line := range f.Lines {
		ln := i + 1

		if inString != "" {
			if strings.Contains(line, inString) {
				inString = ""
			}
			lastCode = ln
			continue
		}

		// Parameter lines of a multi-line signature belong to the header,
		// not to the suite; the closing "):" must not dedent-close the def.
		if sigOpen > 0 {
			sigOpen += parenBalance(line)
			if sigOpen < 0 {
				sigOpen = 0
			}
			lastCode = ln
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		indent := indentWidth(line)

		closeDefs(indent, lastCode)

		if m := pyDefRe.FindStringSubmatch(line); m != nil {
			isClass := m[2] == "class"
			kind := KindFunction
			if isClass {
				kind = KindClass
			}
			f.Identifiers = append(f.Identifiers, Identifier{m[3], kind, ln})
			f.Functions = append(f.Functions, Function{
				Name:      m[3],
				StartLine: ln,
				EndLine:   ln,
				IsClass:   isClass,
			})
			stack = append(stack, openDef{
				name:   m[3],
				indent: indent,
				start:  ln,
				class:  isClass,
				idx:    len(f.Functions) - 1,
			})
			if bal := parenBalance(line); bal > 0 {
				sigOpen = bal
			}
			// The docstring check happens when we reach the first statement
			// of the suite; see below.
		} else if len(stack) > 0 && indent > stack[len(stack)-1].indent {
			top := &stack[len(stack)-1]
			if f.Functions[top.idx].EndLine == top.start {
				// First statement of the suite.
				f.Functions[top.idx].HasDocstring = strings.HasPrefix(trimmed, `"""`) ||
					strings.HasPrefix(trimmed, `'''`) ||
					strings.HasPrefix(trimmed, `r"""`) ||
					strings.HasPrefix(trimmed, `r'''`)
				f.Functions[top.idx].EndLine = ln
			}
		}

		if len(stack) == 0 {
			if m := pyConstRe.FindStringSubmatch(trimmed); m != nil && indent == 0 {
				f.Identifiers = append(f.Identifiers, Identifier{m[1], KindConstant, ln})
			}
		}

		if delim := tripleQuoteOpen(trimmed); delim != "" {
			inString = delim
		}
		lastCode = ln
	}
	closeDefs(0, lastCode)

	f.HasHeaderComment = pyHasHeaderComment(f.Lines)
}

// tripleQuoteOpen reports the delimiter of a triple-quoted string that the
// line opens without closing, or "" if the line is balanced.
func tripleQuoteOpen(line string) string {
	for _, delim := range []string{`"""`, `'''`} {
		n := strings.Count(line, delim)
		if n%2 == 1 {
			return delim
		}
	}
	return ""
}

// parenBalance counts unmatched open parens on a line, ignoring a trailing
// comment. Good enough lexically; parens inside string literals are rare in
// signatures.
func parenBalance(line string) int {
	if idx := strings.Index(line, "#"); idx >= 0 {
		line = line[:idx]
	}
	return strings.Count(line, "(") - strings.Count(line, ")")
}

func indentWidth(line string) int {
	w := 0
	for _, ch := range line {
		switch ch {
		case ' ':
			w++
		case '\t':
			// A tab advances to the next multiple of 8, per CPython's
			// tokenizer.
			w += 8 - w%8
		default:
			return w
		}
	}
	return w
}

func pyHasHeaderComment(lines []string) bool {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// A shebang or encoding line still counts as part of the header.
		if strings.HasPrefix(trimmed, "#") {
			return true
		}
		// A module docstring counts as a header comment too.
		if i == 0 || allBlankBefore(lines, i) {
			if strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, `'''`) {
				return true
			}
		}
		return false
	}
	return false
}

func allBlankBefore(lines []string, i int) bool {
	for _, line := range lines[:i] {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
