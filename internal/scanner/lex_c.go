package scanner

import (
	"regexp"
	"strings"
)

var (
	cMacroRe      = regexp.MustCompile(`^#\s*define\s+([A-Za-z_]\w*)`)
	cTypedefRe    = regexp.MustCompile(`\b([A-Za-z_]\w*)\s*;\s*$`)
	cTypedefFnRe  = regexp.MustCompile(`\(\s*\*\s*([A-Za-z_]\w*)\s*\)`)
	cTypedefEndRe = regexp.MustCompile(`}\s*([A-Za-z_]\w*)\s*;`)
	cConstRe      = regexp.MustCompile(`\bconst\b[^=;]*\b([A-Za-z_]\w*)\s*=`)
	cFuncNameRe   = regexp.MustCompile(`\b([A-Za-z_]\w*)\s*\($`)
)

// Keywords that can be followed by "(" without introducing a function.
var cControlKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"switch": true, "return": true, "sizeof": true, "case": true,
}

type blockKind int

const (
	blockNone blockKind = iota
	blockFunc
	blockTypedef
	blockOther
)

// scanC extracts macros, typedefs, constants, and function definitions from
// a C translation unit. This is deliberately lexical: enough accuracy for
// style rules, nothing like a real parser.
func scanC(f *FileFacts) {
	var (
		inComment bool
		depth     int
		block     blockKind
		funcName  string
		funcStart int
		// Signature accumulated across lines until we see "{" or ";".
		pending      string
		pendingStart int
		inTypedef    bool
	)

	for i, raw := range f.Lines {
		ln := i + 1
		code, nowInComment := stripCLine(raw, inComment)
		inComment = nowInComment
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}

		if depth == 0 {
			if m := cMacroRe.FindStringSubmatch(trimmed); m != nil {
				f.Identifiers = append(f.Identifiers, Identifier{m[1], KindMacro, ln})
				pending = ""
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				// Other preprocessor directives carry no identifiers we track.
				pending = ""
				continue
			}
			if strings.HasPrefix(trimmed, "typedef") {
				if strings.Contains(trimmed, "{") {
					inTypedef = true
				} else if strings.HasSuffix(trimmed, ";") {
					name := ""
					if m := cTypedefFnRe.FindStringSubmatch(trimmed); m != nil {
						name = m[1]
					} else if m := cTypedefRe.FindStringSubmatch(trimmed); m != nil {
						name = m[1]
					}
					if name != "" {
						f.Identifiers = append(f.Identifiers, Identifier{name, KindTypedef, ln})
					}
					continue
				} else {
					inTypedef = true
				}
			}
			if !inTypedef {
				if m := cConstRe.FindStringSubmatch(trimmed); m != nil {
					f.Identifiers = append(f.Identifiers, Identifier{m[1], KindConstant, ln})
				}
			}
		}

		// Accumulate a possible function signature at file scope.
		if depth == 0 && block == blockNone && !inTypedef {
			if pending == "" {
				pending = trimmed
				pendingStart = ln
			} else {
				pending += " " + trimmed
			}
			if strings.HasSuffix(pending, ";") {
				// A prototype or declaration, not a definition.
				pending = ""
			}
		}

		for _, ch := range code {
			switch ch {
			case '{':
				if depth == 0 {
					switch {
					case inTypedef:
						block = blockTypedef
					default:
						if name, ok := pendingFuncName(pending); ok {
							block = blockFunc
							funcName = name
							funcStart = pendingStart
						} else {
							block = blockOther
						}
					}
					pending = ""
				}
				depth++
			case '}':
				if depth > 0 {
					depth--
				}
				if depth == 0 {
					switch block {
					case blockFunc:
						f.Functions = append(f.Functions, Function{
							Name:      funcName,
							StartLine: funcStart,
							EndLine:   ln,
						})
						f.Identifiers = append(f.Identifiers, Identifier{funcName, KindFunction, funcStart})
					case blockTypedef:
						if m := cTypedefEndRe.FindStringSubmatch(code); m != nil {
							f.Identifiers = append(f.Identifiers, Identifier{m[1], KindTypedef, ln})
						}
						inTypedef = false
					}
					block = blockNone
				}
			}
		}

		if depth == 0 && strings.HasSuffix(trimmed, ";") {
			pending = ""
			if inTypedef && block == blockNone {
				inTypedef = false
			}
		}
	}

	// An unterminated function body closes at EOF.
	if block == blockFunc {
		f.Functions = append(f.Functions, Function{
			Name:      funcName,
			StartLine: funcStart,
			EndLine:   len(f.Lines),
		})
		f.Identifiers = append(f.Identifiers, Identifier{funcName, KindFunction, funcStart})
	}

	f.HasHeaderComment = cHasHeaderComment(f.Lines)
}

// pendingFuncName extracts the function name from an accumulated signature,
// i.e. the identifier immediately before the first "(".
func pendingFuncName(pending string) (string, bool) {
	idx := strings.Index(pending, "(")
	if idx < 0 {
		return "", false
	}
	head := strings.TrimSpace(pending[:idx])
	if m := cFuncNameRe.FindStringSubmatch(head + "("); m != nil {
		name := m[1]
		if cControlKeywords[name] {
			return "", false
		}
		// A lone identifier before "(" is a call or a macro invocation, not
		// a definition; require a return type token in front of the name.
		if !strings.ContainsAny(head[:len(head)-len(name)], " \t*") {
			return "", false
		}
		return name, true
	}
	return "", false
}

// stripCLine removes comments and collapses string/char literals so that
// braces and semicolons inside them do not confuse the scanner. Returns the
// stripped line and whether a block comment continues past the end of it.
func stripCLine(line string, inComment bool) (string, bool) {
	var b strings.Builder
	i := 0
	for i < len(line) {
		if inComment {
			if idx := strings.Index(line[i:], "*/"); idx >= 0 {
				i += idx + 2
				inComment = false
				continue
			}
			return b.String(), true
		}
		switch {
		case strings.HasPrefix(line[i:], "//"):
			return b.String(), false
		case strings.HasPrefix(line[i:], "/*"):
			inComment = true
			i += 2
		case line[i] == '"' || line[i] == '\'':
			quote := line[i]
			i++
			for i < len(line) {
				if line[i] == '\\' {
					i += 2
					continue
				}
				if line[i] == quote {
					i++
					break
				}
				i++
			}
			b.WriteByte('_')
		default:
			b.WriteByte(line[i])
			i++
		}
	}
	return b.String(), inComment
}

func cHasHeaderComment(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "//")
	}
	return false
}
