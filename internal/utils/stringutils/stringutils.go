package stringutils

import "strings"

// SplitLines splits a string into lines. Unlike strings.Split, a trailing
// newline does not produce a final empty element, and an empty input yields
// nil.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// ParseSubjectBody parses the subject and body from a multiline string.
// The subject is the first line of the string, and the body is the rest.
// Newlines surrounding the body are trimmed.
func ParseSubjectBody(s string) (subject string, body string) {
	subject, body, _ = strings.Cut(strings.Trim(s, "\n"), "\n")
	return strings.Trim(subject, "\n"), strings.Trim(body, "\n")
}
