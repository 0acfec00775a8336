package scanner

import "path/filepath"

type Language string

const (
	LanguageC      Language = "c"
	LanguagePython Language = "python"
)

// DetectLanguage determines the language of a file from its extension.
// The second return value is false for files the scanner does not understand.
func DetectLanguage(path string) (Language, bool) {
	switch filepath.Ext(path) {
	case ".c", ".h":
		return LanguageC, true
	case ".py":
		return LanguagePython, true
	default:
		return "", false
	}
}
