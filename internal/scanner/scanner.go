package scanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"emperror.dev/errors"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/nhanced-tech/stylecheck/internal/utils/stringutils"
	"github.com/sirupsen/logrus"
)

type IdentifierKind string

const (
	KindFunction IdentifierKind = "function"
	KindMacro    IdentifierKind = "macro"
	KindConstant IdentifierKind = "constant"
	KindTypedef  IdentifierKind = "typedef"
	KindClass    IdentifierKind = "class"
)

type Identifier struct {
	Name string
	Kind IdentifierKind
	// 1-based line of the declaration.
	Line int
}

type Function struct {
	Name string
	// 1-based inclusive line span of the definition.
	StartLine int
	EndLine   int
	// Whether the first statement of the body is a string literal.
	// Only meaningful for Python.
	HasDocstring bool
	// True for Python class definitions, which share the docstring handling
	// but are not functions for length purposes.
	IsClass bool
}

// FileFacts is the lightweight lexical summary of a single source file that
// rules are evaluated against.
type FileFacts struct {
	Path     string
	Language Language
	Lines    []string
	// Whether the first non-blank line of the file starts a comment.
	HasHeaderComment bool
	Functions        []Function
	Identifiers      []Identifier
}

func (f *FileFacts) LineCount() int {
	return len(f.Lines)
}

// Scanner walks directories and produces FileFacts for each recognized
// source file.
type Scanner struct {
	// Include restricts scanning to paths matching at least one pattern
	// (doublestar syntax, matched against slash-separated relative paths).
	// Empty means everything.
	Include []string
	// Exclude skips matching paths even when included.
	Exclude []string

	log logrus.FieldLogger
}

func New(include, exclude []string) *Scanner {
	return &Scanner{
		Include: include,
		Exclude: exclude,
		log:     logrus.WithField("component", "scanner"),
	}
}

// Walk scans every path in order. Directories are walked recursively; files
// are scanned directly (ignoring the include/exclude filters, on the theory
// that a file named explicitly on the command line should always be checked).
func (s *Scanner) Walk(paths []string) ([]*FileFacts, error) {
	var facts []*FileFacts
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot scan %q", root)
		}
		if !info.IsDir() {
			f, err := s.ScanFile(root)
			if err != nil {
				return nil, err
			}
			if f != nil {
				facts = append(facts, f)
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			rel = filepath.ToSlash(rel)
			if d.IsDir() {
				// Never descend into VCS metadata.
				if d.Name() == ".git" {
					return filepath.SkipDir
				}
				return nil
			}
			if !s.selected(rel) {
				return nil
			}
			f, err := s.ScanFile(path)
			if err != nil {
				return err
			}
			if f != nil {
				facts = append(facts, f)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan %q", root)
		}
	}
	return facts, nil
}

func (s *Scanner) selected(rel string) bool {
	for _, pattern := range s.Exclude {
		if match, _ := doublestar.Match(pattern, rel); match {
			return false
		}
	}
	if len(s.Include) == 0 {
		return true
	}
	for _, pattern := range s.Include {
		if match, _ := doublestar.Match(pattern, rel); match {
			return true
		}
	}
	return false
}

// ScanFile reads and scans a single file. It returns (nil, nil) for files in
// languages the scanner does not recognize.
func (s *Scanner) ScanFile(path string) (*FileFacts, error) {
	lang, ok := DetectLanguage(path)
	if !ok {
		return nil, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", path)
	}
	s.log.WithField("path", path).Debug("scanning file")
	return Scan(path, lang, string(src)), nil
}

// Scan extracts lexical facts from source text.
func Scan(path string, lang Language, src string) *FileFacts {
	facts := &FileFacts{
		Path:     path,
		Language: lang,
		Lines:    stringutils.SplitLines(src),
	}
	switch lang {
	case LanguageC:
		scanC(facts)
	case LanguagePython:
		scanPython(facts)
	}
	return facts
}
