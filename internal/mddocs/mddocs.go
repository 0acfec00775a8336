// Package mddocs verifies the integrity of a documentation tree: relative
// links point at files that exist, tables of contents agree with headings,
// and code fences are balanced.
package mddocs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"emperror.dev/errors"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/russross/blackfriday/v2"
	"github.com/sirupsen/logrus"
)

type Issue struct {
	Path    string `json:"path"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// CheckDir walks a directory tree and checks every markdown file, skipping
// paths matching any of the exclude globs.
func CheckDir(dir string, exclude []string) ([]Issue, error) {
	var issues []Issue
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		for _, pattern := range exclude {
			if match, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); match {
				return nil
			}
		}
		fileIssues, err := CheckFile(path)
		if err != nil {
			return err
		}
		issues = append(issues, fileIssues...)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check docs under %q", dir)
	}
	return issues, nil
}

// CheckFile checks a single markdown document.
func CheckFile(path string) ([]Issue, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", path)
	}
	logrus.WithField("path", path).Debug("checking document")
	return Check(path, src), nil
}

// Check runs every document check against markdown source. The path is used
// for reporting and for resolving relative link targets.
func Check(path string, src []byte) []Issue {
	var issues []Issue

	doc := parse(src)
	issues = append(issues, checkLinks(path, src, doc)...)
	issues = append(issues, checkTOC(path, src, doc)...)
	issues = append(issues, checkFences(path, src)...)

	return issues
}

func parse(src []byte) *blackfriday.Node {
	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	return md.Parse(src)
}

// checkLinks verifies that every relative link and local image reference
// resolves to an existing file next to the document.
func checkLinks(path string, src []byte, doc *blackfriday.Node) []Issue {
	var issues []Issue
	dir := filepath.Dir(path)

	doc.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering {
			return blackfriday.GoToNext
		}
		var dest, kind string
		switch node.Type {
		case blackfriday.Link:
			dest, kind = string(node.LinkData.Destination), "link"
		case blackfriday.Image:
			dest, kind = string(node.LinkData.Destination), "image"
		default:
			return blackfriday.GoToNext
		}
		if dest == "" || strings.HasPrefix(dest, "#") ||
			strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
			// Anchors are handled by the TOC check; remote URLs are never
			// fetched.
			return blackfriday.GoToNext
		}
		target := dest
		if idx := strings.IndexAny(target, "#?"); idx >= 0 {
			target = target[:idx]
		}
		if target == "" {
			return blackfriday.GoToNext
		}
		resolved := filepath.Join(dir, filepath.FromSlash(target))
		if _, err := os.Stat(resolved); err != nil {
			issues = append(issues, Issue{
				Path:    path,
				Line:    findLine(src, dest),
				Message: fmt.Sprintf("%s target %q does not exist", kind, dest),
			})
		}
		return blackfriday.GoToNext
	})
	return issues
}

// checkTOC verifies that every intra-document anchor link matches a heading
// in the same file, compared by GitHub-style anchor slug.
func checkTOC(path string, src []byte, doc *blackfriday.Node) []Issue {
	slugs := map[string]bool{}
	doc.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && node.Type == blackfriday.Heading {
			slugs[Slugify(nodeText(node))] = true
		}
		return blackfriday.GoToNext
	})

	var issues []Issue
	doc.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering || node.Type != blackfriday.Link {
			return blackfriday.GoToNext
		}
		dest := string(node.LinkData.Destination)
		if !strings.HasPrefix(dest, "#") {
			return blackfriday.GoToNext
		}
		anchor := strings.TrimPrefix(dest, "#")
		if !slugs[anchor] {
			issues = append(issues, Issue{
				Path:    path,
				Line:    findLine(src, dest),
				Message: fmt.Sprintf("table of contents entry %q has no matching heading", nodeText(node)),
			})
		}
		return blackfriday.GoToNext
	})
	return issues
}

// checkFences verifies that every opening code fence is closed: the number
// of ``` delimiters in the file must be even.
func checkFences(path string, src []byte) []Issue {
	count := 0
	lastOpen := 0
	for i, line := range strings.Split(string(src), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			count++
			if count%2 == 1 {
				lastOpen = i + 1
			}
		}
	}
	if count%2 != 0 {
		return []Issue{{
			Path:    path,
			Line:    lastOpen,
			Message: "unterminated code fence",
		}}
	}
	return nil
}

// Slugify converts heading text to a GitHub-style anchor slug.
func Slugify(heading string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(heading) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
			b.WriteRune(ch)
		case ch == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// nodeText collects the literal text beneath a node.
func nodeText(node *blackfriday.Node) string {
	var b strings.Builder
	node.Walk(func(n *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && (n.Type == blackfriday.Text || n.Type == blackfriday.Code) {
			b.Write(n.Literal)
		}
		return blackfriday.GoToNext
	})
	return b.String()
}

// findLine locates the first line containing the given literal, for issue
// reporting. Blackfriday's AST carries no positions, so this is a best
// effort; 0 means the location is unknown.
func findLine(src []byte, literal string) int {
	for i, line := range strings.Split(string(src), "\n") {
		if strings.Contains(line, literal) {
			return i + 1
		}
	}
	return 0
}
