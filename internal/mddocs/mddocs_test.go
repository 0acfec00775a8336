package mddocs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRelativeLinkTargets(t *testing.T) {
	dir := t.TempDir()
	readme := writeFile(t, dir, "README.md",
		"# Profile\n\nSee [the guide](nhanced-tech-github-organization.md).\n")

	issues, err := CheckFile(readme)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Contains(t, issues[0].Message, `"nhanced-tech-github-organization.md" does not exist`)
	require.Equal(t, 3, issues[0].Line)

	// The sibling file coming into existence resolves the issue.
	writeFile(t, dir, "nhanced-tech-github-organization.md",
		"# Nhanced.Tech GitHub Organization\n")
	issues, err = CheckFile(readme)
	require.NoError(t, err)
	require.Empty(t, issues)
}

func TestRemoteURLsAreSkipped(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md",
		"# Doc\n\n[site](https://example.com/page) and ![logo](https://example.com/logo.png)\n")

	issues, err := CheckFile(path)
	require.NoError(t, err)
	require.Empty(t, issues)
}

func TestLocalImageTargets(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "# Doc\n\n![logo](assets/logo.png)\n")

	issues, err := CheckFile(path)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Contains(t, issues[0].Message, "image target")

	writeFile(t, dir, "assets/logo.png", "png")
	issues, err = CheckFile(path)
	require.NoError(t, err)
	require.Empty(t, issues)
}

func TestTOCEntries(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "guide.md", `# Guide

- [Memory Management](#memory-management)
- [Missing Section](#missing-section)

## Memory Management

Text.
`)

	issues, err := CheckFile(path)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Contains(t, issues[0].Message, `"Missing Section"`)
}

func TestUnterminatedFence(t *testing.T) {
	dir := t.TempDir()
	balanced := writeFile(t, dir, "ok.md", "# Ok\n\n```c\nint x;\n```\n")
	issues, err := CheckFile(balanced)
	require.NoError(t, err)
	require.Empty(t, issues)

	broken := writeFile(t, dir, "broken.md", "# Broken\n\n```c\nint x;\n")
	issues, err = CheckFile(broken)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, "unterminated code fence", issues[0].Message)
	require.Equal(t, 3, issues[0].Line)
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Readme\n\n[gone](missing.md)\n")
	writeFile(t, dir, "sub/notes.md", "# Notes\n")
	writeFile(t, dir, "drafts/wip.md", "# WIP\n\n[gone](also-missing.md)\n")

	issues, err := CheckDir(dir, []string{"drafts/**"})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Contains(t, issues[0].Path, "README.md")
}

func TestSlugify(t *testing.T) {
	for _, tt := range []struct {
		heading string
		slug    string
	}{
		{"Memory Management", "memory-management"},
		{"Error Handling & Logging", "error-handling--logging"},
		{"C99 / C11", "c99--c11"},
		{"snake_case", "snake_case"},
	} {
		if got := Slugify(tt.heading); got != tt.slug {
			t.Errorf("Slugify(%q) = %q, want %q", tt.heading, got, tt.slug)
		}
	}
}
