package conventions

import (
	"fmt"
	"regexp"
	"strings"
)

// BranchCategories is the fixed set of branch prefix categories. There are
// exactly four; the long-lived branches (main, develop) are not prefixed.
var BranchCategories = []string{"feature", "bugfix", "release", "hotfix"}

var (
	slugRe    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	versionRe = regexp.MustCompile(`^v?\d+(\.\d+)*$`)
)

// Long-lived branches that are exempt from the category/slug pattern.
var permanentBranches = map[string]bool{
	"main":    true,
	"master":  true,
	"develop": true,
}

// LintBranchName checks a branch name against the organization's branching
// conventions: <category>/<slug> with a lower-kebab-case slug. Release
// branches may use a dotted version as the slug.
func LintBranchName(name string) []Problem {
	if permanentBranches[name] {
		return nil
	}

	category, slug, found := strings.Cut(name, "/")
	if !found {
		return []Problem{{Message: fmt.Sprintf(
			"branch %q has no category prefix (expected one of: %s)",
			name, strings.Join(BranchCategories, "/, ")+"/",
		)}}
	}

	var problems []Problem
	if !isBranchCategory(category) {
		problems = append(problems, Problem{Message: fmt.Sprintf(
			"unknown branch category %q (allowed: %s)",
			category, strings.Join(BranchCategories, ", "),
		)})
	}
	switch {
	case slug == "":
		problems = append(problems, Problem{Message: "branch name has an empty slug"})
	case category == "release" && versionRe.MatchString(slug):
		// release/1.2.0 is fine.
	case !slugRe.MatchString(slug):
		problems = append(problems, Problem{Message: fmt.Sprintf(
			"branch slug %q is not lower-kebab-case", slug,
		)})
	}
	return problems
}

func isBranchCategory(c string) bool {
	for _, allowed := range BranchCategories {
		if c == allowed {
			return true
		}
	}
	return false
}
