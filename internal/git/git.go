package git

import (
	"os/exec"
	"path"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

// Repo is a handle to a local git repository, shelling out to the git binary
// for every operation.
type Repo struct {
	repoDir string
	log     logrus.FieldLogger
}

func OpenRepo(repoDir string) (*Repo, error) {
	r := &Repo{
		repoDir,
		logrus.WithFields(logrus.Fields{"repo": path.Base(repoDir)}),
	}
	return r, nil
}

func (r *Repo) Dir() string {
	return r.repoDir
}

func (r *Repo) GitDir() string {
	return path.Join(r.repoDir, ".git")
}

func (r *Repo) Git(args ...string) (string, error) {
	startTime := time.Now()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.repoDir
	out, err := cmd.Output()
	log := r.log.WithField("duration", time.Since(startTime))
	if err != nil {
		stderr := "<no output>"
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			stderr = string(exitError.Stderr)
		}
		log.Debugf("git %s failed: %s: %s", args, err, stderr)
		return strings.TrimSpace(string(out)), errors.Wrapf(err, "git %s", args[0])
	}
	log.Debugf("git %s", args)
	return strings.TrimSpace(string(out)), nil
}

// CurrentBranchName returns the name of the branch that HEAD points to.
func (r *Repo) CurrentBranchName() (string, error) {
	name, err := r.Git("symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", errors.WrapIf(err, "failed to determine current branch (detached HEAD?)")
	}
	return name, nil
}

// HeadCommitMessage returns the full message of the commit at HEAD.
func (r *Repo) HeadCommitMessage() (string, error) {
	msg, err := r.Git("log", "-1", "--format=%B")
	if err != nil {
		return "", errors.WrapIf(err, "failed to read HEAD commit message")
	}
	return msg, nil
}
