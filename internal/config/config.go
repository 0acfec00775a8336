package config

import (
	"path/filepath"

	"emperror.dev/errors"
	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

type Check struct {
	// Maximum number of lines allowed in a single source file.
	MaxFileLines int
	// Maximum number of lines allowed in a single function (signature line
	// through closing delimiter).
	MaxFuncLines int
	// Maximum number of columns allowed on a single line.
	MaxLineLength int
	// If true, every source file must start with a comment block.
	RequireFileHeader bool
	// If true, hard tabs in indentation are allowed. The style guides forbid
	// them by default.
	AllowTabs bool
	// Glob patterns (doublestar syntax) selecting files to scan. An empty
	// list means every recognized source file.
	Include []string
	// Glob patterns for files to skip even if they match Include.
	Exclude []string
	// Rule IDs that should not run at all.
	Disabled []string
	// Per-rule severity overrides ("error" or "warning"), keyed by rule ID.
	Severity map[string]string
}

type Commit struct {
	// Maximum length of the commit subject line.
	SubjectLimit int
	// Maximum length of any commit body line.
	BodyLineLimit int
}

type Docs struct {
	// Glob patterns for markdown files to skip.
	Exclude []string
}

var Style = struct {
	Check  Check
	Commit Commit
	Docs   Docs
}{
	Check: Check{
		MaxFileLines:      500,
		MaxFuncLines:      50,
		MaxLineLength:     100,
		RequireFileHeader: true,
	},
	Commit: Commit{
		SubjectLimit:  72,
		BodyLineLimit: 100,
	},
}

// Load initializes the configuration values.
// It may optionally be called with a list of additional paths to check for the
// config file.
// Returns a boolean indicating whether or not a config file was loaded and an
// error if one occurred.
func Load(paths []string) (bool, error) {
	config := viper.New()

	// Viper figures out the format from the file extension, so a project can
	// keep stylecheck.yaml, stylecheck.toml, or stylecheck.json.
	config.SetConfigName("stylecheck")

	config.AddConfigPath(".")
	config.AddConfigPath(filepath.Join(xdg.ConfigHome, "stylecheck"))
	// Additional custom paths. The primary use case is repository-local
	// configuration (e.g., $REPO/.git/stylecheck/stylecheck.yaml).
	for _, path := range paths {
		config.AddConfigPath(path)
	}

	config.SetEnvPrefix("STYLECHECK")
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return false, nil
		}
		return false, err
	}

	if err := config.Unmarshal(&Style); err != nil {
		return true, errors.Wrap(err, "failed to read stylecheck configs")
	}

	return true, nil
}
