// Package fsutil handles user-provided file paths.
package fsutil

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// MustReplaceTildeInDir is like ReplaceTildeInDir but panics with an error on
// failure. Meant for paths taken from flags, where failing is the right call.
func MustReplaceTildeInDir(dir string) string {
	dir, err := ReplaceTildeInDir(dir)
	if err != nil {
		panic(err)
	}
	return dir
}

// ReplaceTildeInDir expands a leading "~" or "~user" in dir to the
// corresponding home directory. Paths not starting with "~" are returned
// unchanged.
//
// It returns an error if the home directory cannot be resolved, for instance
// for `~unknown/...`.
func ReplaceTildeInDir(dir string) (string, error) {
	if !strings.HasPrefix(dir, "~") {
		return dir, nil
	}
	userName, rest := dir[1:], ""
	if sepIdx := strings.IndexByte(userName, '/'); sepIdx >= 0 {
		userName, rest = userName[:sepIdx], userName[sepIdx:]
	}
	var homeDir string
	if userName == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return "", errors.Wrapf(err, "failed to expand %q: no home directory", dir)
		}
	} else {
		usr, err := user.Lookup(userName)
		if err != nil {
			return "", errors.Wrapf(err, "failed to expand %q: unknown user %q", dir, userName)
		}
		homeDir = usr.HomeDir
	}
	return filepath.Join(homeDir, rest), nil
}
