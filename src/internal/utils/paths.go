package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

const cygdriveRoot = "/cygdrive/"

var drivePathRegexp = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// GetAbsolutePath returns path if it was absolute, otherwise joins it with baseDir
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Clean(filepath.Join(baseDir, path))
}

// IsDrivePath reports whether path starts with a Windows drive letter
// followed by a separator, e.g. C:\ or D:/.
func IsDrivePath(path string) bool {
	return drivePathRegexp.MatchString(path)
}

// CygwinPath rewrites a Windows drive-letter path into the Cygwin mount
// convention: C:\Users\x\log.txt becomes /cygdrive/C/Users/x/log.txt.
// The drive letter keeps its case. Any other path is returned unchanged.
func CygwinPath(path string) string {
	if !IsDrivePath(path) {
		return path
	}

	rest := strings.Replace(path, ":", "", 1)
	rest = strings.ReplaceAll(rest, "\\", "/")
	return cygdriveRoot + rest
}

// ResolveLogPath returns the path a log file should be opened at on this
// host. Under Cygwin drive-letter paths are rewritten, elsewhere the path
// is left as given.
func ResolveLogPath(path string, cygwin bool) string {
	if cygwin {
		return CygwinPath(path)
	}
	return path
}
