//go:build !unix

package utils

import "os"

// IsCygwin reports whether the process runs inside a Cygwin shell. Native
// Windows binaries cannot ask the kernel, so the shell's OSTYPE is used.
func IsCygwin() bool {
	return isCygwinSysname(os.Getenv("OSTYPE"))
}
