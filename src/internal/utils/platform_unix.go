//go:build unix

package utils

import "golang.org/x/sys/unix"

// IsCygwin reports whether the kernel identifies itself as Cygwin.
func IsCygwin() bool {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return false
	}
	return isCygwinSysname(unix.ByteSliceToString(uts.Sysname[:]))
}
