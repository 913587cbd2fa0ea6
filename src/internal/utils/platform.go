package utils

import "strings"

func isCygwinSysname(sysname string) bool {
	return strings.Contains(strings.ToUpper(sysname), "CYGWIN")
}
