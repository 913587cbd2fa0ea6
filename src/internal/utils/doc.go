// Package utils provides general-purpose helpers for debug-tools.
//
// # Components
//
//   - Path utilities: resolve relative paths and rewrite Windows drive-letter
//     paths for Cygwin
//   - Platform probing: detect a Cygwin environment
//   - File utilities: a close helper that logs instead of failing
//   - Bit helpers: list and format the bits set in a category mask
//
// # Example Usage
//
// Path resolution:
//
//	absPath := utils.GetAbsolutePath("logs/plugin.log", "/etc/debug-tools")
//	// Returns: /etc/debug-tools/logs/plugin.log
//
// Cygwin path rewrite:
//
//	utils.CygwinPath(`C:\Users\x\log.txt`)
//	// Returns: /cygdrive/C/Users/x/log.txt
//
// Mask formatting:
//
//	utils.FormatMask(0b101) // "0x5 [bit0 bit2]"
package utils
