// Package log provides simple leveled logging for debug-tools itself.
//
// This is the application log of the CLI and its helpers (configuration
// loading, benchmarks, file following). It is deliberately separate from
// the debuglog package, whose output is the user's debug stream: anything
// written here goes through its own writers and never mixes with a
// DebugLogger's stream or file.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Example Usage
//
//	log.Infof("Loaded %d logger profiles", len(cfg.Loggers))
//	log.SetVerbose(true)
//	log.Debugf("Effective mask for %s: %#x", name, mask)
//
// Output control:
//
//	log.SetForceStdErr(true)       // Send all logs to stderr
//	log.SetOutput(&buf, &errBuf)   // Redirect, mostly for tests
//
// Writes are serialized, so the package can be used from the follower
// goroutine and the main goroutine at the same time.
package log
