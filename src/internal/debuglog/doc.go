// Package debuglog implements a small category-filtered debug logger.
//
// A Logger is created for one subsystem with a bitmask of enabled
// categories and a name. Every call to Log carries a caller-defined
// category; the message is written only when the category shares a bit
// with the logger's mask. Each formatted line carries the time of day and
// the time elapsed since the previous call to the logger.
//
// Output goes to exactly one Sink at a time:
//
//   - StreamSink writes each line to an io.Writer (stdout by default)
//   - FileSink appends to a file through the standard library log backend,
//     which adds its own timestamp in front of every line
//
// SetOutputFile switches between the two at runtime. A Logger built with
// NewCustom takes any Sink; one built without a sink reports
// ErrNotImplemented from Log and Clean.
//
// # Example Usage
//
//	const (
//	    catErrors debuglog.Mask = 1 << iota
//	    catTrace
//	)
//
//	dbg, err := debuglog.New(catErrors|catTrace, "plugin", "")
//	if err != nil {
//	    return err
//	}
//	defer dbg.Close()
//
//	dbg.Log(catTrace, "loaded ", n, " entries")
//	// [plugin] 11:13:51:0582059 1.20e-05 loaded 3 entries
//
//	dbg.SetOutputFile("/tmp/plugin.log") // switch to file mode
//	dbg.ClearLogFile()                   // truncate it
//	dbg.SetOutputFile("")                // back to stdout
//
// A Logger holds no locks. It is meant to be used from one goroutine;
// callers sharing it must serialize access themselves.
package debuglog
