package debuglog

import (
	"io"
	stdlog "log"
	"os"
	"time"
)

// Sink is the emission strategy of a Logger. Emit receives one fully
// formatted line without a trailing newline.
type Sink interface {
	Emit(line string) error
}

// prefixer is implemented by sinks that format the line prefix themselves.
// Sinks without it get the stream prefix.
type prefixer interface {
	prefix(name string, now time.Time, elapsed time.Duration) string
}

// StreamSink writes each line to a stream with a single Write call.
type StreamSink struct {
	w io.Writer
}

// NewStreamSink creates a sink for w. A nil writer means os.Stdout.
func NewStreamSink(w io.Writer) *StreamSink {
	if w == nil {
		w = os.Stdout
	}
	return &StreamSink{w: w}
}

func (s *StreamSink) Emit(line string) error {
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

func (s *StreamSink) prefix(name string, now time.Time, elapsed time.Duration) string {
	return streamPrefix(name, now, elapsed)
}

// FileSink appends lines to a file through a standard library logger,
// which stamps each line with the date and time down to microseconds.
type FileSink struct {
	path    string
	file    *os.File
	backend *stdlog.Logger
	closed  bool
}

// OpenFileSink opens path for appending, creating it when missing.
func OpenFileSink(path string) (*FileSink, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	return &FileSink{
		path:    path,
		file:    file,
		backend: stdlog.New(file, "", stdlog.LstdFlags|stdlog.Lmicroseconds),
	}, nil
}

// Path returns the file the sink appends to.
func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) Emit(line string) error {
	return s.backend.Output(2, line)
}

func (s *FileSink) prefix(name string, now time.Time, elapsed time.Duration) string {
	return filePrefix(name, now, elapsed)
}

// Close closes the underlying file. Closing twice is a no-op.
func (s *FileSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}
