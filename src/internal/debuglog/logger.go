package debuglog

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/maksimkurb/debug-tools/src/internal/errors"
	"github.com/maksimkurb/debug-tools/src/internal/log"
	"github.com/maksimkurb/debug-tools/src/internal/utils"
)

// ErrNotImplemented is returned by Log and Clean when the logger has no sink.
var ErrNotImplemented = errors.NewNotImplementedError("no output strategy selected for the debug logger")

// Mode identifies the active output strategy.
type Mode int

const (
	ModeNone Mode = iota
	ModeStream
	ModeFile
	ModeCustom
)

func (m Mode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeFile:
		return "file"
	case ModeCustom:
		return "custom"
	default:
		return "none"
	}
}

// Clock supplies time readings. Readings from time.Now carry a monotonic
// component, which is what elapsed times are computed from.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config holds the construction parameters of a Logger.
type Config struct {
	// Mask selects the enabled categories. Zero disables all output; use
	// AllCategories to enable everything.
	Mask Mask
	// Name prefixes every line (default: base name of the executable).
	Name string
	// OutputFile switches the logger to file mode when set.
	OutputFile string
	// Stdout is the stream used in stream mode (default: os.Stdout).
	Stdout io.Writer
	// Clock is the time source (default: time.Now).
	Clock Clock
	// DetectCygwin reports whether drive-letter paths need the /cygdrive/
	// rewrite (default: utils.IsCygwin).
	DetectCygwin func() bool
}

// Logger is a category-filtered debug logger. See the package documentation.
type Logger struct {
	mask       Mask
	name       string
	stdout     io.Writer
	clock      Clock
	cygwin     bool
	sink       Sink
	mode       Mode
	outputFile string
	lastTick   time.Time
	openFile   func(path string) (*FileSink, error)
}

// New creates a logger writing to stdout, or to outputFile when it is not
// empty. The file is opened right away and any error is returned.
func New(mask Mask, name, outputFile string) (*Logger, error) {
	return NewWithConfig(Config{
		Mask:       mask,
		Name:       name,
		OutputFile: outputFile,
	})
}

// NewWithConfig creates a logger in stream or file mode from cfg.
func NewWithConfig(cfg Config) (*Logger, error) {
	l := newLogger(cfg)

	if err := l.SetOutputFile(cfg.OutputFile); err != nil {
		return nil, err
	}

	return l, nil
}

// NewCustom creates a logger that emits through sink. Only the mask, name
// and clock of cfg are used. With a nil sink, Log and Clean return
// ErrNotImplemented until SetOutputFile selects a built-in strategy.
func NewCustom(cfg Config, sink Sink) *Logger {
	l := newLogger(cfg)
	if sink != nil {
		l.sink = sink
		l.mode = ModeCustom
	}
	return l
}

func newLogger(cfg Config) *Logger {
	if cfg.Name == "" {
		cfg.Name = filepath.Base(os.Args[0])
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}
	if cfg.DetectCygwin == nil {
		cfg.DetectCygwin = utils.IsCygwin
	}

	return &Logger{
		mask:     cfg.Mask,
		name:     cfg.Name,
		stdout:   cfg.Stdout,
		clock:    cfg.Clock,
		cygwin:   cfg.DetectCygwin(),
		lastTick: cfg.Clock.Now(),
		openFile: OpenFileSink,
	}
}

// Mask returns the enabled categories.
func (l *Logger) Mask() Mask {
	return l.mask
}

// SetMask replaces the enabled categories.
func (l *Logger) SetMask(mask Mask) {
	l.mask = mask
}

// Enabled reports whether a message of category would be written.
func (l *Logger) Enabled(category Mask) bool {
	return l.mask.Has(category)
}

// Name returns the name every line is prefixed with.
func (l *Logger) Name() string {
	return l.name
}

// Mode returns the active output strategy.
func (l *Logger) Mode() Mode {
	return l.mode
}

// OutputFile returns the last configured log file path, after any Cygwin
// rewrite. It stays set after switching back to the stream so the file
// can still be cleared.
func (l *Logger) OutputFile() string {
	return l.outputFile
}

// Log writes the concatenation of parts, prefixed with the time of day and
// the time elapsed since the previous call, when category is enabled.
// The elapsed-time baseline advances on every call, including filtered ones.
func (l *Logger) Log(category Mask, parts ...any) error {
	if l.sink == nil {
		return ErrNotImplemented
	}

	now := l.clock.Now()
	elapsed := now.Sub(l.lastTick)
	l.lastTick = now

	if !l.mask.Has(category) {
		return nil
	}
	if elapsed < 0 {
		elapsed = 0
	}

	var prefix string
	if p, ok := l.sink.(prefixer); ok {
		prefix = p.prefix(l.name, now, elapsed)
	} else {
		prefix = streamPrefix(l.name, now, elapsed)
	}

	return l.emit(prefix + concat(parts))
}

// Clean writes the concatenation of parts with no prefix when category is
// enabled. In file mode the backend still adds its timestamp.
func (l *Logger) Clean(category Mask, parts ...any) error {
	if l.sink == nil {
		return ErrNotImplemented
	}
	if !l.mask.Has(category) {
		return nil
	}

	return l.emit(concat(parts))
}

// InsertEmptyLine writes an empty line when category is enabled.
func (l *Logger) InsertEmptyLine(category Mask) error {
	return l.Clean(category, "")
}

func (l *Logger) emit(line string) error {
	if err := l.sink.Emit(line); err != nil {
		return errors.NewIOError("failed to write debug output", err)
	}
	return nil
}

// SetOutputFile appends all further output to path, or writes it to the
// stream when path is empty. On Cygwin drive-letter paths are rewritten
// under /cygdrive/. If the file cannot be opened the previous output
// strategy stays active and the error is returned.
func (l *Logger) SetOutputFile(path string) error {
	if path == "" {
		l.closeFileSink()
		l.sink = NewStreamSink(l.stdout)
		l.mode = ModeStream
		return nil
	}

	resolved := utils.ResolveLogPath(path, l.cygwin)
	sink, err := l.openFile(resolved)
	if err != nil {
		return errors.NewIOError("failed to open log file "+resolved, err)
	}

	l.closeFileSink()
	l.sink = sink
	l.mode = ModeFile
	l.outputFile = resolved

	log.Debugf("[%s] Logging debug output to the file %s", l.name, resolved)
	return nil
}

// ClearLogFile truncates the configured log file. It does nothing when no
// file was ever configured.
func (l *Logger) ClearLogFile() error {
	if l.outputFile == "" {
		return nil
	}

	log.Debugf("Cleaning the file: %s", l.outputFile)

	file, err := os.OpenFile(l.outputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.NewIOError("failed to clear log file "+l.outputFile, err)
	}
	if err := file.Close(); err != nil {
		return errors.NewIOError("failed to clear log file "+l.outputFile, err)
	}
	return nil
}

// Close releases the log file in file mode. Writes after Close fail.
func (l *Logger) Close() error {
	fs, ok := l.sink.(*FileSink)
	if !ok {
		return nil
	}
	if err := fs.Close(); err != nil {
		return errors.NewIOError("failed to close log file "+fs.Path(), err)
	}
	return nil
}

func (l *Logger) closeFileSink() {
	if fs, ok := l.sink.(*FileSink); ok {
		utils.CloseOrWarn(fs)
	}
}
