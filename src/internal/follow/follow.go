// Package follow streams a growing log file to a writer, like tail -f.
//
// It is meant for DebugLogger file mode: the follower prints whatever is
// appended, and starts over from the beginning when the file is cleared.
package follow

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/maksimkurb/debug-tools/src/internal/log"
	"github.com/maksimkurb/debug-tools/src/internal/utils"
)

// fingerprintSize is the number of leading bytes compared between drains to
// notice a file that was cleared and then grew past the old offset.
const fingerprintSize = 64

// Follower copies new content of a file to a writer.
type Follower struct {
	path   string
	out    io.Writer
	offset int64
	head   []byte
	info   os.FileInfo
}

// New creates a follower for path. With fromEnd set, content present
// before the first Drain is skipped.
func New(path string, out io.Writer, fromEnd bool) (*Follower, error) {
	f := &Follower{
		path: filepath.Clean(path),
		out:  out,
	}

	if fromEnd {
		file, err := os.Open(f.path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to open %s: %v", f.path, err)
		}
		if err == nil {
			defer utils.CloseOrWarn(file)

			info, err := file.Stat()
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %v", f.path, err)
			}
			f.offset = info.Size()
			f.info = info
			if f.head, err = readHead(file, min(f.offset, fingerprintSize)); err != nil {
				return nil, fmt.Errorf("failed to read %s: %v", f.path, err)
			}
		}
	}

	return f, nil
}

// Offset returns the number of bytes of the file already copied.
func (f *Follower) Offset() int64 {
	return f.offset
}

// Drain copies everything appended since the last call. A file that was
// truncated or replaced is copied from the start. A missing file is not an
// error.
func (f *Follower) Drain() error {
	file, err := os.Open(f.path)
	if os.IsNotExist(err) {
		f.reset()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", f.path, err)
	}
	defer utils.CloseOrWarn(file)

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %v", f.path, err)
	}

	rewritten, err := f.rewritten(file, info)
	if err != nil {
		return fmt.Errorf("failed to read %s: %v", f.path, err)
	}
	if rewritten {
		log.Debugf("File %s was truncated, following from the start", f.path)
		f.reset()
	}
	f.info = info

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek %s: %v", f.path, err)
	}

	n, err := io.Copy(f.out, file)
	f.offset += n
	if err != nil {
		return fmt.Errorf("failed to copy %s: %v", f.path, err)
	}

	if want := min(f.offset, fingerprintSize); int64(len(f.head)) < want {
		if f.head, err = readHead(file, want); err != nil {
			return fmt.Errorf("failed to read %s: %v", f.path, err)
		}
	}
	return nil
}

// rewritten reports whether the content already copied is no longer at the
// start of the file: it shrank, it is another file, or its leading bytes
// changed.
func (f *Follower) rewritten(file *os.File, info os.FileInfo) (bool, error) {
	if f.offset == 0 {
		return false, nil
	}
	if info.Size() < f.offset {
		return true, nil
	}
	if f.info != nil && !os.SameFile(f.info, info) {
		return true, nil
	}

	head, err := readHead(file, int64(len(f.head)))
	if err != nil {
		return false, err
	}
	return !bytes.Equal(head, f.head), nil
}

func (f *Follower) reset() {
	f.offset = 0
	f.head = nil
	f.info = nil
}

func readHead(r io.ReaderAt, n int64) ([]byte, error) {
	buf := make([]byte, n)
	read, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf[:read], nil
}

// Run drains the file once and then on every change until ctx is done.
// The parent directory is watched so the file may be created, cleared or
// replaced while following.
func (f *Follower) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer utils.CloseOrWarn(watcher)

	dir := filepath.Dir(f.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Debugf("Watching %s for changes of %s", dir, filepath.Base(f.path))

	if err := f.Drain(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				log.Debugf("File %s was removed, waiting for it to reappear", f.path)
				f.reset()
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := f.Drain(); err != nil {
					return err
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("File watcher error: %v", err)
		}
	}
}
