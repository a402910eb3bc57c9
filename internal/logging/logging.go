// Package logging routes the standard logger to a per-command debug file.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultDir = "logs"

	// MaxSize is the size above which an existing log is rotated on startup.
	MaxSize = 10 << 20
)

// Setup directs log output to <dir>/<name>.log when debug is set and
// discards it otherwise. The returned file is nil when logging is disabled;
// the caller closes it on exit. Output never goes to stdout or stderr, which
// belong to the terminal.
func Setup(dir, name string, debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	path := filepath.Join(dir, name+".log")
	if err := rotate(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.SetPrefix(name + ": ")
	return f, nil
}

func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "stat log file %s", path)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := path[:len(path)-len(ext)] + "-" + time.Now().Format("20060102-150405") + ext
	return errors.Wrap(os.Rename(path, rotated), "rotate log file")
}
