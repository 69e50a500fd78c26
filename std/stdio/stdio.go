// Package stdio implements printf/scanf style formatting, character
// output and file handles directly on a sys.Backend.
//
// Every byte a format call emits is its own write call, and every line
// the input engine reads is fetched one byte per read call, so nothing
// is ever buffered in user space. A Stdio value is not safe for
// concurrent use.
package stdio

import (
	"log/slog"

	"j5.nz/rawio/std/mem"
	"j5.nz/rawio/std/sys"
)

const (
	// MaxLine bounds a %s input line, terminator included.
	MaxLine = 255

	// DefaultPerm is the mode passed to open; the kernel applies umask.
	DefaultPerm = 0o666
)

// Config selects the collaborators of a Stdio. Zero fields take defaults.
type Config struct {
	// Backend defaults to sys.Kernel.
	Backend sys.Backend
	// Reclaim defaults to mem.Default.
	Reclaim *mem.List
	// MaxLine defaults to MaxLine.
	MaxLine int
	// Logger defaults to a logger that discards everything.
	Logger *slog.Logger
}

type Stdio struct {
	backend sys.Backend
	reclaim *mem.List
	maxLine int
	logger  *slog.Logger

	one [1]byte
}

func New(config Config) *Stdio {
	s := &Stdio{
		backend: config.Backend,
		reclaim: config.Reclaim,
		maxLine: config.MaxLine,
		logger:  config.Logger,
	}
	if s.backend == nil {
		s.backend = sys.Kernel{}
	}
	if s.reclaim == nil {
		s.reclaim = mem.Default
	}
	if s.maxLine <= 0 {
		s.maxLine = MaxLine
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Default writes to the process's own descriptors through the kernel.
var Default = New(Config{})

func (s *Stdio) Backend() sys.Backend {
	return s.backend
}

func Printf(format string, args ...any) (int, error) {
	return Default.Printf(format, args...)
}

func Fprintf(fd int, format string, args ...any) (int, error) {
	return Default.Fprintf(fd, format, args...)
}

func Scanf(format string, args ...any) (int, error) {
	return Default.Scanf(format, args...)
}

func Puts(str string) error {
	return Default.Puts(str)
}

func Putchar(c byte) error {
	return Default.Putchar(c)
}

func Putc(c byte, fd int) error {
	return Default.Putc(c, fd)
}

func Open(path, mode string) (*File, error) {
	return Default.Open(path, mode)
}

func Rename(oldPath, newPath string) error {
	return Default.Rename(oldPath, newPath)
}

func Exit(status int) {
	Default.Exit(status)
}
