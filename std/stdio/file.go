package stdio

import (
	"fmt"
	"io"

	"j5.nz/rawio/std/sys"
)

// File pairs a descriptor with buffering state. Every operation goes
// straight to the descriptor: the buffer fields and the error and EOF
// indicators are reserved for a buffered implementation and nothing
// sets them yet.
type File struct {
	fd         int
	buffer     []byte
	bufferSize uint
	bufferPos  uint
	err        bool
	eof        bool

	s *Stdio
}

var (
	_ io.Reader = (*File)(nil)
	_ io.Writer = (*File)(nil)
	_ io.Closer = (*File)(nil)
)

// ModeFlags maps an fopen mode string to open flags. Only the first two
// characters count, so "rb" is "r" and "w+b" is "w+". Anything that is
// not r, w or a opens read-only.
func ModeFlags(mode string) int {
	if len(mode) == 0 {
		return sys.O_RDONLY
	}
	plus := len(mode) > 1 && mode[1] == '+'
	switch mode[0] {
	case 'r':
		if plus {
			return sys.O_RDWR
		}
		return sys.O_RDONLY
	case 'w':
		if plus {
			return sys.O_RDWR | sys.O_CREAT | sys.O_TRUNC
		}
		return sys.O_WRONLY | sys.O_CREAT | sys.O_TRUNC
	case 'a':
		if plus {
			return sys.O_RDWR | sys.O_CREAT | sys.O_APPEND
		}
		return sys.O_WRONLY | sys.O_CREAT | sys.O_APPEND
	}
	return sys.O_RDONLY
}

// Open opens path with the flags ModeFlags gives for mode. A failed open
// returns the kernel's Errno unchanged.
func (s *Stdio) Open(path, mode string) (*File, error) {
	flags := ModeFlags(mode)
	r := s.backend.Open(path, flags, DefaultPerm)
	if err := r.Err(); err != nil {
		s.logger.Debug("open failed", "path", path, "mode", mode, "flags", flags, "error", err)
		return nil, err
	}
	s.logger.Debug("opened file", "path", path, "mode", mode, "flags", flags, "fd", int(r))
	return &File{fd: int(r), s: s}, nil
}

// Rename renames oldPath to newPath.
func (s *Stdio) Rename(oldPath, newPath string) error {
	err := s.backend.Rename(oldPath, newPath).Err()
	s.logger.Debug("rename", "from", oldPath, "to", newPath, "error", err)
	return err
}

// Fd returns the descriptor, or -1 once the file is closed.
func (f *File) Fd() int {
	return f.fd
}

// Close releases the descriptor. The handle forgets it whether or not
// the call succeeds, so later calls fail with EBADF instead of reaching
// a descriptor the kernel has handed out again.
func (f *File) Close() error {
	if f.fd < 0 {
		return sys.EBADF
	}
	err := f.s.backend.Close(f.fd).Err()
	f.s.logger.Debug("closed file", "fd", f.fd, "error", err)
	f.fd = -1
	return err
}

// Read issues one read call of up to len(p) bytes. End of file is a zero
// count with a nil error, as the kernel reports it.
func (f *File) Read(p []byte) (int, error) {
	if f.fd < 0 {
		return 0, sys.EBADF
	}
	r := f.s.backend.Read(f.fd, p)
	if err := r.Err(); err != nil {
		return 0, err
	}
	return int(r), nil
}

// Write issues one write call for p.
func (f *File) Write(p []byte) (int, error) {
	if f.fd < 0 {
		return 0, sys.EBADF
	}
	r := f.s.backend.Write(f.fd, p)
	if err := r.Err(); err != nil {
		return 0, err
	}
	return int(r), nil
}

// ReadItems reads up to nmemb items of size bytes into p in one call.
func (f *File) ReadItems(p []byte, size, nmemb int) (int, error) {
	n, err := items(len(p), size, nmemb)
	if err != nil {
		return 0, err
	}
	return f.Read(p[:n])
}

// WriteItems writes nmemb items of size bytes from p in one call.
func (f *File) WriteItems(p []byte, size, nmemb int) (int, error) {
	n, err := items(len(p), size, nmemb)
	if err != nil {
		return 0, err
	}
	return f.Write(p[:n])
}

func items(length, size, nmemb int) (int, error) {
	if size < 0 || nmemb < 0 {
		return 0, fmt.Errorf("item size %d, count %d: %w", size, nmemb, ErrInvalidArgument)
	}
	if size != 0 && nmemb > length/size {
		return 0, fmt.Errorf("%d items of %d bytes from %d: %w", nmemb, size, length, ErrBufferOverflow)
	}
	return size * nmemb, nil
}

// Err reports the error indicator. Nothing sets it yet.
func (f *File) Err() bool {
	return f.err
}

// EOF reports the end-of-file indicator. Nothing sets it yet.
func (f *File) EOF() bool {
	return f.eof
}

// Buffered returns the unread part of the reserved buffer, always empty.
func (f *File) Buffered() []byte {
	if f.bufferPos >= f.bufferSize || f.buffer == nil {
		return nil
	}
	return f.buffer[f.bufferPos:f.bufferSize]
}
