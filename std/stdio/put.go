package stdio

import (
	"io"

	"j5.nz/rawio/std/sys"
)

// putc writes one byte. A write that accepts nothing is io.ErrShortWrite.
func (s *Stdio) putc(fd int, c byte) error {
	s.one[0] = c
	return written(s.backend.Write(fd, s.one[:]), 1)
}

// Puts writes str to standard output in a single write call. No newline
// is appended.
func (s *Stdio) Puts(str string) error {
	return written(s.backend.Write(sys.Stdout, []byte(str)), len(str))
}

func written(r sys.Result, want int) error {
	if err := r.Err(); err != nil {
		return err
	}
	if int(r) < want {
		return io.ErrShortWrite
	}
	return nil
}

func (s *Stdio) Putchar(c byte) error {
	return s.putc(sys.Stdout, c)
}

func (s *Stdio) Putc(c byte, fd int) error {
	return s.putc(fd, c)
}

// Exit ends the process through the backend. Deferred calls do not run.
func (s *Stdio) Exit(status int) {
	s.logger.Debug("exit", "status", status)
	s.backend.Exit(status)
}
