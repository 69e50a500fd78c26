package stdio

import (
	"j5.nz/rawio/std/conv"
	"j5.nz/rawio/std/sys"
)

// emitter counts bytes written to one descriptor.
type emitter struct {
	s  *Stdio
	fd int
	n  int
}

func (e *emitter) put(c byte) error {
	if err := e.s.putc(e.fd, c); err != nil {
		return err
	}
	e.n++
	return nil
}

func (e *emitter) puts(str string) error {
	for i := 0; i < len(str); i++ {
		if err := e.put(str[i]); err != nil {
			return err
		}
	}
	return nil
}

// decimal renders n through a scratch block from the reclaim list.
func (e *emitter) decimal(n int64) error {
	block := e.s.reclaim.Alloc(conv.MaxDigits)
	defer e.s.reclaim.Reclaim(block)

	length, err := conv.PutInt(block.Data, n)
	if err != nil {
		return err
	}
	for _, c := range block.Data[:length] {
		if err := e.put(c); err != nil {
			return err
		}
	}
	return nil
}

// Printf formats to standard output.
func (s *Stdio) Printf(format string, args ...any) (int, error) {
	return s.Fprintf(sys.Stdout, format, args...)
}

// Fprintf writes format to fd, replacing each verb with the next
// argument:
//
//	%d  integer, in decimal
//	%s  string or []byte, up to the first NUL
//	%c  integer, its low eight bits
//	%x  integer, in decimal as well: there is no hexadecimal rendering
//	%p  pointer, its address in decimal
//
// There are no widths, precisions or flags. A '%' at the end of the
// format, or before a NUL, ends the output quietly. Any other verb,
// "%%" included, ends the output with a *VerbError. The first failing
// write ends the call with its Errno. The count of bytes emitted is
// returned in every case.
func (s *Stdio) Fprintf(fd int, format string, args ...any) (int, error) {
	e := &emitter{s: s, fd: fd}
	c := &cursor{args: args}

	for i := 0; i < len(format) && format[i] != 0; i++ {
		if format[i] != '%' {
			if err := e.put(format[i]); err != nil {
				return e.n, err
			}
			continue
		}

		i++
		if i >= len(format) || format[i] == 0 {
			return e.n, nil
		}

		verb := format[i]
		var err error
		switch verb {
		case 'd', 'x':
			var n int64
			if n, err = c.integer(verb); err == nil {
				err = e.decimal(n)
			}
		case 's':
			var str string
			if str, err = c.text(verb); err == nil {
				err = e.puts(str)
			}
		case 'c':
			var ch byte
			if ch, err = c.char(verb); err == nil {
				err = e.put(ch)
			}
		case 'p':
			var addr int64
			if addr, err = c.pointer(verb); err == nil {
				err = e.decimal(addr)
			}
		default:
			s.logger.Debug("unsupported output verb", "verb", string(verb), "offset", i-1)
			return e.n, &VerbError{Verb: verb, Offset: i - 1}
		}
		if err != nil {
			return e.n, err
		}
	}
	return e.n, nil
}
