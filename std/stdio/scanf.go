package stdio

import (
	"fmt"
	"io"
	"math"

	"j5.nz/rawio/std/conv"
	"j5.nz/rawio/std/sys"
)

// Scanf echoes the literal text of format to standard output and, for
// each verb, reads one line from standard input into the next argument:
//
//	%d  *int, *int8, *int16, *int32 or *int64; optional sign, then digits
//	%s  *string, or a []byte that receives the text and a NUL
//
// One trailing newline is stripped from every line. A NUL verb ends the
// scan quietly and any other verb ends it with a *VerbError. The number
// of values stored is returned.
func (s *Stdio) Scanf(format string, args ...any) (int, error) {
	c := &cursor{args: args}
	stored := 0

	for i := 0; i < len(format) && format[i] != 0; i++ {
		if format[i] != '%' {
			if err := s.putc(sys.Stdout, format[i]); err != nil {
				return stored, err
			}
			continue
		}

		i++
		if i >= len(format) || format[i] == 0 {
			return stored, nil
		}

		verb := format[i]
		var err error
		switch verb {
		case 'd':
			err = s.scanInt(c, verb)
		case 's':
			err = s.scanString(c, verb)
		default:
			s.logger.Debug("unsupported input verb", "verb", string(verb), "offset", i-1)
			return stored, &VerbError{Verb: verb, Offset: i - 1}
		}
		if err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

func (s *Stdio) scanInt(c *cursor, verb byte) error {
	dst, err := c.arg(verb)
	if err != nil {
		return err
	}
	set, err := intSetter(dst)
	if err != nil {
		return c.invalid(verb, dst)
	}

	line, err := s.readLine(conv.MaxDigits)
	if err != nil {
		return err
	}
	n, err := conv.Atoi(line)
	if err != nil {
		return fmt.Errorf("%%%c %q: %w", verb, line, err)
	}
	return set(n)
}

func (s *Stdio) scanString(c *cursor, verb byte) error {
	dst, err := c.arg(verb)
	if err != nil {
		return err
	}
	switch v := dst.(type) {
	case *string:
		if v == nil {
			return c.invalid(verb, dst)
		}
		line, err := s.readLine(s.maxLine)
		if err != nil {
			return err
		}
		*v = string(line)
		return nil
	case []byte:
		line, err := s.readLine(s.maxLine)
		if err != nil {
			return err
		}
		if len(line)+1 > len(v) {
			s.logger.Debug("input line exceeds destination", "line", len(line), "capacity", len(v))
			return fmt.Errorf("%%%c: %d bytes and a terminator into %d: %w", verb, len(line), len(v), ErrBufferOverflow)
		}
		copy(v, line)
		v[len(line)] = 0
		return nil
	}
	return c.invalid(verb, dst)
}

// readLine reads one byte at a time until a newline, which is dropped.
// limit counts the newline, so at most limit-1 bytes of text fit.
func (s *Stdio) readLine(limit int) ([]byte, error) {
	line := make([]byte, 0, limit)
	var b [1]byte
	for {
		r := s.backend.Read(sys.Stdin, b[:])
		if err := r.Err(); err != nil {
			return nil, err
		}
		if r == 0 {
			if len(line) == 0 {
				return nil, io.EOF
			}
			return line, nil
		}
		if b[0] == '\n' {
			return line, nil
		}
		if len(line) >= limit-1 {
			s.logger.Debug("input line too long", "limit", limit)
			if err := s.discardLine(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("input line longer than %d bytes: %w", limit-1, ErrBufferOverflow)
		}
		line = append(line, b[0])
	}
}

// discardLine drops input up to and including the next newline, so the
// next conversion starts on a fresh line.
func (s *Stdio) discardLine() error {
	var b [1]byte
	for {
		r := s.backend.Read(sys.Stdin, b[:])
		if err := r.Err(); err != nil {
			return err
		}
		if r == 0 || b[0] == '\n' {
			return nil
		}
	}
}

func intSetter(dst any) (func(int64) error, error) {
	switch v := dst.(type) {
	case *int:
		if v != nil {
			return func(n int64) error {
				if n < math.MinInt || n > math.MaxInt {
					return conv.ErrRange
				}
				*v = int(n)
				return nil
			}, nil
		}
	case *int8:
		if v != nil {
			return func(n int64) error {
				if n < math.MinInt8 || n > math.MaxInt8 {
					return conv.ErrRange
				}
				*v = int8(n)
				return nil
			}, nil
		}
	case *int16:
		if v != nil {
			return func(n int64) error {
				if n < math.MinInt16 || n > math.MaxInt16 {
					return conv.ErrRange
				}
				*v = int16(n)
				return nil
			}, nil
		}
	case *int32:
		if v != nil {
			return func(n int64) error {
				if n < math.MinInt32 || n > math.MaxInt32 {
					return conv.ErrRange
				}
				*v = int32(n)
				return nil
			}, nil
		}
	case *int64:
		if v != nil {
			return func(n int64) error {
				*v = n
				return nil
			}, nil
		}
	}
	return nil, ErrInvalidArgument
}
