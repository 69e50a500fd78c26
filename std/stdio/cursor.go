package stdio

import (
	"fmt"
	"reflect"
	"unsafe"
)

// cursor hands out the arguments of one formatted call in order.
type cursor struct {
	args []any
	next int
}

func (c *cursor) arg(verb byte) (any, error) {
	if c.next >= len(c.args) {
		return nil, fmt.Errorf("%%%c needs argument %d, have %d: %w", verb, c.next+1, len(c.args), ErrMissingArgument)
	}
	a := c.args[c.next]
	c.next++
	return a, nil
}

func (c *cursor) invalid(verb byte, a any) error {
	return fmt.Errorf("%%%c given %T as argument %d: %w", verb, a, c.next, ErrInvalidArgument)
}

// integer accepts any Go integer kind. Unsigned values wider than int64
// keep their bit pattern.
func (c *cursor) integer(verb byte) (int64, error) {
	a, err := c.arg(verb)
	if err != nil {
		return 0, err
	}
	switch v := a.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case uintptr:
		return int64(v), nil
	}
	return 0, c.invalid(verb, a)
}

// text returns the bytes of a string or byte slice up to the first NUL.
func (c *cursor) text(verb byte) (string, error) {
	a, err := c.arg(verb)
	if err != nil {
		return "", err
	}
	var s string
	switch v := a.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return "", c.invalid(verb, a)
	}
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return s[:i], nil
		}
	}
	return s, nil
}

// char narrows any integer argument to its low byte, as a promoted char
// would be.
func (c *cursor) char(verb byte) (byte, error) {
	n, err := c.integer(verb)
	if err != nil {
		return 0, err
	}
	return byte(n), nil
}

// pointer returns the address held by any pointer-shaped argument.
func (c *cursor) pointer(verb byte) (int64, error) {
	a, err := c.arg(verb)
	if err != nil {
		return 0, err
	}
	switch v := a.(type) {
	case nil:
		return 0, nil
	case unsafe.Pointer:
		return int64(uintptr(v)), nil
	case uintptr:
		return int64(v), nil
	}
	value := reflect.ValueOf(a)
	switch value.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return int64(value.Pointer()), nil
	}
	return 0, c.invalid(verb, a)
}
