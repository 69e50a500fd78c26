// Package conv converts between int64 values and decimal text without
// allocating.
package conv

import "errors"

// MaxDigits holds the longest int64 rendering, "-9223372036854775808",
// plus a NUL terminator.
const MaxDigits = 21

var (
	ErrRange = errors.New("conv: value out of range")
	ErrShort = errors.New("conv: buffer too small")
)

// Len returns the number of bytes PutInt writes for n, sign included.
// Zero has length one.
func Len(n int64) int {
	u, length := magnitude(n)
	if u == 0 {
		return 1
	}
	for u != 0 {
		u /= 10
		length++
	}
	return length
}

// PutInt writes n in decimal, most significant digit first, followed by
// a NUL byte, and returns the length without the terminator.
func PutInt(dst []byte, n int64) (int, error) {
	length := Len(n)
	if len(dst) < length+1 {
		return 0, ErrShort
	}

	u, _ := magnitude(n)
	for i := length - 1; i >= 0; i-- {
		dst[i] = byte(u%10) + '0'
		u /= 10
		if u == 0 {
			if n < 0 {
				dst[i-1] = '-'
			}
			break
		}
	}
	dst[length] = 0
	return length, nil
}

// magnitude returns |n| as a uint64 (valid for math.MinInt64) and the
// number of sign bytes.
func magnitude(n int64) (uint64, int) {
	if n < 0 {
		return uint64(-(n + 1)) + 1, 1
	}
	return uint64(n), 0
}

// Atoi parses an optional '+' or '-' followed by decimal digits. Parsing
// stops at the first byte that is not a digit, so "12ab" is 12 and "" is
// 0. Values outside int64 return ErrRange.
func Atoi(s []byte) (int64, error) {
	i := 0
	negative := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		i++
	}

	const cutoff = 1 << 63
	var u uint64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := uint64(s[i] - '0')
		if u > (cutoff-d)/10 {
			return 0, ErrRange
		}
		u = u*10 + d
	}

	if negative {
		return -int64(u-1) - 1, nil
	}
	if u > cutoff-1 {
		return 0, ErrRange
	}
	return int64(u), nil
}
