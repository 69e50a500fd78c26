package conv

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestPutInt(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-7, "-7"},
		{10, "10"},
		{42, "42"},
		{-100, "-100"},
		{math.MaxInt32, "2147483647"},
		{math.MinInt32, "-2147483648"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, test := range tests {
		buf := make([]byte, MaxDigits)
		n, err := PutInt(buf, test.n)
		if err != nil {
			t.Fatalf("PutInt(%d): %v", test.n, err)
		}
		if got := string(buf[:n]); got != test.want {
			t.Errorf("PutInt(%d) = %q, want %q", test.n, got, test.want)
		}
		if buf[n] != 0 {
			t.Errorf("PutInt(%d) did not terminate the digits", test.n)
		}
		if Len(test.n) != len(test.want) {
			t.Errorf("Len(%d) = %d, want %d", test.n, Len(test.n), len(test.want))
		}
	}
}

func TestPutIntShortBuffer(t *testing.T) {
	buf := make([]byte, 3)
	if _, err := PutInt(buf, 123); !errors.Is(err, ErrShort) {
		t.Errorf("expected ErrShort without room for the terminator, got %v", err)
	}
	if n, err := PutInt(buf, -5); err != nil || string(buf[:n]) != "-5" {
		t.Errorf("PutInt(-5) = %q, %v", buf[:n], err)
	}
}

func FuzzPutInt32(f *testing.F) {
	for _, seed := range []int32{0, 1, -1, 9, 10, -10, 99999, math.MaxInt32, math.MinInt32} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, n int32) {
		buf := make([]byte, MaxDigits)
		length, err := PutInt(buf, int64(n))
		if err != nil {
			t.Fatal(err)
		}
		if got, want := string(buf[:length]), strconv.FormatInt(int64(n), 10); got != want {
			t.Errorf("PutInt(%d) = %q, want %q", n, got, want)
		}
	})
}

func TestAtoi(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"42", 42},
		{"-7", -7},
		{"+15", 15},
		{"", 0},
		{"-", 0},
		{"abc", 0},
		{"12ab", 12},
		{"007", 7},
		{" 5", 0},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	}
	for _, test := range tests {
		got, err := Atoi([]byte(test.in))
		if err != nil {
			t.Errorf("Atoi(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("Atoi(%q) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestAtoiRange(t *testing.T) {
	for _, in := range []string{"9223372036854775808", "-9223372036854775809", "99999999999999999999"} {
		if _, err := Atoi([]byte(in)); !errors.Is(err, ErrRange) {
			t.Errorf("Atoi(%q): expected ErrRange, got %v", in, err)
		}
	}
}
