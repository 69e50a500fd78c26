package sys

import (
	"errors"
	"testing"
)

func TestResultErr(t *testing.T) {
	if err := Result(0).Err(); err != nil {
		t.Errorf("Result(0).Err() = %v", err)
	}
	if err := Result(17).Err(); err != nil {
		t.Errorf("Result(17).Err() = %v", err)
	}

	err := Result(-2).Err()
	var errno Errno
	if !errors.As(err, &errno) || errno != 2 {
		t.Fatalf("Result(-2).Err() = %#v, want Errno(2)", err)
	}
	if !errors.Is(err, ENOENT) {
		t.Errorf("expected ENOENT, got %v", err)
	}
	if err.Error() == "" {
		t.Error("empty error text")
	}
}
