// Package sys issues the six kernel calls the stdio layer is built on.
//
// Exactly one trap table is compiled in, chosen by GOARCH. Results are
// returned the way the kernel produces them: a non-negative count or
// descriptor, or the negated errno. Nothing here decodes or retries.
package sys

const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

// Backend is the syscall surface used by the engines and file handles.
// Kernel is the real implementation; systest.Fake is an in-memory one.
type Backend interface {
	Read(fd int, p []byte) Result
	Write(fd int, p []byte) Result
	Open(path string, flags int, mode uint32) Result
	Close(fd int) Result
	// Exit terminates the process and does not return.
	Exit(status int)
	Rename(oldPath, newPath string) Result
}

// Result is a raw syscall return value.
type Result int

// Err returns the negative result as an Errno, or nil.
func (r Result) Err() error {
	if r < 0 {
		return Errno(-r)
	}
	return nil
}

// Errno is a kernel error number, as reported by the failing call.
type Errno int32

func (e Errno) Error() string {
	return errnoString(e)
}

// Numbers is the trap table of the compiled backend.
type Numbers struct {
	Arch   string
	Trap   string
	Read   int
	Write  int
	Open   int
	Close  int
	Exit   int
	Rename int
}
