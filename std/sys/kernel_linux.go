//go:build linux && (386 || amd64 || arm64)

package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	O_RDONLY  = unix.O_RDONLY
	O_WRONLY  = unix.O_WRONLY
	O_RDWR    = unix.O_RDWR
	O_CREAT   = unix.O_CREAT
	O_TRUNC   = unix.O_TRUNC
	O_APPEND  = unix.O_APPEND
	O_ACCMODE = unix.O_ACCMODE
)

const (
	EBADF  = Errno(unix.EBADF)
	EINVAL = Errno(unix.EINVAL)
	ENOENT = Errno(unix.ENOENT)
	ENOSYS = Errno(unix.ENOSYS)
)

// Supported reports whether a kernel trap table is compiled in.
const Supported = true

// Kernel traps directly into Linux using the table for the build's GOARCH.
type Kernel struct{}

var _ Backend = Kernel{}

func (Kernel) Read(fd int, p []byte) Result {
	r, _, errno := unix.Syscall(sysRead, uintptr(fd), uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)))
	return result(r, errno)
}

func (Kernel) Write(fd int, p []byte) Result {
	r, _, errno := unix.Syscall(sysWrite, uintptr(fd), uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)))
	return result(r, errno)
}

func (Kernel) Open(path string, flags int, mode uint32) Result {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return -Result(EINVAL)
	}
	r, errno := trapOpen(p, flags, mode)
	return result(r, errno)
}

func (Kernel) Close(fd int) Result {
	r, _, errno := unix.Syscall(closeTrap, uintptr(fd), 0, 0)
	return result(r, errno)
}

func (Kernel) Rename(oldPath, newPath string) Result {
	from, err := unix.BytePtrFromString(oldPath)
	if err != nil {
		return -Result(EINVAL)
	}
	to, err := unix.BytePtrFromString(newPath)
	if err != nil {
		return -Result(EINVAL)
	}
	r, errno := trapRename(from, to)
	return result(r, errno)
}

// Exit ends every thread of the process. The table's exit number only
// stops the calling thread, which would leave the Go runtime running.
func (Kernel) Exit(status int) {
	unix.RawSyscall(sysExitGroup, uintptr(status), 0, 0)
	panic("sys: exit_group returned")
}

func result(r uintptr, errno unix.Errno) Result {
	if errno != 0 {
		return -Result(errno)
	}
	return Result(r)
}

func errnoString(e Errno) string {
	if name := unix.ErrnoName(unix.Errno(e)); name != "" {
		return name + ": " + unix.Errno(e).Error()
	}
	return unix.Errno(e).Error()
}
