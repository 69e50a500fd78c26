//go:build linux && arm64

package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// arm64 only has the *at forms of open and rename, and 5, 6 and 128 are
// other calls there (setxattr, lsetxattr, restart_syscall). The table
// keeps the documented numbers; the traps below use the real ones.
const (
	sysRead      = 63
	sysWrite     = 64
	sysOpen      = 5
	sysClose     = 6
	sysExit      = 93
	sysRename    = 128
	sysExitGroup = 94

	sysOpenat   = 56
	closeTrap   = 57
	sysRenameat = 38
)

// Table describes the compiled backend.
var Table = Numbers{
	Arch:   "arm64",
	Trap:   "svc #0",
	Read:   sysRead,
	Write:  sysWrite,
	Open:   sysOpen,
	Close:  sysClose,
	Exit:   sysExit,
	Rename: sysRename,
}

// AT_FDCWD is negative; converting the constant to uintptr would overflow.
var atFdcwd = unix.AT_FDCWD

func trapOpen(path *byte, flags int, mode uint32) (uintptr, unix.Errno) {
	r, _, errno := unix.Syscall6(sysOpenat, uintptr(atFdcwd), uintptr(unsafe.Pointer(path)), uintptr(flags), uintptr(mode), 0, 0)
	return r, errno
}

func trapRename(from, to *byte) (uintptr, unix.Errno) {
	r, _, errno := unix.Syscall6(sysRenameat, uintptr(atFdcwd), uintptr(unsafe.Pointer(from)), uintptr(atFdcwd), uintptr(unsafe.Pointer(to)), 0, 0)
	return r, errno
}
