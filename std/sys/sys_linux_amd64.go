//go:build linux && amd64

package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	sysRead      = 0
	sysWrite     = 1
	sysOpen      = 2
	sysClose     = 3
	sysExit      = 60
	sysRename    = 82
	sysExitGroup = 231

	closeTrap = sysClose
)

// Table describes the compiled backend.
var Table = Numbers{
	Arch:   "amd64",
	Trap:   "syscall",
	Read:   sysRead,
	Write:  sysWrite,
	Open:   sysOpen,
	Close:  sysClose,
	Exit:   sysExit,
	Rename: sysRename,
}

func trapOpen(path *byte, flags int, mode uint32) (uintptr, unix.Errno) {
	r, _, errno := unix.Syscall(sysOpen, uintptr(unsafe.Pointer(path)), uintptr(flags), uintptr(mode))
	return r, errno
}

func trapRename(from, to *byte) (uintptr, unix.Errno) {
	r, _, errno := unix.Syscall(sysRename, uintptr(unsafe.Pointer(from)), uintptr(unsafe.Pointer(to)), 0)
	return r, errno
}
