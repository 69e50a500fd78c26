//go:build linux && 386

package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	sysRead      = 3
	sysWrite     = 4
	sysOpen      = 5
	sysClose     = 6
	sysExit      = 1
	sysRename    = 82
	sysExitGroup = 252

	closeTrap = sysClose
)

// Table describes the compiled backend.
var Table = Numbers{
	Arch:   "386",
	Trap:   "int 0x80",
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
