//go:build !(linux && (386 || amd64 || arm64))

package sys

import (
	"os"
	"strconv"
)

// Linux values, so code built against the fake backend sees one set of
// flags on every host.
const (
	O_RDONLY  = 0x0
	O_WRONLY  = 0x1
	O_RDWR    = 0x2
	O_CREAT   = 0x40
	O_TRUNC   = 0x200
	O_APPEND  = 0x400
	O_ACCMODE = 0x3
)

const (
	EBADF  Errno = 9
	EINVAL Errno = 22
	ENOENT Errno = 2
	ENOSYS Errno = 38
)

const Supported = false

// Table is empty: no trap table exists for this platform.
var Table = Numbers{Arch: "unsupported"}

// Kernel fails every call with ENOSYS on platforms without a trap table.
type Kernel struct{}

var _ Backend = Kernel{}

func (Kernel) Read(int, []byte) Result { return -Result(ENOSYS) }
func (Kernel) Write(int, []byte) Result { return -Result(ENOSYS) }
func (Kernel) Open(string, int, uint32) Result { return -Result(ENOSYS) }
func (Kernel) Close(int) Result { return -Result(ENOSYS) }
func (Kernel) Rename(string, string) Result { return -Result(ENOSYS) }
func (Kernel) Exit(status int) { os.Exit(status) }

func errnoString(e Errno) string {
	return "errno " + strconv.Itoa(int(e))
}
