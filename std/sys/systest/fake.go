// Package systest provides an in-memory sys.Backend for tests.
package systest

import (
	"bytes"
	"fmt"

	"j5.nz/rawio/std/sys"
)

// Exited is the panic value raised by Fake.Exit.
type Exited struct {
	Status int
}

func (e Exited) String() string {
	return fmt.Sprintf("exit(%d)", e.Status)
}

type openFile struct {
	path   string
	flags  int
	offset int
}

// Fake serves stdin from a byte slice, records every write and keeps
// opened files in a map keyed by path. Results follow kernel conventions,
// so a missing file is -ENOENT and an unknown descriptor is -EBADF.
type Fake struct {
	Stdin []byte
	Files map[string][]byte
	// Fail makes the named operation ("read", "write", "open", "close",
	// "rename") return the given errno.
	Fail map[string]sys.Errno
	// Stalled makes writes to descriptors that are not files accept
	// nothing and report 0.
	Stalled bool

	stdinPos   int
	out        map[int]*bytes.Buffer
	writeCalls map[int]int
	readCalls  int
	fds        map[int]*openFile
	nextFd     int
	perms      map[string]uint32
}

var _ sys.Backend = (*Fake)(nil)

// New returns a Fake whose stdin yields input.
func New(input string) *Fake {
	return &Fake{Stdin: []byte(input)}
}

func (f *Fake) init() {
	if f.out == nil {
		f.out = make(map[int]*bytes.Buffer)
		f.writeCalls = make(map[int]int)
		f.fds = make(map[int]*openFile)
		f.perms = make(map[string]uint32)
		f.nextFd = 3
	}
	if f.Files == nil {
		f.Files = make(map[string][]byte)
	}
}

func (f *Fake) failure(op string) (sys.Result, bool) {
	if errno, ok := f.Fail[op]; ok {
		return -sys.Result(errno), true
	}
	return 0, false
}

func (f *Fake) Read(fd int, p []byte) sys.Result {
	f.init()
	f.readCalls++
	if r, ok := f.failure("read"); ok {
		return r
	}
	if fd == sys.Stdin {
		n := copy(p, f.Stdin[f.stdinPos:])
		f.stdinPos += n
		return sys.Result(n)
	}
	file, ok := f.fds[fd]
	if !ok || file.flags&sys.O_ACCMODE == sys.O_WRONLY {
		return -sys.Result(sys.EBADF)
	}
	data := f.Files[file.path]
	if file.offset >= len(data) {
		return 0
	}
	n := copy(p, data[file.offset:])
	file.offset += n
	return sys.Result(n)
}

func (f *Fake) Write(fd int, p []byte) sys.Result {
	f.init()
	f.writeCalls[fd]++
	if r, ok := f.failure("write"); ok {
		return r
	}
	file, ok := f.fds[fd]
	if !ok {
		if fd < 0 {
			return -sys.Result(sys.EBADF)
		}
		if f.Stalled {
			return 0
		}
		buf := f.out[fd]
		if buf == nil {
			buf = new(bytes.Buffer)
			f.out[fd] = buf
		}
		buf.Write(p)
		return sys.Result(len(p))
	}
	if file.flags&sys.O_ACCMODE == sys.O_RDONLY {
		return -sys.Result(sys.EBADF)
	}
	data := f.Files[file.path]
	if file.flags&sys.O_APPEND != 0 {
		file.offset = len(data)
	}
	end := file.offset + len(p)
	if end > len(data) {
		grown := make([]byte, end)
		copy(grown, data)
		data = grown
	}
	copy(data[file.offset:], p)
	file.offset = end
	f.Files[file.path] = data
	return sys.Result(len(p))
}

func (f *Fake) Open(path string, flags int, mode uint32) sys.Result {
	f.init()
	if r, ok := f.failure("open"); ok {
		return r
	}
	if _, exists := f.Files[path]; !exists {
		if flags&sys.O_CREAT == 0 {
			return -sys.Result(sys.ENOENT)
		}
		f.Files[path] = nil
		f.perms[path] = mode
	}
	if flags&sys.O_TRUNC != 0 {
		f.Files[path] = nil
	}
	fd := f.nextFd
	f.nextFd++
	f.fds[fd] = &openFile{path: path, flags: flags}
	return sys.Result(fd)
}

func (f *Fake) Close(fd int) sys.Result {
	f.init()
	if r, ok := f.failure("close"); ok {
		return r
	}
	if _, ok := f.fds[fd]; !ok {
		return -sys.Result(sys.EBADF)
	}
	delete(f.fds, fd)
	return 0
}

// Exit panics with Exited so tests can recover the status.
func (f *Fake) Exit(status int) {
	panic(Exited{Status: status})
}

func (f *Fake) Rename(oldPath, newPath string) sys.Result {
	f.init()
	if r, ok := f.failure("rename"); ok {
		return r
	}
	data, ok := f.Files[oldPath]
	if !ok {
		return -sys.Result(sys.ENOENT)
	}
	delete(f.Files, oldPath)
	f.Files[newPath] = data
	if perm, ok := f.perms[oldPath]; ok {
		delete(f.perms, oldPath)
		f.perms[newPath] = perm
	}
	return 0
}

// Output returns everything written to a non-file descriptor.
func (f *Fake) Output(fd int) string {
	f.init()
	if buf := f.out[fd]; buf != nil {
		return buf.String()
	}
	return ""
}

// WriteCalls counts write calls issued on fd.
func (f *Fake) WriteCalls(fd int) int {
	f.init()
	return f.writeCalls[fd]
}

// ReadCalls counts read calls on any descriptor.
func (f *Fake) ReadCalls() int {
	return f.readCalls
}

// Remaining returns the unread part of stdin.
func (f *Fake) Remaining() string {
	return string(f.Stdin[f.stdinPos:])
}

// OpenDescriptors counts descriptors that have not been closed.
func (f *Fake) OpenDescriptors() int {
	f.init()
	return len(f.fds)
}

// Perm returns the mode a file was created with.
func (f *Fake) Perm(path string) uint32 {
	f.init()
	return f.perms[path]
}
