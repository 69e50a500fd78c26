// Package mem keeps freed scratch buffers on a singly linked list so the
// next allocation of the same capacity can reuse them.
package mem

import "sync"

// Block is a scratch buffer together with its list header.
type Block struct {
	Capacity int
	Data     []byte

	next   *Block
	onList bool
}

// Stats counts list activity.
type Stats struct {
	Allocated uint64
	Reused    uint64
	Free      int
}

// List is a free list of Blocks. The zero value is empty and ready.
type List struct {
	mu    sync.Mutex
	head  *Block
	free  int
	stats Stats
}

// Default is the process-wide list used by the stdio engines.
var Default = &List{}

// Alloc returns a block of exactly capacity bytes, reusing the most
// recently reclaimed block of that capacity when there is one. A reused
// block still holds whatever its previous user wrote.
func (l *List) Alloc(capacity int) *Block {
	if capacity < 0 {
		capacity = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var prev *Block
	for b := l.head; b != nil; b = b.next {
		if b.Capacity != capacity {
			prev = b
			continue
		}
		if prev == nil {
			l.head = b.next
		} else {
			prev.next = b.next
		}
		b.next = nil
		b.onList = false
		l.free--
		l.stats.Reused++
		return b
	}

	l.stats.Allocated++
	return &Block{Capacity: capacity, Data: make([]byte, capacity)}
}

// Reclaim prepends b to the list. Reclaiming nil, or a block already on
// the list, does nothing.
func (l *List) Reclaim(b *Block) {
	if b == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if b.onList {
		return
	}
	b.next = l.head
	b.onList = true
	l.head = b
	l.free++
}

// Len returns the number of blocks waiting on the list.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.free
}

func (l *List) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.stats
	s.Free = l.free
	return s
}
