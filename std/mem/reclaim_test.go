package mem

import (
	"sync"
	"testing"
)

func TestAllocFresh(t *testing.T) {
	var list List
	b := list.Alloc(21)
	if b.Capacity != 21 || len(b.Data) != 21 {
		t.Fatalf("expected 21-byte block, got capacity=%d len=%d", b.Capacity, len(b.Data))
	}
	if stats := list.Stats(); stats.Allocated != 1 || stats.Reused != 0 || stats.Free != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestReclaimThenReuse(t *testing.T) {
	var list List
	b := list.Alloc(8)
	copy(b.Data, "scratch!")
	list.Reclaim(b)
	if list.Len() != 1 {
		t.Fatalf("expected one free block, got %d", list.Len())
	}

	again := list.Alloc(8)
	if again != b {
		t.Fatal("expected the reclaimed block to be reused")
	}
	if string(again.Data) != "scratch!" {
		t.Errorf("reclaim must not erase contents, got %q", again.Data)
	}
	if list.Len() != 0 {
		t.Errorf("expected empty list after reuse, got %d", list.Len())
	}
	if stats := list.Stats(); stats.Allocated != 1 || stats.Reused != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestAllocMatchesCapacity(t *testing.T) {
	var list List
	small := list.Alloc(4)
	large := list.Alloc(16)
	list.Reclaim(small)
	list.Reclaim(large)

	// large is at the head; asking for 4 has to walk past it.
	got := list.Alloc(4)
	if got != small {
		t.Fatal("expected the 4-byte block")
	}
	if list.Len() != 1 {
		t.Fatalf("expected the 16-byte block to remain, got %d blocks", list.Len())
	}
	if list.Alloc(16) != large {
		t.Error("expected the 16-byte block")
	}

	fresh := list.Alloc(4)
	if fresh == small || fresh == large {
		t.Error("expected a fresh block when nothing matches")
	}
}

func TestReclaimOrderIsLIFO(t *testing.T) {
	var list List
	first := list.Alloc(2)
	second := list.Alloc(2)
	list.Reclaim(first)
	list.Reclaim(second)
	if list.Alloc(2) != second {
		t.Error("expected most recently reclaimed block first")
	}
	if list.Alloc(2) != first {
		t.Error("expected remaining block next")
	}
}

func TestReclaimNilAndTwice(t *testing.T) {
	var list List
	list.Reclaim(nil)
	if list.Len() != 0 {
		t.Fatalf("nil reclaim grew the list to %d", list.Len())
	}

	b := list.Alloc(3)
	list.Reclaim(b)
	list.Reclaim(b)
	if list.Len() != 1 {
		t.Fatalf("double reclaim should be ignored, got %d blocks", list.Len())
	}
}

func TestNegativeCapacity(t *testing.T) {
	var list List
	if b := list.Alloc(-5); b.Capacity != 0 || len(b.Data) != 0 {
		t.Errorf("expected empty block, got capacity=%d", b.Capacity)
	}
}

func TestConcurrentAllocReclaim(t *testing.T) {
	var list List
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				b := list.Alloc(21)
				b.Data[0] = '1'
				list.Reclaim(b)
			}
		}()
	}
	wg.Wait()

	stats := list.Stats()
	if stats.Free != int(stats.Allocated) {
		t.Errorf("every allocated block should be back on the list: %+v", stats)
	}
	if stats.Allocated+stats.Reused != 8*500 {
		t.Errorf("expected 4000 allocations in total, got %+v", stats)
	}
}
