package hashing

import (
	"sync"
	"testing"
)

func TestPerftTable_StoreLookup(t *testing.T) {
	table := NewPerftTable(0)

	if _, ok := table.Lookup(42, 3); ok {
		t.Error("empty table should miss")
	}
	table.Store(42, 3, 8902)

	if nodes, ok := table.Lookup(42, 3); !ok || nodes != 8902 {
		t.Errorf("Lookup(42, 3) = %d, %v; want 8902, true", nodes, ok)
	}
	if _, ok := table.Lookup(42, 2); ok {
		t.Error("same position at another depth should miss")
	}
	if table.Hits() != 1 || table.Misses() != 2 {
		t.Errorf("Hits, Misses = %d, %d; want 1, 2", table.Hits(), table.Misses())
	}
}

func TestPerftTable_Capacity(t *testing.T) {
	table := NewPerftTable(2)
	table.Store(1, 1, 10)
	table.Store(2, 1, 20)
	if !table.IsFull() {
		t.Fatal("table should be full")
	}

	table.Store(3, 1, 30)
	if table.Len() != 2 {
		t.Errorf("Len() = %d; want 2", table.Len())
	}
	if _, ok := table.Lookup(3, 1); ok {
		t.Error("entry stored past capacity should be dropped")
	}
}

func TestPerftTable_Unlimited(t *testing.T) {
	table := NewPerftTable(0)
	for i := uint64(0); i < 1000; i++ {
		table.Store(i, 1, i)
	}
	if table.IsFull() {
		t.Error("unlimited table should never be full")
	}
	if table.Len() != 1000 {
		t.Errorf("Len() = %d; want 1000", table.Len())
	}
}

func TestPerftTable_Reset(t *testing.T) {
	table := NewPerftTable(0)
	table.Store(1, 1, 1)
	table.Lookup(1, 1)
	table.Reset()

	if table.Len() != 0 || table.Hits() != 0 || table.Misses() != 0 {
		t.Errorf("after Reset: Len %d, Hits %d, Misses %d; want all 0", table.Len(), table.Hits(), table.Misses())
	}
}

func TestPerftTable_Concurrent(t *testing.T) {
	table := NewPerftTable(0)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				hash := uint64(w*100 + i)
				table.Store(hash, 2, hash*2)
				if nodes, ok := table.Lookup(hash, 2); !ok || nodes != hash*2 {
					t.Errorf("Lookup(%d) = %d, %v", hash, nodes, ok)
				}
			}
		}(w)
	}
	wg.Wait()

	if table.Len() != 800 {
		t.Errorf("Len() = %d; want 800", table.Len())
	}
	if table.Hits() != 800 {
		t.Errorf("Hits() = %d; want 800", table.Hits())
	}
}
