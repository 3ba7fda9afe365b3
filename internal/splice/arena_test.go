package splice

import "testing"

func TestArenaPush(t *testing.T) {
	a := NewArena()

	for i := 0; i < 5; i++ {
		idx := a.Push(NewChunk(NewSpan(TextSize(i), TextSize(i+1))))
		if idx != ChunkIdx(i) {
			t.Errorf("Push #%d returned index %d", i, idx)
		}
	}

	if a.Len() != 5 {
		t.Errorf("Len() = %d, want 5", a.Len())
	}
}

func TestArenaGet(t *testing.T) {
	a := NewArena()
	idx := a.Push(NewChunk(NewSpan(0, 5)))

	c := a.Get(idx)
	if c.Start() != 0 || c.End() != 5 {
		t.Errorf("Get returned chunk %s, want [0:5)", c.Span())
	}

	// Mutation through the returned pointer is visible on later lookups.
	c.SetNext(9)
	if next, ok := a.Get(idx).Next(); !ok || next != 9 {
		t.Errorf("Next() = (%d, %v) after SetNext, want (9, true)", next, ok)
	}
}

func TestArenaIndicesStableAcrossPushes(t *testing.T) {
	a := NewArena()
	first := a.Push(NewChunk(NewSpan(0, 1)))
	held := a.Get(first)

	// Grow well past any initial slice capacity.
	for i := 1; i < 1000; i++ {
		a.Push(NewChunk(NewSpan(TextSize(i), TextSize(i+1))))
	}

	if a.Get(first) != held {
		t.Error("chunk pointer changed across pushes")
	}
	if held.Start() != 0 || held.End() != 1 {
		t.Errorf("held chunk = %s, want [0:1)", held.Span())
	}
}

func TestArenaGetOutOfRangePanics(t *testing.T) {
	a := NewArena()
	a.Push(NewChunk(NewSpan(0, 1)))

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	a.Get(1)
}

func TestArenaGetEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for lookup in empty arena")
		}
	}()
	NewArena().Get(0)
}
