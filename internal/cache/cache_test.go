package cache

import "testing"

func TestPutUpdatesExistingEntryWithoutGrowing(t *testing.T) {
	c := NewLRU[string, string](2)

	c.Put("alpha", "x")
	c.Put("beta", "y")
	c.Put("alpha", "z")

	if c.Len() != 2 {
		t.Fatalf("unexpected cache length: got %d, want 2", c.Len())
	}
	if value, hit := c.Get("alpha"); !hit || value != "z" {
		t.Fatalf("expected updated alpha, hit=%v value=%q", hit, value)
	}
	if value, hit := c.Get("beta"); !hit || value != "y" {
		t.Fatalf("expected beta to remain, hit=%v value=%q", hit, value)
	}
}

type customKey struct {
	name  string
	width int
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[customKey, int](2)

	first := customKey{"first", 80}
	second := customKey{"second", 80}
	third := customKey{"third", 80}

	c.Put(first, 1)
	c.Put(second, 2)
	c.Get(first)
	c.Put(third, 3)

	if _, hit := c.Get(second); hit {
		t.Fatal("expected second to be evicted")
	}
	if _, hit := c.Get(first); !hit {
		t.Fatal("expected first to survive after being read")
	}
	if _, hit := c.Get(third); !hit {
		t.Fatal("expected third to be cached")
	}
}

func TestNewLRUClampsSize(t *testing.T) {
	c := NewLRU[int, int](0)
	c.Put(1, 1)
	c.Put(2, 2)

	if c.Len() != 1 {
		t.Fatalf("unexpected cache length: got %d, want 1", c.Len())
	}
}
