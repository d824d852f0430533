package cache

import (
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c := New(4, 0)

	c.Set("a", []byte("payload"))
	payload, found := c.Get("a")
	if !found {
		t.Fatal("expected a hit")
	}
	if string(payload) != "payload" {
		t.Errorf("payload = %q", payload)
	}

	if _, found := c.Get("missing"); found {
		t.Error("expected a miss")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d/%d, want 1/1", hits, misses)
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2, 0)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Get("a")
	c.Set("c", []byte("3"))

	if _, found := c.Get("b"); found {
		t.Error("the least recently used item should be evicted")
	}
	if _, found := c.Get("a"); !found {
		t.Error("the recently read item should survive")
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
}

func TestCache_ExpiresByTTL(t *testing.T) {
	c := New(4, 10*time.Millisecond)

	c.Set("a", []byte("1"))
	time.Sleep(20 * time.Millisecond)
	if _, found := c.Get("a"); found {
		t.Error("the item should be expired")
	}
}

func TestCache_SetOverwritesWithoutEviction(t *testing.T) {
	c := New(2, 0)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Set("a", []byte("3"))

	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
	payload, _ := c.Get("a")
	if string(payload) != "3" {
		t.Errorf("payload = %q, want 3", payload)
	}
}
