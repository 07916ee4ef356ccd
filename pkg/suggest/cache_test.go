package suggest

import (
	"reflect"
	"testing"

	"github.com/bastiangx/dictree/pkg/trie"
)

func TestPredictionCacheLimits(t *testing.T) {
	pc := NewPredictionCache(4)
	full := []trie.Match{{"hi", 1}, {"hell", 2}, {"hello", 4}}

	pc.Put("h", 2, full[:2])
	if got, ok := pc.Get("h", 1); !ok || !reflect.DeepEqual(got, full[:1]) {
		t.Errorf("Get(h, 1) = %v, %v", got, ok)
	}
	if _, ok := pc.Get("h", 3); ok {
		t.Errorf("entry computed with limit 2 must not serve limit 3")
	}

	// an exhaustive list serves any limit
	pc.Put("he", 5, full[1:])
	if got, ok := pc.Get("he", 50); !ok || !reflect.DeepEqual(got, full[1:]) {
		t.Errorf("Get(he, 50) = %v, %v", got, ok)
	}
}

func TestPredictionCacheInvalidate(t *testing.T) {
	pc := NewPredictionCache(8)
	for _, p := range []string{"h", "he", "hel", "w", "help"} {
		pc.Put(p, 3, nil)
	}

	pc.Invalidate("hello")

	for p, want := range map[string]bool{"h": false, "he": false, "hel": false, "w": true, "help": true} {
		if _, ok := pc.Get(p, 1); ok != want {
			t.Errorf("cached %q = %v, want %v", p, ok, want)
		}
	}
	if pc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pc.Len())
	}
}

func TestPredictionCacheEvictsLeastRecent(t *testing.T) {
	pc := NewPredictionCache(2)
	pc.Put("a", 1, nil)
	pc.Put("b", 1, nil)
	pc.Get("a", 1)
	pc.Put("c", 1, nil)

	if _, ok := pc.Get("b", 1); ok {
		t.Errorf("least recently used prefix should be evicted")
	}
	for _, p := range []string{"a", "c"} {
		if _, ok := pc.Get(p, 1); !ok {
			t.Errorf("prefix %q should still be cached", p)
		}
	}
}

func TestPredictionCacheReturnsCopies(t *testing.T) {
	pc := NewPredictionCache(2)
	pc.Put("h", 2, []trie.Match{{"hi", 1}, {"he", 2}})

	got, _ := pc.Get("h", 2)
	got[0].Word = "mutated"

	again, _ := pc.Get("h", 2)
	if again[0].Word != "hi" {
		t.Errorf("cached entry was mutated through a returned slice")
	}
}
