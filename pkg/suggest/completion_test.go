package suggest

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/bastiangx/dictree/pkg/trie"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func rankedCompleter(cacheSize int) *Completer {
	c := NewCompleter(cacheSize)
	c.InsertRanked("hello", 4)
	c.InsertRanked("hell", 2)
	c.InsertRanked("word", 7)
	c.InsertRanked("to", 3)
	c.InsertRanked("how", 10)
	c.InsertRanked("hi", 1)
	return c
}

func words(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Word
	}
	return out
}

func TestComplete(t *testing.T) {
	for _, cacheSize := range []int{0, 16} {
		t.Run(fmt.Sprintf("cache_%d", cacheSize), func(t *testing.T) {
			c := rankedCompleter(cacheSize)

			got := c.Complete("h", 2)
			want := []Suggestion{{"hi", 1}, {"hell", 2}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Complete(h, 2) = %v, want %v", got, want)
			}
			// second call is served from cache when enabled
			if again := c.Complete("h", 2); !reflect.DeepEqual(again, want) {
				t.Errorf("repeated Complete(h, 2) = %v, want %v", again, want)
			}
			if got := c.Complete("h", 1); !reflect.DeepEqual(got, want[:1]) {
				t.Errorf("Complete(h, 1) = %v", got)
			}
			if got := c.Complete("zz", 3); got == nil || len(got) != 0 {
				t.Errorf("Complete(zz, 3) = %#v, want empty", got)
			}
			if got := c.Complete("h", 0); len(got) != 0 {
				t.Errorf("Complete(h, 0) = %v, want empty", got)
			}
		})
	}
}

func TestCompleteSeesMutations(t *testing.T) {
	c := rankedCompleter(16)
	if got := words(c.Complete("he", 5)); !reflect.DeepEqual(got, []string{"hell", "hello"}) {
		t.Fatalf("Complete(he, 5) = %q", got)
	}

	c.InsertRanked("help", 1)
	if got := words(c.Complete("he", 5)); !reflect.DeepEqual(got, []string{"help", "hell", "hello"}) {
		t.Errorf("after insert Complete(he, 5) = %q", got)
	}

	if !c.Remove("help") {
		t.Errorf("Remove(help) should prune its node")
	}
	if got := words(c.Complete("he", 5)); !reflect.DeepEqual(got, []string{"hell", "hello"}) {
		t.Errorf("after remove Complete(he, 5) = %q", got)
	}

	c.InsertRanked("hello", 1)
	if got, _ := c.Predict("he"); got != "hello" {
		t.Errorf("Predict(he) = %q after re-rank, want hello", got)
	}
	if got := words(c.Complete("he", 1)); !reflect.DeepEqual(got, []string{"hello"}) {
		t.Errorf("after re-rank Complete(he, 1) = %q", got)
	}
}

func TestCompleteLargerLimitAfterCache(t *testing.T) {
	c := rankedCompleter(16)
	c.Complete("h", 1)
	got := words(c.Complete("h", 3))
	if want := []string{"hi", "hell", "hello"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(h, 3) = %q, want %q", got, want)
	}
}

func TestCompleterWrapsExistingTrie(t *testing.T) {
	dict := trie.New()
	dict.Insert("to")
	dict.Insert("the")
	c := NewCompleterFor(dict, 4)

	if !c.Contains("the") || c.Len() != 2 {
		t.Fatalf("completer should expose the wrapped dictionary")
	}
	if r, ok := c.Rank("the"); !ok || r != 2 {
		t.Errorf("Rank(the) = %d, %v", r, ok)
	}
	if got := c.Words(); !reflect.DeepEqual(got, []string{"to", "the"}) {
		t.Errorf("Words() = %q", got)
	}
	if got := c.LongestWord(); got != "the" {
		t.Errorf("LongestWord() = %q", got)
	}
}

func TestStats(t *testing.T) {
	c := NewCompleter(8)
	c.Insert("hello")
	c.Insert("have")
	c.Complete("h", 3)
	c.Complete("h", 3)

	stats := c.Stats()
	want := map[string]int{
		"words":            2,
		"size":             9,
		"height":           5,
		"leaves":           2,
		"maximumBranching": 2,
		"longestWord":      5,
		"cacheEntries":     1,
		"maxCacheEntries":  8,
		"cacheHits":        1,
		"cacheMisses":      1,
	}
	if !reflect.DeepEqual(stats, want) {
		t.Errorf("Stats() = %v, want %v", stats, want)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewCompleter(32)
	prefixes := []string{"h", "he", "hel", "w", "wo", "t"}

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := range 200 {
				word := fmt.Sprintf("hello%d_%d", worker, i)
				c.Insert(word)
				c.Complete(prefixes[i%len(prefixes)], 5)
				if i%3 == 0 {
					c.Remove(word)
				}
			}
		}(w)
	}
	wg.Wait()

	if got, want := c.Len(), 4*(200-67); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestReportingMutations(t *testing.T) {
	c := rankedCompleter(16)

	if c.InsertReport("help") {
		t.Errorf("InsertReport(help) found a word that was not stored")
	}
	if !c.InsertReport("help") {
		t.Errorf("second InsertReport(help) should find it")
	}
	if !c.InsertRankedReport("help", 1) {
		t.Errorf("InsertRankedReport(help) should find it")
	}
	if got := words(c.Complete("he", 1)); !reflect.DeepEqual(got, []string{"help"}) {
		t.Errorf("after re-rank Complete(he, 1) = %q", got)
	}

	found, clean := c.RemoveReport("hell")
	if !found || clean {
		t.Errorf("RemoveReport(hell) = %v, %v; want true, false", found, clean)
	}
	found, clean = c.RemoveReport("hell")
	if found || clean {
		t.Errorf("RemoveReport(hell) twice = %v, %v; want false, false", found, clean)
	}
	found, clean = c.RemoveReport("help")
	if !found || !clean {
		t.Errorf("RemoveReport(help) = %v, %v; want true, true", found, clean)
	}
}
