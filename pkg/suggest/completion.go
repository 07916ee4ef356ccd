package suggest

import (
	"sync"

	"github.com/bastiangx/dictree/pkg/trie"
)

// Suggestion is a completion candidate. Lower ranks are more popular.
type Suggestion struct {
	Word string
	Rank int
}

// Completer serializes access to one dictionary and its prediction cache.
// Every method holds the same lock, so a Completer can be shared freely.
type Completer struct {
	mu    sync.Mutex
	dict  *trie.Trie
	cache *PredictionCache
}

// NewCompleter creates a completer over an empty dictionary. cacheSize bounds
// the number of cached prefixes; 0 disables caching.
func NewCompleter(cacheSize int) *Completer {
	return NewCompleterFor(trie.New(), cacheSize)
}

// NewCompleterFor wraps an existing dictionary. The caller must not touch
// dict directly afterwards.
func NewCompleterFor(dict *trie.Trie, cacheSize int) *Completer {
	c := &Completer{dict: dict}
	if cacheSize > 0 {
		c.cache = NewPredictionCache(cacheSize)
	}
	return c
}

// Complete returns up to limit suggestions starting with prefix.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if limit <= 0 {
		return []Suggestion{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var matches []trie.Match
	var hit bool
	if c.cache != nil {
		matches, hit = c.cache.Get(prefix, limit)
	}
	if !hit {
		matches = c.dict.Matches(prefix, limit)
		if c.cache != nil {
			c.cache.Put(prefix, limit, matches)
		}
	}

	suggestions := make([]Suggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = Suggestion{Word: m.Word, Rank: m.Rank}
	}
	return suggestions
}

// Predict returns the most popular word starting with prefix.
func (c *Completer) Predict(prefix string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dict.Predict(prefix)
}

// Insert adds word with the next sequential rank.
func (c *Completer) Insert(word string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dict.Insert(word)
	c.invalidate(word)
}

// InsertRanked adds word with rank, overwriting any previous rank.
func (c *Completer) InsertRanked(word string, rank int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dict.InsertRanked(word, rank)
	c.invalidate(word)
}

// Remove deletes word and reports whether its node was pruned.
func (c *Completer) Remove(word string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	clean := c.dict.Remove(word)
	c.invalidate(word)
	return clean
}

// InsertReport adds word like Insert and reports whether it was already
// stored, under a single lock.
func (c *Completer) InsertReport(word string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := c.dict.Contains(word)
	c.dict.Insert(word)
	c.invalidate(word)
	return found
}

// InsertRankedReport adds word like InsertRanked and reports whether it was
// already stored.
func (c *Completer) InsertRankedReport(word string, rank int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := c.dict.Contains(word)
	c.dict.InsertRanked(word, rank)
	c.invalidate(word)
	return found
}

// RemoveReport deletes word like Remove and also reports whether it was
// stored beforehand.
func (c *Completer) RemoveReport(word string) (found, clean bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	found = c.dict.Contains(word)
	clean = c.dict.Remove(word)
	c.invalidate(word)
	return found, clean
}

// Contains reports whether word is stored.
func (c *Completer) Contains(word string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dict.Contains(word)
}

// Rank returns the rank of a stored word.
func (c *Completer) Rank(word string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dict.Rank(word)
}

// Words returns every stored word in traversal order.
func (c *Completer) Words() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dict.AllWords()
}

// Len returns the number of stored words.
func (c *Completer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dict.Len()
}

// LongestWord returns the longest stored word.
func (c *Completer) LongestWord() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dict.LongestWord()
}

// Stats returns structural statistics of the dictionary and cache counters.
func (c *Completer) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.dict.Stats()
	stats := map[string]int{
		"words":            s.Words,
		"size":             s.Size,
		"height":           s.Height,
		"leaves":           s.Leaves,
		"maximumBranching": s.MaximumBranching,
		"longestWord":      s.LongestWordLen(),
	}
	if c.cache != nil {
		for k, v := range c.cache.Stats() {
			stats[k] = v
		}
	}
	return stats
}

func (c *Completer) invalidate(word string) {
	if c.cache != nil {
		c.cache.Invalidate(word)
	}
}
