package suggest

import (
	"math"

	"github.com/bastiangx/dictree/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

type cacheEntry struct {
	limit   int
	matches []trie.Match
}

// serves reports whether the entry answers a request for limit results: either
// it was computed with at least that limit, or it already holds every match.
func (e *cacheEntry) serves(limit int) bool {
	return e.limit >= limit || len(e.matches) < e.limit
}

// PredictionCache keeps recent prediction lists keyed by prefix in a patricia
// trie, so that a changed word can drop exactly the prefixes it belongs to.
// It is not safe for concurrent use; Completer serializes access.
type PredictionCache struct {
	entries     *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	maxEntries  int
	hits        int
	misses      int
}

// NewPredictionCache creates a cache holding at most maxEntries prefixes.
func NewPredictionCache(maxEntries int) *PredictionCache {
	return &PredictionCache{
		entries:    patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached matches for prefix trimmed to limit.
func (pc *PredictionCache) Get(prefix string, limit int) ([]trie.Match, bool) {
	item := pc.entries.Get(patricia.Prefix(prefix))
	if item == nil {
		pc.misses++
		return nil, false
	}
	entry := item.(*cacheEntry)
	if !entry.serves(limit) {
		pc.misses++
		return nil, false
	}
	pc.hits++
	pc.markAccessed(prefix)

	matches := entry.matches
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]trie.Match, len(matches))
	copy(out, matches)
	return out, true
}

// Put stores the matches computed for prefix with the given limit.
func (pc *PredictionCache) Put(prefix string, limit int, matches []trie.Match) {
	if pc.maxEntries <= 0 || prefix == "" {
		return
	}
	key := patricia.Prefix(prefix)
	if pc.entries.Get(key) == nil && len(pc.accessTime) >= pc.maxEntries {
		pc.evictLRU()
	}
	stored := make([]trie.Match, len(matches))
	copy(stored, matches)
	pc.entries.Set(key, &cacheEntry{limit: limit, matches: stored})
	pc.markAccessed(prefix)
}

// Invalidate drops every cached prefix of word, the only entries a change to
// word can affect.
func (pc *PredictionCache) Invalidate(word string) {
	var stale []patricia.Prefix
	err := pc.entries.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, append(patricia.Prefix(nil), p...))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting prediction cache: %v", err)
	}
	for _, p := range stale {
		pc.entries.Delete(p)
		delete(pc.accessTime, string(p))
	}
	if len(stale) > 0 {
		log.Debugf("Invalidated %d cached prefixes of '%s'", len(stale), word)
	}
}

// Len returns the number of cached prefixes.
func (pc *PredictionCache) Len() int {
	return len(pc.accessTime)
}

// Stats returns cache counters.
func (pc *PredictionCache) Stats() map[string]int {
	return map[string]int{
		"cacheEntries":    len(pc.accessTime),
		"maxCacheEntries": pc.maxEntries,
		"cacheHits":       pc.hits,
		"cacheMisses":     pc.misses,
	}
}

func (pc *PredictionCache) markAccessed(prefix string) {
	pc.accessCount++
	pc.accessTime[prefix] = pc.accessCount
}

func (pc *PredictionCache) evictLRU() {
	var oldest string
	var oldestTime int64 = math.MaxInt64

	for prefix, t := range pc.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = prefix
		}
	}
	if oldestTime == math.MaxInt64 {
		return
	}
	pc.entries.Delete(patricia.Prefix(oldest))
	delete(pc.accessTime, oldest)
	log.Debugf("Evicted prefix '%s' from prediction cache", oldest)
}
