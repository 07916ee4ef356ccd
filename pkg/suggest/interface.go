// Package suggest serves ranked completions from a trie dictionary. It guards
// the dictionary with a single lock and caches prediction lists per prefix.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns up to limit suggestions for prefix, most popular first
	Complete(prefix string, limit int) []Suggestion

	// Predict returns the single most popular word for prefix
	Predict(prefix string) (string, bool)

	// Insert adds a word with the next sequential rank
	Insert(word string)

	// InsertRanked adds or re-ranks a word
	InsertRanked(word string, rank int)

	// Remove deletes a word and reports a clean removal
	Remove(word string) bool

	// InsertReport inserts a word and reports whether it was already stored
	InsertReport(word string) bool

	// InsertRankedReport inserts or re-ranks a word and reports whether it was already stored
	InsertRankedReport(word string, rank int) bool

	// RemoveReport deletes a word and reports whether it was stored and whether removal was clean
	RemoveReport(word string) (found, clean bool)

	// Contains reports whether word is stored
	Contains(word string) bool

	// Words returns every stored word in traversal order
	Words() []string

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
