// Package dictionary loads word lists into a dictionary.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const maxLineLength = 1 << 20

// Inserter receives loaded words. Both *trie.Trie and *suggest.Completer
// implement it.
type Inserter interface {
	Insert(word string)
	InsertRanked(word string, rank int)
	Contains(word string) bool
}

// LoadStats provides statistics about a load. Words counts newly stored
// words only; repeated entries land in Duplicates.
type LoadStats struct {
	Lines      int
	Words      int
	Duplicates int
	Skipped    int
}

// Loader reads word lists from a filesystem.
type Loader struct {
	fs       afero.Fs
	maxWords int
}

// NewLoader creates a loader on fs. maxWords caps the number of inserted
// words per load; 0 loads everything.
func NewLoader(fs afero.Fs, maxWords int) *Loader {
	return &Loader{
		fs:       fs,
		maxWords: maxWords,
	}
}

// LoadFile loads the word list at path into dict. FormatUnknown detects the
// format from the file.
func (l *Loader) LoadFile(path string, format FileFormat, dict Inserter) (LoadStats, error) {
	if format == FormatUnknown {
		detected, err := DetectFileFormat(l.fs, path)
		if err != nil {
			return LoadStats{}, err
		}
		format = detected
	}

	f, err := l.fs.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer f.Close()

	stats, err := l.Load(f, format, dict)
	if err != nil {
		return stats, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s (%d lines, %d duplicates, %d skipped)", stats.Words, path, stats.Lines, stats.Duplicates, stats.Skipped)
	return stats, nil
}

// Load reads one entry per line from r. Lines are trimmed; blank lines,
// invalid UTF-8 and malformed ranked lines are skipped. A repeated ranked
// entry overwrites the earlier rank but does not count toward maxWords.
func (l *Loader) Load(r io.Reader, format FileFormat, dict Inserter) (LoadStats, error) {
	if _, ok := supportedFormats[format]; !ok {
		return LoadStats{}, fmt.Errorf("%w: %v", ErrUnknownFormat, int(format))
	}

	var stats LoadStats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			log.Warnf("Skipping line %d: invalid UTF-8", stats.Lines)
			stats.Skipped++
			continue
		}

		var existed bool
		switch format {
		case FormatText:
			existed = dict.Contains(line)
			dict.Insert(line)
		case FormatRanked:
			word, rank, err := parseRankedLine(line)
			if err != nil {
				log.Warnf("Skipping line %d: %v", stats.Lines, err)
				stats.Skipped++
				continue
			}
			existed = dict.Contains(word)
			dict.InsertRanked(word, rank)
		}
		if existed {
			stats.Duplicates++
			continue
		}

		stats.Words++
		if l.maxWords > 0 && stats.Words >= l.maxWords {
			log.Debugf("Reached word limit of %d at line %d", l.maxWords, stats.Lines)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading line %d: %w", stats.Lines+1, err)
	}
	return stats, nil
}
