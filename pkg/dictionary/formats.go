package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// ErrUnknownFormat is returned when a word list format cannot be determined.
var ErrUnknownFormat = errors.New("unknown dictionary format")

// FileFormat represents different word list formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText                // one word per line, ranked by line order
	FormatRanked              // "word rank" per line
)

// FormatInfo contains metadata about a word list format
type FormatInfo struct {
	Format      FileFormat
	Name        string
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Name:        "text",
		Description: "Plain word list, one word per line",
		Extensions:  []string{".txt", ".lst"},
	},
	FormatRanked: {
		Format:      FormatRanked,
		Name:        "ranked",
		Description: "Ranked word list, word and integer rank per line",
		Extensions:  []string{".tsv", ".rank"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Name
	}
	return "auto"
}

// ParseFormat maps a config or flag value to a FileFormat. "auto" and the
// empty string map to FormatUnknown, which asks the loader to detect it.
func ParseFormat(name string) (FileFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatUnknown, nil
	case "text", "txt":
		return FormatText, nil
	case "ranked", "rank":
		return FormatRanked, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// ListSupportedFormats returns all supported formats ordered by FileFormat.
func ListSupportedFormats() []FormatInfo {
	formats := make([]FormatInfo, 0, len(supportedFormats))
	for _, info := range supportedFormats {
		formats = append(formats, info)
	}
	slices.SortFunc(formats, func(a, b FormatInfo) int { return int(a.Format) - int(b.Format) })
	return formats
}

// ValidateFile checks that filename is a readable, non-empty regular file.
func ValidateFile(fs afero.Fs, filename string) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a word list", filename)
	}
	if info.Size() == 0 {
		return fmt.Errorf("word list %s is empty", filename)
	}
	return nil
}

// DetectFileFormat picks the format from the file extension, falling back to
// inspecting the first non-blank line.
func DetectFileFormat(fs afero.Fs, filename string) (FileFormat, error) {
	if err := ValidateFile(fs, filename); err != nil {
		return FormatUnknown, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, info := range ListSupportedFormats() {
		if slices.Contains(info.Extensions, ext) {
			return info.Format, nil
		}
	}

	f, err := fs.Open(filename)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer f.Close()

	format := sniffFormat(f)
	log.Debugf("Detected format %s for %s", format, filename)
	return format, nil
}

// sniffFormat treats a first line ending in an integer field as ranked.
func sniffFormat(r io.Reader) FileFormat {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, _, err := parseRankedLine(line); err == nil {
			return FormatRanked
		}
		return FormatText
	}
	return FormatText
}

// parseRankedLine splits "word rank" on the last run of whitespace, so the
// word itself may contain spaces.
func parseRankedLine(line string) (string, int, error) {
	i := strings.LastIndexAny(line, " \t")
	if i < 0 {
		return "", 0, fmt.Errorf("missing rank in line %q", line)
	}
	word := strings.TrimSpace(line[:i])
	if word == "" {
		return "", 0, fmt.Errorf("missing word in line %q", line)
	}
	rank, err := strconv.Atoi(line[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid rank in line %q: %w", line, err)
	}
	return word, rank, nil
}
