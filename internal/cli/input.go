// Package cli implements the interactive prediction prompt: it reads one
// prefix per line and prints the most popular completions.
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/dictree/internal/logger"
	"github.com/bastiangx/dictree/internal/utils"
	"github.com/bastiangx/dictree/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, providing
// suggestions. Flags control the accepted prefix lengths, the number of
// suggestions and whether input filtering applies.
type InputHandler struct {
	completer       suggest.ICompleter
	in              io.Reader
	out             *log.Logger
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	requestCount    int
	noFilter        bool
}

// NewInputHandler creates a handler on stdin and stdout.
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		completer:       completer,
		in:              os.Stdin,
		out:             logger.New(""),
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		noFilter:        noFilter,
	}
}

// WithIO redirects the handler's input and output.
func (h *InputHandler) WithIO(in io.Reader, out io.Writer) *InputHandler {
	h.in = in
	h.out = logger.NewWriter(out, "")
	return h
}

// Warmup prints the suggestions for prefix without validating it, so users
// see the dictionary is live before typing.
func (h *InputHandler) Warmup(prefix string) {
	if prefix == "" {
		return
	}
	h.printSuggestions(prefix, h.completer.Complete(prefix, h.suggestLimit))
}

// Start runs the prompt loop until the input ends or ":quit" is entered.
// ":stats" prints dictionary statistics.
func (h *InputHandler) Start() error {
	h.out.Print("dictree prompt")
	h.out.Print("type a prefix and press Enter to see predictions (:stats, :quit)")
	scanner := bufio.NewScanner(h.in)

	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		switch prefix := strings.TrimSpace(scanner.Text()); prefix {
		case "":
		case ":quit":
			return nil
		case ":stats":
			h.printStats()
		default:
			h.handleInput(prefix)
		}
	}
}

// handleInput validates a prefix and prints its suggestions.
func (h *InputHandler) handleInput(prefix string) {
	h.requestCount++
	length := utf8.RuneCountInString(prefix)

	if length < h.minPrefixLength {
		h.out.Printf("Prefix too short: %s", prefix)
		return
	}
	if h.maxPrefixLength > 0 && length > h.maxPrefixLength {
		h.out.Printf("Prefix too long: %s", prefix)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter && !utils.IsValidInput(prefix) {
		h.out.Printf("no match for '%s'", prefix)
		return
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix, h.suggestLimit)
	log.Debugf("Took [ %v ] for prefix '%s' (request %d)", time.Since(start), prefix, h.requestCount)

	h.printSuggestions(prefix, suggestions)
}

func (h *InputHandler) printSuggestions(prefix string, suggestions []suggest.Suggestion) {
	if len(suggestions) == 0 {
		h.out.Printf("no match for '%s'", prefix)
		return
	}
	h.out.Printf("---> %s", suggestions[0].Word)
	if len(suggestions) == 1 {
		return
	}
	h.out.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		h.out.Printf("%2d. %-24s (rank: %s)", i+1, s.Word, utils.FormatWithCommas(s.Rank))
	}
}

func (h *InputHandler) printStats() {
	stats := h.completer.Stats()
	h.out.Print("stats",
		"words", stats["words"],
		"size", stats["size"],
		"height", stats["height"],
		"leaves", stats["leaves"],
		"maximumBranching", stats["maximumBranching"],
		"longestWord", stats["longestWord"])
}
