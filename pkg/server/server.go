package server

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/dictree/pkg/config"
	"github.com/bastiangx/dictree/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultLimit = 10

// ErrUnknownAction is reported for requests with an unsupported action.
var ErrUnknownAction = errors.New("unknown action")

// Server handles msgpack IPC for a completer.
type Server struct {
	completer    suggest.ICompleter
	config       config.ServerConfig
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(completer suggest.ICompleter, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	return &Server{
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
	}
}

// Start announces readiness and serves requests until the input ends. A
// clean EOF returns nil; a broken stream returns the decode error. A frame
// that does not decode into a Request is answered with a 400.
func (s *Server) Start() error {
	log.Debug("Starting Server.")
	if err := s.encoder.Encode(StatusResponse{Status: "ready"}); err != nil {
		return fmt.Errorf("writing ready message: %w", err)
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return fmt.Errorf("decoding request: %w", err)
		}
		s.requestCount++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.sendError(requestID(raw), fmt.Sprintf("Invalid request: %v", err), 400)
			continue
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}
		s.handleRequest(req)
	}
}

// requestID salvages the id of a frame that failed to decode as a Request.
func requestID(raw msgpack.RawMessage) string {
	var frame struct {
		ID any `msgpack:"id"`
	}
	if err := msgpack.Unmarshal(raw, &frame); err != nil {
		return ""
	}
	if id, ok := frame.ID.(string); ok {
		return id
	}
	return ""
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "complete":
		s.handleComplete(req)
	case "predict":
		s.handlePredict(req)
	case "insert":
		s.handleInsert(req)
	case "remove":
		s.handleRemove(req)
	case "contains":
		s.handleContains(req)
	case "stats":
		s.sendResponse(StatsResponse{ID: req.ID, Stats: s.completer.Stats()})
	case "words":
		s.handleWords(req)
	case "health":
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("%v: %s", ErrUnknownAction, req.Action), 400)
	}
}

// validPrefix checks text against the configured length limit and UTF-8.
func (s *Server) validPrefix(id, text string) bool {
	if !utf8.ValidString(text) {
		s.sendError(id, "Prefix is not valid UTF-8", 400)
		return false
	}
	if s.config.MaxPrefix > 0 && utf8.RuneCountInString(text) > s.config.MaxPrefix {
		s.sendError(id, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.config.MaxPrefix), 400)
		return false
	}
	return true
}

func (s *Server) validWord(id, word string) bool {
	if word == "" {
		s.sendError(id, "Missing 'w' parameter", 400)
		return false
	}
	if !utf8.ValidString(word) {
		s.sendError(id, "Word is not valid UTF-8", 400)
		return false
	}
	return true
}

func (s *Server) handleComplete(req Request) {
	if !s.validPrefix(req.ID, req.Prefix) {
		return
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if s.config.MaxLimit > 0 && limit > s.config.MaxLimit {
		limit = s.config.MaxLimit
	}

	start := time.Now()
	suggestions := s.completer.Complete(req.Prefix, limit)
	elapsed := time.Since(start)

	resp := CompletionResponse{
		ID:          req.ID,
		Suggestions: make([]CompletionSuggestion, len(suggestions)),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
	for i, sg := range suggestions {
		resp.Suggestions[i] = CompletionSuggestion{Word: sg.Word, Rank: sg.Rank}
	}
	log.Debug("complete", "prefix", req.Prefix, "limit", limit, "count", resp.Count, "took", elapsed)
	s.sendResponse(resp)
}

func (s *Server) handlePredict(req Request) {
	if !s.validPrefix(req.ID, req.Prefix) {
		return
	}
	word, found := s.completer.Predict(req.Prefix)
	s.sendResponse(WordResponse{ID: req.ID, Word: word, Found: found})
}

func (s *Server) handleInsert(req Request) {
	if !s.validWord(req.ID, req.Word) {
		return
	}
	var found bool
	if req.Rank != nil {
		found = s.completer.InsertRankedReport(req.Word, *req.Rank)
	} else {
		found = s.completer.InsertReport(req.Word)
	}
	s.sendResponse(MutationResponse{ID: req.ID, Status: "ok", Found: found})
}

func (s *Server) handleRemove(req Request) {
	if !s.validWord(req.ID, req.Word) {
		return
	}
	found, clean := s.completer.RemoveReport(req.Word)
	s.sendResponse(MutationResponse{ID: req.ID, Status: "ok", Found: found, Clean: clean})
}

func (s *Server) handleContains(req Request) {
	if !s.validWord(req.ID, req.Word) {
		return
	}
	s.sendResponse(WordResponse{ID: req.ID, Word: req.Word, Found: s.completer.Contains(req.Word)})
}

func (s *Server) handleWords(req Request) {
	words := s.completer.Words()
	if req.Limit > 0 && len(words) > req.Limit {
		words = words[:req.Limit]
	}
	s.sendResponse(WordsResponse{ID: req.ID, Words: words, Count: len(words)})
}

func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	log.Debug("request failed", "id", id, "error", message, "code", code)
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
