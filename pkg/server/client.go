package server

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Error is an ErrorResponse returned to a Client.
type Error struct {
	ID      string
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("request %s failed (%d): %s", e.ID, e.Code, e.Message)
}

// Client speaks the IPC protocol to a Server. Calls are sequential: each one
// writes a request and blocks for its response.
type Client struct {
	encoder *msgpack.Encoder
	decoder *msgpack.Decoder
	next    int
}

// NewClient creates a client writing requests to w and reading responses from r.
func NewClient(w io.Writer, r io.Reader) *Client {
	return &Client{
		encoder: msgpack.NewEncoder(w),
		decoder: msgpack.NewDecoder(r),
	}
}

// Ready consumes the server's startup message.
func (c *Client) Ready() error {
	var status StatusResponse
	if err := c.decoder.Decode(&status); err != nil {
		return fmt.Errorf("reading ready message: %w", err)
	}
	if status.Status != "ready" {
		return fmt.Errorf("unexpected startup status %q", status.Status)
	}
	return nil
}

// Do sends req and decodes the response into out. Server-side failures are
// returned as *Error.
func (c *Client) Do(req Request, out any) error {
	if req.ID == "" {
		c.next++
		req.ID = fmt.Sprintf("req_%03d", c.next)
	}
	if err := c.encoder.Encode(req); err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	raw, err := c.decoder.DecodeRaw()
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var failure ErrorResponse
	if err := msgpack.Unmarshal(raw, &failure); err == nil && failure.Error != "" {
		return &Error{ID: failure.ID, Message: failure.Error, Code: failure.Code}
	}
	return msgpack.Unmarshal(raw, out)
}

// Complete asks for up to limit completions of prefix.
func (c *Client) Complete(prefix string, limit int) (CompletionResponse, error) {
	var resp CompletionResponse
	err := c.Do(Request{Action: "complete", Prefix: prefix, Limit: limit}, &resp)
	return resp, err
}

// Predict asks for the most popular completion of prefix.
func (c *Client) Predict(prefix string) (string, bool, error) {
	var resp WordResponse
	err := c.Do(Request{Action: "predict", Prefix: prefix}, &resp)
	return resp.Word, resp.Found, err
}

// Insert stores word with the next sequential rank.
func (c *Client) Insert(word string) (MutationResponse, error) {
	var resp MutationResponse
	err := c.Do(Request{Action: "insert", Word: word}, &resp)
	return resp, err
}

// InsertRanked stores word with rank.
func (c *Client) InsertRanked(word string, rank int) (MutationResponse, error) {
	var resp MutationResponse
	err := c.Do(Request{Action: "insert", Word: word, Rank: &rank}, &resp)
	return resp, err
}

// Remove deletes word.
func (c *Client) Remove(word string) (MutationResponse, error) {
	var resp MutationResponse
	err := c.Do(Request{Action: "remove", Word: word}, &resp)
	return resp, err
}

// Contains reports whether word is stored.
func (c *Client) Contains(word string) (bool, error) {
	var resp WordResponse
	err := c.Do(Request{Action: "contains", Word: word}, &resp)
	return resp.Found, err
}

// Stats fetches dictionary statistics.
func (c *Client) Stats() (map[string]int, error) {
	var resp StatsResponse
	err := c.Do(Request{Action: "stats"}, &resp)
	return resp.Stats, err
}

// Words lists up to limit stored words; 0 lists all.
func (c *Client) Words(limit int) ([]string, error) {
	var resp WordsResponse
	err := c.Do(Request{Action: "words", Limit: limit}, &resp)
	return resp.Words, err
}
