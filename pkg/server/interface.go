/*
Package server implements msgpack IPC for the dictree dictionary.

Clients write a stream of msgpack-encoded requests to the server's input and
read one msgpack response per request from its output. The binary wires these
to stdin and stdout.

# Requests

Every request carries an id and an action. Missing ids are replaced by a
random UUID which the response echoes.

	{"id": "req_001", "action": "complete", "p": "hel", "l": 5}
	{"id": "req_002", "action": "insert", "w": "help", "r": 2}
	{"id": "req_003", "action": "remove", "w": "help"}

Actions: complete, predict, insert, remove, contains, stats, words, health.

# Responses

Completions are ordered by rank, most popular first:

	{"id": "req_001", "s": [{"w": "help", "r": 2}, {"w": "hello", "r": 9}], "c": 2, "t": 41}

Failures use ErrorResponse with an HTTP-like code:

	{"id": "req_004", "error": "unknown action: fly", "code": 400}
*/
package server

// Request is a single client message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Prefix string `msgpack:"p,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Rank   *int   `msgpack:"r,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank int    `msgpack:"r"`
}

// CompletionResponse answers complete requests. TimeTaken is in microseconds.
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// WordResponse answers predict and contains requests.
type WordResponse struct {
	ID    string `msgpack:"id"`
	Word  string `msgpack:"w"`
	Found bool   `msgpack:"found"`
}

// MutationResponse answers insert and remove requests. Found reports whether
// the word was stored before the call; Clean mirrors a clean removal.
type MutationResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Found  bool   `msgpack:"found"`
	Clean  bool   `msgpack:"clean,omitempty"`
}

// StatsResponse carries dictionary and cache statistics.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// WordsResponse lists stored words in traversal order.
type WordsResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"words"`
	Count int      `msgpack:"c"`
}

// StatusResponse is sent once on startup and answers health requests.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"error"`
	Code  int    `msgpack:"code"`
}
