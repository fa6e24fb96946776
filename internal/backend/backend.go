package backend

import (
	"context"
	"encoding/json"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Backend streams a turn completion. Chunks carry the backend's own chunk
// JSON, re-serialized but never reinterpreted; both channels are closed when
// the stream ends. At most one error is sent.
type Backend interface {
	StreamTurn(ctx context.Context, messages []Message) (<-chan json.RawMessage, <-chan error)
}
