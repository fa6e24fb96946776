// Package relay is the session context relay core: it hydrates a turn with
// persisted user context and streams the completion backend's response.
package relay

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/questlabs/voice-relay/internal/backend"
)

type Service struct {
	hydrator *Hydrator
	backend  backend.Backend
	log      *slog.Logger
}

func NewService(h *Hydrator, b backend.Backend, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{hydrator: h, backend: b, log: log}
}

// StreamTurn hydrates the session, grounds the prompt, and returns the
// backend's chunk stream. Cancelling ctx cancels the backend call; chunks are
// delivered in backend order.
func (s *Service) StreamTurn(ctx context.Context, sessionID string, turns []backend.Message) (<-chan json.RawMessage, <-chan error) {
	summary := s.hydrator.Hydrate(ctx, sessionID)
	s.log.Debug("turn context loaded", "session_id", sessionID, "context", summary.Text())

	prompt := BuildPrompt(SystemPrompt(summary.Text()), turns)
	return s.backend.StreamTurn(ctx, prompt)
}
