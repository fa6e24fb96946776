package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/questlabs/voice-relay/internal/backend"
	"github.com/questlabs/voice-relay/internal/common"
	"github.com/questlabs/voice-relay/internal/events"
	"github.com/questlabs/voice-relay/internal/relay"
	"github.com/questlabs/voice-relay/internal/relayerr"
)

type relayReq struct {
	Messages []backend.Message `json:"messages"`
}

// RelayTurn streams one turn completion back to the voice platform as SSE.
// Auth has already been enforced by the shared-secret middleware. The
// response status is decided by the first thing the backend produces; once a
// chunk has been written the headers are committed and a later failure can
// only terminate the stream.
func (h *Handler) RelayTurn(c *gin.Context) {
	var req relayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	sessionID := c.Query("custom_session_id")
	if sessionID == "" {
		sessionID = relay.AnonymousSession
	}

	turnID, _ := common.NewULID()
	started := time.Now()
	ctx := c.Request.Context()

	chunks, errs := h.Relay.StreamTurn(ctx, sessionID, req.Messages)

	flusher, canFlush := c.Writer.(http.Flusher)
	if !canFlush {
		common.Fail(c, http.StatusInternalServerError, 50003, "streaming unsupported")
		return
	}

	streaming := false
	emitted := 0

	beginStream := func() {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no") // helpful if behind nginx
		c.Status(http.StatusOK)
		streaming = true
	}

	finish := func(class string) {
		h.publishTurn(sessionID, turnID, emitted, time.Since(started), class)
	}

	for {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				chunks = nil
				if errs == nil {
					if !streaming {
						beginStream()
					}
					fmt.Fprint(c.Writer, "data: [DONE]\n\n")
					flusher.Flush()
					finish("")
					return
				}
				continue
			}
			if !streaming {
				beginStream()
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", chunk)
			flusher.Flush()
			emitted++

		case err, ok := <-errs:
			if !ok {
				errs = nil
				if chunks == nil {
					if !streaming {
						beginStream()
					}
					fmt.Fprint(c.Writer, "data: [DONE]\n\n")
					flusher.Flush()
					finish("")
					return
				}
				continue
			}
			if err == nil {
				continue
			}
			if streaming {
				// headers are committed: close without the sentinel
				h.Log.Error("stream terminated mid-turn",
					"session_id", sessionID, "turn_id", turnID, "err", err)
				finish(errClass(err))
				return
			}
			h.Log.Error("turn failed before streaming",
				"session_id", sessionID, "turn_id", turnID, "err", err)
			c.JSON(statusFor(err), gin.H{"error": "completion backend error"})
			finish(errClass(err))
			return

		case <-ctx.Done():
			// caller hung up; StreamTurn's context cancels the backend call
			h.Log.Info("downstream disconnected",
				"session_id", sessionID, "turn_id", turnID, "chunks", emitted)
			finish("canceled")
			return
		}
	}
}

func (h *Handler) publishTurn(sessionID, turnID string, chunks int, elapsed time.Duration, class string) {
	if h.Events == nil {
		return
	}
	ev := events.TurnEvent{
		Type:       events.TypeTurnCompleted,
		SessionID:  sessionID,
		TurnID:     turnID,
		Chunks:     chunks,
		DurationMS: elapsed.Milliseconds(),
		Error:      class,
	}
	go func() {
		if err := h.Events.PublishTurn(context.Background(), ev); err != nil {
			h.Log.Warn("turn event publish failed", "turn_id", turnID, "err", err)
		}
	}()
}

func statusFor(err error) int {
	var toErr *relayerr.UpstreamTimeoutError
	if errors.As(err, &toErr) {
		return http.StatusGatewayTimeout
	}
	var cfgErr *relayerr.ConfigError
	if errors.As(err, &cfgErr) {
		return http.StatusInternalServerError
	}
	return http.StatusBadGateway
}

func errClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.As(err, new(*relayerr.UpstreamTimeoutError)):
		return "timeout"
	case errors.As(err, new(*relayerr.UpstreamStreamError)):
		return "stream"
	default:
		return "backend"
	}
}
