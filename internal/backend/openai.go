package backend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/questlabs/voice-relay/internal/relayerr"
)

type OpenAI struct {
	client openai.Client
	model  string
	ttfb   time.Duration
}

func NewOpenAI(apiKey, model string, ttfb time.Duration) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		ttfb:   ttfb,
	}
}

// StreamTurn forwards each completion chunk as its raw JSON. The first chunk
// must arrive within the configured bound or the call fails with an
// UpstreamTimeoutError.
func (b *OpenAI) StreamTurn(ctx context.Context, messages []Message) (<-chan json.RawMessage, <-chan error) {
	chunks := make(chan json.RawMessage, 16)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		if strings.TrimSpace(b.model) == "" {
			errs <- errors.New("openai: model is required")
			return
		}

		params := openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(b.model),
			Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
		}
		for _, m := range messages {
			switch m.Role {
			case RoleSystem:
				params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
			case RoleAssistant:
				params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
			default:
				params.Messages = append(params.Messages, openai.UserMessage(m.Content))
			}
		}

		sctx, cancel := context.WithCancel(ctx)
		defer cancel()

		// cancel the stream if the first byte never shows up
		timedOut := make(chan struct{})
		ttfbTimer := time.AfterFunc(b.ttfb, func() {
			close(timedOut)
			cancel()
		})
		defer ttfbTimer.Stop()

		stream := b.client.Chat.Completions.NewStreaming(sctx, params)
		defer stream.Close()

		first := true
		for stream.Next() {
			if first {
				ttfbTimer.Stop()
				first = false
			}
			chunk := stream.Current()
			select {
			case chunks <- json.RawMessage(chunk.RawJSON()):
			case <-sctx.Done():
				return
			}
		}

		if err := stream.Err(); err != nil {
			select {
			case <-timedOut:
				errs <- &relayerr.UpstreamTimeoutError{Op: "completion stream"}
			default:
				if ctx.Err() != nil {
					// downstream went away; nothing to report
					return
				}
				errs <- &relayerr.UpstreamStreamError{Op: "completion stream", Err: err}
			}
		}
	}()

	return chunks, errs
}
