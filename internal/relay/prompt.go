package relay

import (
	"fmt"

	"github.com/questlabs/voice-relay/internal/backend"
)

const systemPromptFormat = `You are Quest, a friendly career assistant for fractional and interim professionals.

USER CONTEXT:
%s

GUIDELINES:
- Be conversational and warm. This is a voice conversation
- Keep responses concise (2-3 sentences max) since you're speaking
- If you know their role/location, reference it naturally
- Help them find fractional/interim job opportunities
- If they mention new info (name, role, location, skills), acknowledge it
- Ask clarifying questions when needed
- Be encouraging about their career journey

Remember: You're having a spoken conversation, so be natural and brief.`

func SystemPrompt(userContext string) string {
	return fmt.Sprintf(systemPromptFormat, userContext)
}

// BuildPrompt prepends the synthesized system turn and drops any
// caller-supplied system turns. The remaining turn order is preserved.
func BuildPrompt(system string, turns []backend.Message) []backend.Message {
	out := make([]backend.Message, 0, len(turns)+1)
	out = append(out, backend.Message{Role: backend.RoleSystem, Content: system})
	for _, t := range turns {
		if t.Role == backend.RoleSystem {
			continue
		}
		out = append(out, t)
	}
	return out
}
