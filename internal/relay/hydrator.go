package relay

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/questlabs/voice-relay/internal/profile"
	"github.com/questlabs/voice-relay/internal/relayerr"
)

// AnonymousSession marks a caller with no authenticated user.
const AnonymousSession = "anonymous"

const (
	summaryNewUser  = "New user - no profile data yet. Ask them about their role and location."
	summaryNoData   = "User has an account but no profile data yet."
	summaryDegraded = "Unable to load user profile."
)

type Fact struct {
	Label string
	Value string
}

// Summary is an ordered list of labeled facts, or a fixed fallback text.
// Built fresh per request, never cached.
type Summary struct {
	Facts    []Fact
	Fallback string
}

func (s Summary) Text() string {
	if s.Fallback != "" {
		return s.Fallback
	}
	parts := make([]string, 0, len(s.Facts))
	for _, f := range s.Facts {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Label, f.Value))
	}
	return strings.Join(parts, ". ") + "."
}

type Hydrator struct {
	store profile.Store
	log   *slog.Logger
}

func NewHydrator(store profile.Store, log *slog.Logger) *Hydrator {
	if log == nil {
		log = slog.Default()
	}
	return &Hydrator{store: store, log: log}
}

// Hydrate builds the context summary for a session. It never fails: store
// errors degrade to a fixed summary because losing personalization must not
// abort an in-progress voice turn.
func (h *Hydrator) Hydrate(ctx context.Context, sessionID string) Summary {
	if sessionID == "" || sessionID == AnonymousSession {
		return Summary{Fallback: summaryNewUser}
	}

	identity, err := h.store.Identity(ctx, sessionID)
	if err != nil {
		return h.degrade(sessionID, err)
	}
	state, err := h.store.CurrentState(ctx, sessionID)
	if err != nil {
		return h.degrade(sessionID, err)
	}
	skills, err := h.store.SkillNames(ctx, sessionID)
	if err != nil {
		return h.degrade(sessionID, err)
	}

	var facts []Fact
	add := func(label, value string) {
		if value != "" {
			facts = append(facts, Fact{Label: label, Value: value})
		}
	}
	if identity != nil {
		add("User's name", identity.Name)
	}
	if state != nil {
		add("Target role", state.RoleTitle)
		add("Preferred location", state.Location)
		add("Day rate", state.DayRate)
		add("Availability", state.Availability)
		add("Work style", state.WorkStyle)
	}
	if len(skills) > 0 {
		facts = append(facts, Fact{Label: "Skills", Value: strings.Join(skills, ", ")})
	}

	if len(facts) == 0 {
		return Summary{Fallback: summaryNoData}
	}
	return Summary{Facts: facts}
}

func (h *Hydrator) degrade(sessionID string, err error) Summary {
	h.log.Warn("profile lookup degraded",
		"session_id", sessionID,
		"err", err,
		"class", relayerr.ErrStoreDegraded)
	return Summary{Fallback: summaryDegraded}
}
