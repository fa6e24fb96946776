package relay

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/questlabs/voice-relay/internal/profile"
)

type fakeStore struct {
	identity *profile.Identity
	state    *profile.CurrentState
	skills   []string
	err      error
	calls    int
}

func (s *fakeStore) Identity(ctx context.Context, userID string) (*profile.Identity, error) {
	s.calls++
	return s.identity, s.err
}

func (s *fakeStore) CurrentState(ctx context.Context, userID string) (*profile.CurrentState, error) {
	s.calls++
	return s.state, s.err
}

func (s *fakeStore) SkillNames(ctx context.Context, userID string) ([]string, error) {
	s.calls++
	return s.skills, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHydrate_AnonymousSkipsStore(t *testing.T) {
	store := &fakeStore{}
	h := NewHydrator(store, testLogger())

	for _, sid := range []string{"", AnonymousSession} {
		got := h.Hydrate(context.Background(), sid)
		if got.Text() != summaryNewUser {
			t.Fatalf("session %q: unexpected summary: %q", sid, got.Text())
		}
	}
	if store.calls != 0 {
		t.Fatalf("expected no store reads for anonymous sessions, got %d", store.calls)
	}
}

func TestHydrate_FullProfileFieldOrder(t *testing.T) {
	store := &fakeStore{
		identity: &profile.Identity{ID: "u1", Name: "Ada"},
		state: &profile.CurrentState{
			UserID:       "u1",
			RoleTitle:    "CTO",
			Location:     "Berlin",
			DayRate:      "900",
			Availability: "2 days/week",
			WorkStyle:    "Remote",
		},
		skills: []string{"Go", "SQL"},
	}
	h := NewHydrator(store, testLogger())

	got := h.Hydrate(context.Background(), "u1")
	want := "User's name: Ada. Target role: CTO. Preferred location: Berlin. " +
		"Day rate: 900. Availability: 2 days/week. Work style: Remote. Skills: Go, SQL."
	if got.Text() != want {
		t.Fatalf("summary mismatch:\n got: %q\nwant: %q", got.Text(), want)
	}
}

func TestHydrate_AbsentFieldsOmitted(t *testing.T) {
	store := &fakeStore{
		state: &profile.CurrentState{UserID: "u2", RoleTitle: "CTO"},
	}
	h := NewHydrator(store, testLogger())

	got := h.Hydrate(context.Background(), "u2")
	if got.Text() != "Target role: CTO." {
		t.Fatalf("unexpected summary: %q", got.Text())
	}
	if len(got.Facts) != 1 {
		t.Fatalf("expected exactly 1 fact, got %d", len(got.Facts))
	}
}

func TestHydrate_EmptyProfile(t *testing.T) {
	h := NewHydrator(&fakeStore{}, testLogger())

	got := h.Hydrate(context.Background(), "u3")
	if got.Text() != summaryNoData {
		t.Fatalf("unexpected summary: %q", got.Text())
	}
	if got.Text() == "" {
		t.Fatal("summary must never be empty")
	}
}

func TestHydrate_StoreErrorDegrades(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	h := NewHydrator(store, testLogger())

	got := h.Hydrate(context.Background(), "u4")
	if got.Text() != summaryDegraded {
		t.Fatalf("unexpected summary: %q", got.Text())
	}
}
