package voice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/questlabs/voice-relay/internal/config"
	"github.com/questlabs/voice-relay/internal/relayerr"
	"github.com/questlabs/voice-relay/internal/vault"
)

func testConfig(tokenURL string) config.Config {
	return config.Config{
		VoiceTokenURL:        tokenURL,
		TokenExchangeTimeout: 5 * time.Second,
	}
}

func testVault() *vault.Vault {
	return &vault.Vault{
		VoiceClientID:     "client-id",
		VoiceClientSecret: "client-secret",
		VoiceConfigID:     "cfg-123",
	}
}

func TestIssueToken_ExchangesCredentialsAndEchoesHint(t *testing.T) {
	var gotGrant string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			t.Errorf("missing or wrong basic auth: %q/%q", user, pass)
		}
		if err := r.ParseForm(); err == nil {
			gotGrant = r.PostForm.Get("grant_type")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-abc","token_type":"bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	issuer := NewIssuer(testVault(), testConfig(srv.URL))

	tok, err := issuer.IssueToken(context.Background(), "user-42")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if gotGrant != "client_credentials" {
		t.Fatalf("unexpected grant type %q", gotGrant)
	}
	if tok.AccessToken != "tok-abc" {
		t.Fatalf("unexpected access token %q", tok.AccessToken)
	}
	if tok.ConfigID != "cfg-123" {
		t.Fatalf("unexpected config id %q", tok.ConfigID)
	}
	if tok.UserID != "user-42" {
		t.Fatalf("session hint not echoed: %q", tok.UserID)
	}
}

func TestIssueToken_UpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	issuer := NewIssuer(testVault(), testConfig(srv.URL))

	tok, err := issuer.IssueToken(context.Background(), "user-42")
	if tok != nil {
		t.Fatal("no token must be returned on upstream rejection")
	}
	var authErr *relayerr.UpstreamAuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected UpstreamAuthError, got %v", err)
	}
	if authErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected upstream status 401, got %d", authErr.Status)
	}
}

func TestIssueToken_MissingCredentialsFailFast(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	issuer := NewIssuer(&vault.Vault{VoiceClientID: "client-id"}, testConfig(srv.URL))

	_, err := issuer.IssueToken(context.Background(), "")
	var cfgErr *relayerr.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Setting != "VOICE_SECRET_KEY" {
		t.Fatalf("unexpected setting %q", cfgErr.Setting)
	}
	if calls != 0 {
		t.Fatalf("no network call may happen without credentials, got %d", calls)
	}
}

func TestIssueToken_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	cfg := testConfig(srv.URL)
	cfg.TokenExchangeTimeout = 50 * time.Millisecond
	issuer := NewIssuer(testVault(), cfg)

	_, err := issuer.IssueToken(context.Background(), "")
	var toErr *relayerr.UpstreamTimeoutError
	if !errors.As(err, &toErr) {
		t.Fatalf("expected UpstreamTimeoutError, got %v", err)
	}
}
