// Package voice talks to the voice platform's OAuth token endpoint.
package voice

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/questlabs/voice-relay/internal/config"
	"github.com/questlabs/voice-relay/internal/relayerr"
	"github.com/questlabs/voice-relay/internal/vault"
)

// AccessToken is handed straight to the caller and not retained.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
	ConfigID    string `json:"configId"`
	UserID      string `json:"userId"`
}

type Issuer struct {
	creds    *vault.Vault
	tokenURL string
	timeout  time.Duration

	// overridable for tests
	httpClient *http.Client
}

type IssuerOption func(*Issuer)

func WithHTTPClient(c *http.Client) IssuerOption {
	return func(i *Issuer) { i.httpClient = c }
}

func NewIssuer(creds *vault.Vault, cfg config.Config, opts ...IssuerOption) *Issuer {
	i := &Issuer{
		creds:    creds,
		tokenURL: cfg.VoiceTokenURL,
		timeout:  cfg.TokenExchangeTimeout,
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// IssueToken performs a fresh client-credentials exchange and echoes the
// session hint back with the issued token. Called once per voice session
// start, so no caching and no retries: a failure must surface immediately.
func (i *Issuer) IssueToken(ctx context.Context, sessionHint string) (*AccessToken, error) {
	if i.creds.VoiceClientID == "" {
		return nil, &relayerr.ConfigError{Setting: "VOICE_API_KEY"}
	}
	if i.creds.VoiceClientSecret == "" {
		return nil, &relayerr.ConfigError{Setting: "VOICE_SECRET_KEY"}
	}

	cctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()
	if i.httpClient != nil {
		cctx = context.WithValue(cctx, oauth2.HTTPClient, i.httpClient)
	}

	conf := &clientcredentials.Config{
		ClientID:     i.creds.VoiceClientID,
		ClientSecret: i.creds.VoiceClientSecret,
		TokenURL:     i.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tok, err := conf.Token(cctx)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil {
			return nil, &relayerr.UpstreamAuthError{
				Status: rerr.Response.StatusCode,
				Body:   string(rerr.Body),
			}
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(cctx.Err(), context.DeadlineExceeded) {
			return nil, &relayerr.UpstreamTimeoutError{Op: "token exchange"}
		}
		return nil, err
	}

	return &AccessToken{
		AccessToken: tok.AccessToken,
		ConfigID:    i.creds.VoiceConfigID,
		UserID:      sessionHint,
	}, nil
}
