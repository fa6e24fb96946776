// Package vault holds the relay's own secrets. Read-only after startup.
package vault

import (
	"github.com/questlabs/voice-relay/internal/config"
	"github.com/questlabs/voice-relay/internal/relayerr"
)

type Vault struct {
	SharedSecret      string
	VoiceClientID     string
	VoiceClientSecret string
	VoiceConfigID     string
	BackendAPIKey     string
}

func FromConfig(cfg config.Config) *Vault {
	return &Vault{
		SharedSecret:      cfg.RelaySharedSecret,
		VoiceClientID:     cfg.VoiceAPIKey,
		VoiceClientSecret: cfg.VoiceSecretKey,
		VoiceConfigID:     cfg.VoiceConfigID,
		BackendAPIKey:     cfg.OpenAIAPIKey,
	}
}

// Validate reports the first missing required secret as a ConfigError.
func (v *Vault) Validate() error {
	checks := []struct {
		value   string
		setting string
	}{
		{v.SharedSecret, "RELAY_SHARED_SECRET"},
		{v.VoiceClientID, "VOICE_API_KEY"},
		{v.VoiceClientSecret, "VOICE_SECRET_KEY"},
		{v.VoiceConfigID, "VOICE_CONFIG_ID"},
		{v.BackendAPIKey, "OPENAI_API_KEY"},
	}
	for _, c := range checks {
		if c.value == "" {
			return &relayerr.ConfigError{Setting: c.setting}
		}
	}
	return nil
}
