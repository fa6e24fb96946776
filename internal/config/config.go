package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// DSN demo:
	// app:apppass@tcp(127.0.0.1:3306)/quest?charset=utf8mb4&parseTime=true&loc=Local
	DBDSN string `env:"DB_DSN" envDefault:"app:apppass@tcp(127.0.0.1:3306)/quest?charset=utf8mb4&parseTime=true&loc=Local"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Shared secret the voice platform presents on every turn request.
	RelaySharedSecret string `env:"RELAY_SHARED_SECRET"`

	// Voice platform client-credentials pair and deployment config id.
	VoiceAPIKey    string `env:"VOICE_API_KEY"`
	VoiceSecretKey string `env:"VOICE_SECRET_KEY"`
	VoiceConfigID  string `env:"VOICE_CONFIG_ID"`
	VoiceTokenURL  string `env:"VOICE_TOKEN_URL" envDefault:"https://api.hume.ai/oauth2-cc/token"`

	// Completion backend.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Upper bounds on time-to-first-byte for upstream calls.
	TokenExchangeTimeout   time.Duration `env:"TOKEN_EXCHANGE_TIMEOUT" envDefault:"10s"`
	StreamFirstByteTimeout time.Duration `env:"STREAM_FIRST_BYTE_TIMEOUT" envDefault:"30s"`

	// Turn event publishing; empty RABBIT_URL disables it.
	RabbitURL   string `env:"RABBIT_URL"`
	RabbitQueue string `env:"RABBIT_QUEUE" envDefault:"voice_turn_events"`

	SessionCookieName string `env:"SESSION_COOKIE" envDefault:"session_id"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
