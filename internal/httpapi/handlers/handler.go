package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/questlabs/voice-relay/internal/common"
	"github.com/questlabs/voice-relay/internal/config"
	"github.com/questlabs/voice-relay/internal/events"
	"github.com/questlabs/voice-relay/internal/relay"
	"github.com/questlabs/voice-relay/internal/store/redisstore"
	"github.com/questlabs/voice-relay/internal/voice"
)

type Handler struct {
	Cfg      config.Config
	Issuer   *voice.Issuer
	Relay    *relay.Service
	Sessions *redisstore.Store
	Events   *events.Publisher
	Log      *slog.Logger
}

func NewHandler(cfg config.Config, issuer *voice.Issuer, svc *relay.Service, sessions *redisstore.Store, pub *events.Publisher, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		Cfg:      cfg,
		Issuer:   issuer,
		Relay:    svc,
		Sessions: sessions,
		Events:   pub,
		Log:      log,
	}
}

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"pong": true})
}
