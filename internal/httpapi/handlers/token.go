package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/questlabs/voice-relay/internal/relayerr"
	"github.com/questlabs/voice-relay/internal/store/redisstore"
)

type accessTokenReq struct {
	UserID string `json:"user_id"`
}

// IssueAccessToken exchanges the relay's client credentials for a short-lived
// voice platform token. The user id is taken from the body, falling back to
// the web session cookie so logged-in users get a personalized call without
// the page having to know its own user id.
func (h *Handler) IssueAccessToken(c *gin.Context) {
	var req accessTokenReq
	_ = c.ShouldBindJSON(&req) // empty body is fine: anonymous caller

	ctx := c.Request.Context()

	userID := strings.TrimSpace(req.UserID)
	if userID == "" && h.Sessions != nil {
		if sid, err := c.Cookie(h.Cfg.SessionCookieName); err == nil && sid != "" {
			uid, err := h.Sessions.UserIDForSession(ctx, sid)
			switch {
			case err == nil:
				userID = uid
			case !errors.Is(err, redisstore.ErrNoSession):
				h.Log.Warn("web session lookup failed", "err", err)
			}
		}
	}

	tok, err := h.Issuer.IssueToken(ctx, userID)
	if err != nil {
		var (
			cfgErr  *relayerr.ConfigError
			authErr *relayerr.UpstreamAuthError
			toErr   *relayerr.UpstreamTimeoutError
		)
		switch {
		case errors.As(err, &cfgErr):
			h.Log.Error("token issuance misconfigured", "setting", cfgErr.Setting)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "voice service not configured"})
		case errors.As(err, &authErr):
			h.Log.Error("voice platform rejected token exchange",
				"status", authErr.Status, "body", authErr.Body)
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to get voice access token"})
		case errors.As(err, &toErr):
			h.Log.Error("token exchange timed out")
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "voice platform timeout"})
		default:
			h.Log.Error("token exchange failed", "err", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to get voice access token"})
		}
		return
	}

	c.JSON(http.StatusOK, tok)
}
