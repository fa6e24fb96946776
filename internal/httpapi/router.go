package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/questlabs/voice-relay/internal/common"
	"github.com/questlabs/voice-relay/internal/httpapi/handlers"
	"github.com/questlabs/voice-relay/internal/httpapi/middleware"
)

func NewRouter(h *handlers.Handler, sharedSecret string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	r.GET("/ping", h.Ping)

	// the voice platform calls this from the user's browser session
	r.POST("/voice/access-token", h.IssueAccessToken)

	// per-turn callback from the voice platform (shared secret required)
	clm := r.Group("/voice")
	clm.Use(middleware.SharedSecretAuth(sharedSecret))
	clm.POST("/chat/completions", h.RelayTurn)

	return r
}
