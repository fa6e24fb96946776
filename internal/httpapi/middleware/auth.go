package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/questlabs/voice-relay/internal/common"
)

// SharedSecretAuth gates the relay behind the bearer secret the voice
// platform is configured with. The comparison is constant-time; a mismatch
// aborts before any collaborator is touched.
func SharedSecretAuth(secret string) gin.HandlerFunc {
	want := sha256.Sum256([]byte(secret))
	return func(c *gin.Context) {
		token, hasPrefix := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		got := sha256.Sum256([]byte(token))
		if !hasPrefix || subtle.ConstantTimeCompare(got[:], want[:]) != 1 {
			common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
