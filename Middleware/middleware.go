package Middleware

import (
	"net/http"
	"time"

	"DentaDesk/Models"
	"DentaDesk/Utils/Token"

	"github.com/gin-gonic/gin"
)

func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := Token.ExtractTokenID(c)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Invalid")
			c.Abort()
			return
		}
		if _, err := Models.DB.GetUserByID(userID); err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized User Unknown")
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

// RequireUnlocked gates premium features behind the trial/subscription
// policy. Evaluated fresh on every request; nothing is cached. The session
// exists because JwtAuthMiddleware runs first.
func RequireUnlocked() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Models.DB.EntitlementAt(true, time.Now()) == Models.Locked {
			c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Feature locked. Subscribe to continue."})
			c.Abort()
			return
		}
		c.Next()
	}
}
