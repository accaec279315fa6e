package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quochuydev/pet-app/internal/auth"
	"github.com/quochuydev/pet-app/internal/httperr"
)

const ContextRole = "sessionRole"

// Session gates admin routes on the signed session cookie. A missing,
// tampered or expired cookie all produce the same 401; the distinction is
// deliberately not exposed.
func Session(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.SessionCookie)
		if err != nil || tokenString == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
		Error: "Unauthorized. Please login first.",
	})
}
