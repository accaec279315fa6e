package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quochuydev/pet-app/internal/audit"
	"github.com/quochuydev/pet-app/internal/auth"
	"github.com/quochuydev/pet-app/internal/config"
	"github.com/quochuydev/pet-app/internal/httperr"
)

type AuthHandler struct {
	config *config.Config
	tokens *auth.TokenService
	audit  *audit.Dispatcher
}

func NewAuthHandler(
	cfg *config.Config,
	tokens *auth.TokenService,
	dispatcher *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		config: cfg,
		tokens: tokens,
		audit:  dispatcher,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	PIN string `json:"pin"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	// An absent or unreadable body counts as an absent PIN.
	_ = c.ShouldBindJSON(&req)

	if req.PIN == "" {
		httperr.BadRequest(c, "PIN is required")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.PIN), []byte(h.config.AdminPIN)) != 1 {
		httperr.Unauthorized(c, "Invalid PIN")
		return
	}

	token, err := h.tokens.Issue()
	if err != nil {
		httperr.Internal(c, "Authentication failed")
		return
	}

	h.setSessionCookie(c, token, int(auth.TokenTTL.Seconds()))

	h.audit.Dispatch(audit.Event{
		Action: "admin_login",
		Entity: "session",
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)

	h.audit.Dispatch(audit.Event{
		Action: "admin_logout",
		Entity: "session",
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

// --------- Cookie ---------

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		auth.SessionCookie,
		value,
		maxAge,
		"/",
		"",
		h.config.IsProduction(),
		true,
	)
}
