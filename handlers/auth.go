package handlers

import (
	"net/http"

	"meetsync/config"
	"meetsync/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

// GoogleLoginHandler hands out the Google consent URL with a fresh CSRF state.
func (h *HandlerBundle) GoogleLoginHandler(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(oauthStateCookie, state, 300, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"url": h.AuthSvc.LoginURL(state)})
}

// GoogleCallbackHandler completes the OAuth code exchange and redirects to the
// frontend with the session token.
func (h *HandlerBundle) GoogleCallbackHandler(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", config.IsProduction(), true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	resp, err := h.AuthSvc.HandleCallback(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, config.AppConfig.FrontendURL+"/auth/callback?token="+resp.Token)
}

// LogoutHandler revokes the caller's session.
func (h *HandlerBundle) LogoutHandler(c *gin.Context) {
	userRec := middleware.CurrentUser(c)
	if userRec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	if err := h.AuthSvc.Logout(c.Request.Context(), userRec.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// MeHandler returns the authenticated user's profile.
func (h *HandlerBundle) MeHandler(c *gin.Context) {
	userRec := middleware.CurrentUser(c)
	if userRec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, userRec.Public())
}
