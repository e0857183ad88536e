package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tekimax.app/docs/common/logger"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/service"
)

const (
	sessionCookieName = "docs_session"
	stateCookieName   = "docs_oauth_state"
	sessionIDHeader   = "X-Session-ID"
	identityKey       = "docs.identity"
)

// RequireSession resolves the caller from the X-Session-ID header, falling
// back to the session cookie, and aborts with 401 when there is none.
func RequireSession(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sessionID, ok := sessionIDFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		identity, err := auth.ValidateSession(ctx, sessionID)
		if err != nil {
			if !errors.Is(err, service.ErrSessionExpired) && !errors.Is(err, service.ErrUserNotFound) {
				slog.ErrorContext(ctx, "failed to validate session", "error", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(identityKey, identity)
		c.Request = c.Request.WithContext(logger.WithLogFields(ctx, logger.LogFields{
			UserID: logger.Ptr(identity.UserID),
		}))
		c.Next()
	}
}

func sessionIDFromRequest(c *gin.Context) (int64, bool) {
	raw := c.GetHeader(sessionIDHeader)
	if raw == "" {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil {
			return 0, false
		}
		raw = cookie
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func identityFrom(c *gin.Context) model.Identity {
	v, _ := c.Get(identityKey)
	identity, _ := v.(model.Identity)
	return identity
}

// paramID parses a path id and writes 400 when it is malformed.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func optionalID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
