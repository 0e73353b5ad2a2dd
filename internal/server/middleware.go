package server

import (
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// TokenParser resolves a bearer token to a user id
type TokenParser interface {
	Parse(token string) (uint, error)
}

// RequestIDMiddleware tags every request with an id, reusing the caller's if present
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = utils.GenerateID()
	}
	c.Set(utils.RequestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(utils.RequestIDKey),
	}
	if actor := helpers.ActorID(c); actor != 0 {
		fields["user_id"] = actor
	}
	utils.Info("HTTP Request", fields)
}

// RateLimitMiddleware rejects requests once the shared limiter is exhausted
func RateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.AbortJSONError(c, http.StatusTooManyRequests, fmt.Errorf("rate limit exceeded"), "too many requests")
			utils.Warn("RateLimitMiddleware: request throttled", map[string]any{"path": c.Request.URL.Path})
			return
		}
		c.Next()
	}
}

// TimeoutMiddleware bounds the request context. The SQL store honours the deadline;
// the memory store never blocks on I/O and ignores it.
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalActorMiddleware resolves a bearer token when one is sent. Requests without
// an Authorization header continue as guests; a bad token is rejected.
func OptionalActorMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.Debug("OptionalActorMiddleware: guest request", map[string]any{"path": c.FullPath()})
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			err := fmt.Errorf("%w - malformed authorization header", auctionerrors.ErrUnauthorized)
			utils.AbortJSONError(c, http.StatusUnauthorized, err, "authentication required")
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			utils.AbortJSONError(c, http.StatusUnauthorized, err, "authentication required")
			utils.Warn("OptionalActorMiddleware: invalid token", map[string]any{"error": err.Error()})
			return
		}

		utils.Debug("OptionalActorMiddleware: actor resolved", map[string]any{"user_id": userID})
		c.Set(helpers.ActorKey, userID)
		c.Next()
	}
}

// RequireActorMiddleware rejects guests. It must run after OptionalActorMiddleware.
func RequireActorMiddleware(c *gin.Context) {
	if helpers.ActorID(c) == 0 {
		utils.AbortJSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "authentication required")
		return
	}
	c.Next()
}
