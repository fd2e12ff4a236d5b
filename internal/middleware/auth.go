package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/examforge/examforge/internal/auth"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/repository"
)

const callerKey = "auth_caller"

// RequireAuth verifies the bearer token, checks the account is still active
// and stores the resulting auth.Caller on the request context.
func RequireAuth(secret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
			return
		}

		caller, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			log.Warn().Err(err).Msg("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		user, err := users.FindByID(caller.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unknown user"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Account is deactivated"})
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// RequireAuthor gates exam/question authoring routes. Must run after
// RequireAuth.
func RequireAuthor() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
			return
		}
		if !caller.Role.CanAuthorExams() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Teacher or admin role required"})
			return
		}
		c.Next()
	}
}

// CallerFrom returns the caller stored by RequireAuth.
func CallerFrom(c *gin.Context) (auth.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return auth.Caller{}, false
	}
	caller, ok := v.(auth.Caller)
	return caller, ok
}

func extractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errMissingToken
	}
	return parts[1], nil
}

var errMissingToken = errors.New("Missing or malformed Authorization header")
