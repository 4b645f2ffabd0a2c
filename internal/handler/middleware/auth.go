package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	owners         usecase.OwnerChecker
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserEmailKey = "user_email"
)

var (
	errMissingToken = errs.New("access token required")
	errInvalidToken = errs.New("invalid or expired token")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, owners usecase.OwnerChecker) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		owners:         owners,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Wrap(errInvalidToken, err.Error()), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, identity.UserID)
		c.Set(ctxUserEmailKey, identity.Email)
		c.Next()
	}
}

// RequireRestaurantOwner must run after RequireAuth. The restaurant is read
// from the named path parameter.
func (m *AuthMiddleware) RequireRestaurantOwner(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		restaurantID, err := uuid.Parse(c.Param(param))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid restaurant id", nil)
			return
		}

		if !m.owners.IsOwner(c.Request.Context(), email, restaurantID) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}

	s, ok := email.(string)
	return s, ok && s != ""
}
