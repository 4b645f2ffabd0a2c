package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"restaurant-reservations/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows the Authorization header, whatever
// CORS_ALLOW_HEADERS says.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	headers := slices.Clone(cfg.AllowHeaders)
	if !slices.ContainsFunc(headers, func(h string) bool {
		return http.CanonicalHeaderKey(h) == "Authorization"
	}) {
		headers = append(headers, "Authorization")
	}

	slog.Info("cors configured",
		"origins", cfg.AllowOrigins,
		"methods", cfg.AllowMethods,
		"credentials", cfg.AllowCredentials)

	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
