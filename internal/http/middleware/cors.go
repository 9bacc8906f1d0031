package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/careermitra/careermitra-backend/internal/platform/envutil"
)

// CORS allows every origin by default so the quiz/chat frontend can be served
// from anywhere; set CORS_ALLOW_ORIGINS to a comma-separated list to restrict
// it (credentials are only allowed with an explicit origin list).
func CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-Id"},
	}

	raw := envutil.Str("CORS_ALLOW_ORIGINS", "*")
	if raw == "*" {
		cfg.AllowAllOrigins = true
	} else {
		origins := make([]string, 0)
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
