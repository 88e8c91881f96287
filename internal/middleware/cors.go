package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns the cross-origin policy for the public API. The site frontend
// and localhost development origins are allowed; credentials stay on because
// the auth callback sets them.
func CORS(siteBaseURL string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{siteBaseURL, "http://localhost:3000", "http://localhost:8080"}
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	return cors.New(config)
}
