package middleware

import (
	"github.com/gin-gonic/gin"
)

// Preflight answers for the contact endpoint are cached for a day
const (
	corsAllowMethods = "POST, OPTIONS"
	corsAllowHeaders = "Content-Type, Accept"
	corsMaxAge       = "86400"
)

// CORS allows cross-origin access to the public form endpoint and disables
// caching of every answer it produces
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		SetCORSHeaders(c)
		c.Next()
	}
}

// SetCORSHeaders marks a single answer as cross-origin readable and uncacheable
func SetCORSHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Cache-Control", "no-store")
}

// PreflightHeaders sets the headers advertised to OPTIONS requests
func PreflightHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", corsAllowMethods)
	c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
	c.Header("Access-Control-Max-Age", corsMaxAge)
}
