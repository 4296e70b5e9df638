package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthcall/logger"
)

// NewRouter wires the routes behind the given middleware.
// Panics inside a handler become a 500 with the usual error body.
func NewRouter(h *APIHandler, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("❌ Panic while handling request | path=%s panic=%v", c.Request.URL.Path, recovered)
		writeError(c, http.StatusInternalServerError, fmt.Sprintf("internal error: %v", recovered))
		c.Abort()
	}))
	router.Use(middlewares...)

	router.GET("/health", h.HandleHealth)
	router.GET("/tools", h.HandleTools)
	router.POST("/tool/:toolName", h.HandleToolCalls)

	router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "Not found")
	})

	return router
}
