package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthcall/types"
)

// HandleHealth handles GET /health. It touches no other component.
func (h *APIHandler) HandleHealth(c *gin.Context) {
	writeJSON(c, http.StatusOK, types.HealthResponse{Status: "ok"})
}

// HandleTools handles GET /tools and lists the registered tool definitions.
func (h *APIHandler) HandleTools(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.registry.Definitions())
}
