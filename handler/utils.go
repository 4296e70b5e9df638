package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthcall/logger"
	"healthcall/types"
	"healthcall/utils"
)

// writeJSON 写入 JSON 响应
func writeJSON(c *gin.Context, status int, data interface{}) {
	body, err := utils.Marshal(data)
	if err != nil {
		logger.Error("❌ JSON encoding failed | error=%v", err)
		c.Data(http.StatusInternalServerError, "application/json; charset=utf-8", []byte(`{"error":"internal error"}`))
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

// writeError 写入错误响应
func writeError(c *gin.Context, status int, message string) {
	writeJSON(c, status, types.ErrorResponse{Error: message})
}
