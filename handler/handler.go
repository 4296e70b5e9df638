package handler

import (
	"healthcall/tools"
)

// APIHandler API 处理器
type APIHandler struct {
	registry *tools.Registry
}

// NewAPIHandler 创建 API 处理器
func NewAPIHandler(registry *tools.Registry) *APIHandler {
	return &APIHandler{
		registry: registry,
	}
}
