package types

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status string `json:"status"`
}
