package respond

// HealthRespond 健康检查响应
// 使用位置:
//   - internal/router/router.go: healthHandler
type HealthRespond struct {
	Ok bool `json:"ok"`
	// Uptime 服务已运行秒数
	Uptime float64 `json:"uptime"`
}
