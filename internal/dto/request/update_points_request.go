package request

// UpdatePointsRequest 更新积分请求
// 接收浮点数以兼容客户端传值，写入前截断为整数并钳制到 >= 0
// 使用位置:
//   - handler/economy_handler.go: UpdatePointsHandler
type UpdatePointsRequest struct {
	// Points 新的积分值
	Points *float64 `json:"points" binding:"required"`
}
