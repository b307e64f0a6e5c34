package request

// ImportSetRequest 导入学习集请求
// 使用位置:
//   - handler/economy_handler.go: ImportSetHandler
type ImportSetRequest struct {
	// SetName 学习集名称
	SetName string `json:"setName" binding:"required"`
}
