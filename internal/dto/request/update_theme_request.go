package request

// UpdateThemeRequest 设置当前主题请求
// 使用位置:
//   - handler/economy_handler.go: UpdateThemeHandler
type UpdateThemeRequest struct {
	// Theme 主题名称
	Theme string `json:"theme" binding:"required"`
}
