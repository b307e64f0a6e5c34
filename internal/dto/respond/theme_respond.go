package respond

// ThemeRespond 当前主题响应
// 使用位置:
//   - internal/service/economy/service.go: GetTheme / UpdateTheme
type ThemeRespond struct {
	Theme string `json:"theme"`
}
