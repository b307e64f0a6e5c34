package respond

// ThemeListRespond 已拥有主题列表响应
// 使用位置:
//   - internal/service/economy/service.go: GetOwnedThemes
type ThemeListRespond struct {
	Themes []string `json:"themes"`
}
