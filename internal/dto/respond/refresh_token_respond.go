package respond

// RefreshTokenRespond 刷新访问令牌响应
// 使用位置:
//   - internal/service/account/service.go: Refresh
type RefreshTokenRespond struct {
	Ok          bool   `json:"ok"`
	AccessToken string `json:"accessToken"`
}
