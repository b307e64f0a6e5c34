package respond

// LoginRespond 登录成功响应
// 使用位置:
//   - internal/service/account/service.go: Login
type LoginRespond struct {
	Ok           bool   `json:"ok"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
