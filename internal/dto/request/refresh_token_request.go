package request

// RefreshTokenRequest 刷新访问令牌请求
// 使用位置:
//   - handler/auth_handler.go: RefreshHandler
type RefreshTokenRequest struct {
	// RefreshToken 登录时签发的刷新令牌
	RefreshToken string `json:"refreshToken" binding:"required"`
}
