package request

// LoginRequest 用户登录请求
// 使用位置:
//   - handler/auth_handler.go: LoginHandler
type LoginRequest struct {
	// Username 用户名
	Username string `json:"username" binding:"required"`
	// Password 明文密码
	Password string `json:"password" binding:"required"`
}
