package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - handler/auth_handler.go: RegisterHandler
type RegisterRequest struct {
	// Username 用户名，唯一
	Username string `json:"username" binding:"required,min=2,max=32"`
	// Password 明文密码，存储前经 bcrypt 哈希
	Password string `json:"password" binding:"required,min=6"`
}
