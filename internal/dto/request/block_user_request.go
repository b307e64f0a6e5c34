package request

// BlockUserRequest 拉黑用户请求
// 使用位置:
//   - handler/friend_handler.go: BlockUserHandler
type BlockUserRequest struct {
	// BlockUsername 被拉黑的用户名
	BlockUsername string `json:"blockUsername" binding:"required"`
}
