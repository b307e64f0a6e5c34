package request

// AcceptFriendRequestRequest 接受好友申请请求
// 使用位置:
//   - handler/friend_handler.go: AcceptFriendRequestHandler
type AcceptFriendRequestRequest struct {
	// FromUsername 申请发起方用户名
	FromUsername string `json:"fromUsername" binding:"required"`
}
