package request

// DeclineFriendRequestRequest 拒绝好友申请请求
// 使用位置:
//   - handler/friend_handler.go: DeclineFriendRequestHandler
type DeclineFriendRequestRequest struct {
	// FromUsername 申请发起方用户名
	FromUsername string `json:"fromUsername" binding:"required"`
}
