package request

// SendFriendRequestRequest 发送好友申请请求
// 使用位置:
//   - handler/friend_handler.go: SendFriendRequestHandler
type SendFriendRequestRequest struct {
	// ToUsername 申请对象用户名
	ToUsername string `json:"toUsername" binding:"required"`
}
