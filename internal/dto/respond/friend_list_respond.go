package respond

// FriendListRespond 好友列表响应
// 使用位置:
//   - internal/service/relationship/service.go: GetFriendList
type FriendListRespond struct {
	Friends []string `json:"friends"`
}
