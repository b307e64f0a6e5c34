package respond

// FriendRequestListRespond 好友申请历史列表响应
// 使用位置:
//   - internal/service/relationship/service.go: GetRequestList
type FriendRequestListRespond struct {
	Requests []FriendRequestRespond `json:"requests"`
}
