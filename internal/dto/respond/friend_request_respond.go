package respond

// FriendRequestRespond 单条好友申请记录
// 使用位置:
//   - internal/service/relationship/service.go: GetRequestList
type FriendRequestRespond struct {
	FromUsername string `json:"fromUsername"`
	ToUsername   string `json:"toUsername"`
	// Status 取值 pending / accepted / declined
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
