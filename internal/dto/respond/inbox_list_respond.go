package respond

// InboxListRespond 收件箱列表响应
// UnreadCount 为返回集合内未读消息数
// 使用位置:
//   - internal/service/inbox/service.go: GetInboxList
type InboxListRespond struct {
	Messages    []InboxMessageRespond `json:"messages"`
	UnreadCount int                   `json:"unreadCount"`
}
