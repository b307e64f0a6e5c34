package respond

// InboxMessageRespond 收件箱消息响应
// Id 为雪花 ID 的字符串编码，避免 JavaScript 端 int64 精度丢失
// 使用位置:
//   - internal/service/inbox/service.go: GetInboxList
//   - internal/service/conversation/service.go: GetThread
type InboxMessageRespond struct {
	Id   string `json:"id"`
	Type string `json:"type"`
	// FromUsername 消息来源，系统消息为 "system"
	FromUsername string `json:"fromUsername"`
	Subject      string `json:"subject"`
	Content      string `json:"content"`
	IsRead       bool   `json:"isRead"`
	IsArchived   bool   `json:"isArchived"`
	// PeerUsername 私信对端，仅 direct_message 类型填充
	PeerUsername string `json:"peerUsername,omitempty"`
	// Direction 取值 incoming / outgoing，仅 direct_message 类型填充
	Direction string `json:"direction,omitempty"`
	CreatedAt string `json:"createdAt"`
}
