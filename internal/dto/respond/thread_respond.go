package respond

// ThreadRespond 两人会话视图响应，按 createdAt 升序
// 使用位置:
//   - internal/service/conversation/service.go: GetThread
type ThreadRespond struct {
	Messages []InboxMessageRespond `json:"messages"`
}
