package request

// SendMessageRequest 发送私信请求
// 使用位置:
//   - handler/conversation_handler.go: SendMessageHandler
type SendMessageRequest struct {
	// Message 消息内容，空白内容由 Service 层校验拒绝
	Message string `json:"message"`
}
