package message_type_enum

// 收件箱消息类型
const (
	SYSTEM         int8 = iota // 系统通知
	FRIEND_REQUEST             // 好友申请通知
	DIRECT_MESSAGE             // 私聊消息
)

// String 转换为对外接口使用的类型字符串
func String(t int8) string {
	switch t {
	case FRIEND_REQUEST:
		return "friend_request"
	case DIRECT_MESSAGE:
		return "direct_message"
	default:
		return "system"
	}
}
