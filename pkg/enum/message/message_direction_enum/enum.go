package message_direction_enum

// 私聊消息方向，仅 direct_message 类型使用
const (
	INCOMING int8 = iota // 收到的一份
	OUTGOING             // 发出的一份
)

// String 转换为对外接口使用的方向字符串
func String(d int8) string {
	if d == OUTGOING {
		return "outgoing"
	}
	return "incoming"
}
