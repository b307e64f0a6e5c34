package request_status_enum

// 好友申请状态
const (
	PENDING  int8 = iota // 申请中
	ACCEPTED             // 已通过
	DECLINED             // 已拒绝
)

// String 转换为对外接口使用的状态字符串
func String(status int8) string {
	switch status {
	case ACCEPTED:
		return "accepted"
	case DECLINED:
		return "declined"
	default:
		return "pending"
	}
}
