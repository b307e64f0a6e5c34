package respond

// OkRespond 通用成功响应 {"ok":true}
// 使用位置: 所有只需确认成功的写操作
type OkRespond struct {
	Ok bool `json:"ok"`
}

// NewOkRespond 创建成功响应
func NewOkRespond() *OkRespond {
	return &OkRespond{Ok: true}
}
