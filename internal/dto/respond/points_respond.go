package respond

// PointsRespond 积分响应
// 使用位置:
//   - internal/service/economy/service.go: GetPoints / UpdatePoints
type PointsRespond struct {
	Points int64 `json:"points"`
}
