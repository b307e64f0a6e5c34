package respond

// PowerupListRespond 道具计数响应，键为道具 ID
// 使用位置:
//   - internal/service/economy/service.go: GetPowerups
type PowerupListRespond struct {
	Powerups map[string]int `json:"powerups"`
}
