package request

// UsePowerupRequest 使用道具请求
// 使用位置:
//   - handler/economy_handler.go: UsePowerupHandler
type UsePowerupRequest struct {
	// PowerupId 道具标识
	PowerupId string `json:"powerupId" binding:"required"`
}
