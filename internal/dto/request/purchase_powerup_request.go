package request

// PurchasePowerupRequest 购买道具请求
// 使用位置:
//   - handler/economy_handler.go: PurchasePowerupHandler
type PurchasePowerupRequest struct {
	// PowerupId 道具标识
	PowerupId string `json:"powerupId" binding:"required"`
}
