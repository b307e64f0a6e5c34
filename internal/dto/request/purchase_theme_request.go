package request

// PurchaseThemeRequest 购买主题请求
// 使用位置:
//   - handler/economy_handler.go: PurchaseThemeHandler
type PurchaseThemeRequest struct {
	// Theme 主题名称
	Theme string `json:"theme" binding:"required"`
}
