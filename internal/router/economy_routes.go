package router

import (
	"eduquest_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterEconomyRoutes 注册积分、主题、道具、学习集相关路由
func RegisterEconomyRoutes(users *gin.RouterGroup) {
	users.GET("/:username/points", handler.GetPointsHandler)
	users.PUT("/:username/points", handler.UpdatePointsHandler)

	users.GET("/:username/theme", handler.GetThemeHandler)
	users.PUT("/:username/theme", handler.UpdateThemeHandler)
	users.GET("/:username/themes", handler.GetOwnedThemesHandler)
	users.POST("/:username/themes/purchase", handler.PurchaseThemeHandler)

	users.GET("/:username/powerups", handler.GetPowerupsHandler)
	users.POST("/:username/powerups/purchase", handler.PurchasePowerupHandler)
	users.POST("/:username/powerups/use", handler.UsePowerupHandler)

	users.GET("/:username/imported-sets", handler.GetImportedSetsHandler)
	users.POST("/:username/imported-sets", handler.ImportSetHandler)
	users.DELETE("/:username/imported-sets/:setName", handler.RemoveImportedSetHandler)
}
