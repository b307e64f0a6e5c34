// Package handler 提供 HTTP 请求处理器
// 本文件处理积分、主题、道具、学习集相关的 API 请求
package handler

import (
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPointsHandler 查询积分
// GET /users/:username/points
func GetPointsHandler(c *gin.Context) {
	data, err := service.Svc.Economy.GetPoints(c.Param("username"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdatePointsHandler 设置积分
// PUT /users/:username/points
// 请求体: request.UpdatePointsRequest
func UpdatePointsHandler(c *gin.Context) {
	var req request.UpdatePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Economy.UpdatePoints(c.Param("username"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetThemeHandler 查询当前主题
// GET /users/:username/theme
func GetThemeHandler(c *gin.Context) {
	data, err := service.Svc.Economy.GetTheme(c.Param("username"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateThemeHandler 设置当前主题
// PUT /users/:username/theme
// 请求体: request.UpdateThemeRequest
func UpdateThemeHandler(c *gin.Context) {
	var req request.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Economy.UpdateTheme(c.Param("username"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetOwnedThemesHandler 查询已拥有主题
// GET /users/:username/themes
func GetOwnedThemesHandler(c *gin.Context) {
	data, err := service.Svc.Economy.GetOwnedThemes(c.Param("username"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// PurchaseThemeHandler 购买主题
// POST /users/:username/themes/purchase
// 请求体: request.PurchaseThemeRequest
func PurchaseThemeHandler(c *gin.Context) {
	var req request.PurchaseThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Economy.PurchaseTheme(c.Param("username"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// GetPowerupsHandler 查询道具计数
// GET /users/:username/powerups
func GetPowerupsHandler(c *gin.Context) {
	data, err := service.Svc.Economy.GetPowerups(c.Param("username"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// PurchasePowerupHandler 购买道具
// POST /users/:username/powerups/purchase
// 请求体: request.PurchasePowerupRequest
func PurchasePowerupHandler(c *gin.Context) {
	var req request.PurchasePowerupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Economy.PurchasePowerup(c.Param("username"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// UsePowerupHandler 使用道具
// POST /users/:username/powerups/use
// 请求体: request.UsePowerupRequest
func UsePowerupHandler(c *gin.Context) {
	var req request.UsePowerupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Economy.UsePowerup(c.Param("username"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// GetImportedSetsHandler 查询已导入学习集
// GET /users/:username/imported-sets
func GetImportedSetsHandler(c *gin.Context) {
	data, err := service.Svc.Economy.GetImportedSets(c.Param("username"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ImportSetHandler 导入学习集
// POST /users/:username/imported-sets
// 请求体: request.ImportSetRequest
func ImportSetHandler(c *gin.Context) {
	var req request.ImportSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Economy.ImportSet(c.Param("username"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// RemoveImportedSetHandler 移除学习集
// DELETE /users/:username/imported-sets/:setName
func RemoveImportedSetHandler(c *gin.Context) {
	if err := service.Svc.Economy.RemoveImportedSet(c.Param("username"), c.Param("setName")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}
