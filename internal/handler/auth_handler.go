// Package handler 提供 HTTP 请求处理器
// 本文件处理注册、登录和令牌刷新
package handler

import (
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterHandler 用户注册
// POST /auth/register
// 请求体: request.RegisterRequest
func RegisterHandler(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Account.Register(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// LoginHandler 密码登录
// POST /auth/login
// 请求体: request.LoginRequest
// 响应: respond.LoginRespond
func LoginHandler(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Account.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RefreshHandler 刷新 Access Token
// POST /auth/refresh
// 请求体: request.RefreshTokenRequest
// 响应: respond.RefreshTokenRespond
func RefreshHandler(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Account.Refresh(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
