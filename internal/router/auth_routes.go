package router

import (
	"eduquest_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes 注册认证相关路由
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/auth/register", handler.RegisterHandler)
	r.POST("/auth/login", handler.LoginHandler)
	r.POST("/auth/refresh", handler.RefreshHandler)
}
