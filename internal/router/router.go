// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"eduquest_server/internal/config"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/handler"
	"eduquest_server/internal/infrastructure/middleware"
)

// startTime 进程启动时间，health 接口据此报告 uptime
var startTime = time.Now()

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
// /users 组的认证由配置开关控制：enforce 打开时要求 Bearer Token，
// 关闭时接口全开放，由周边认证层自行决定策略
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", healthHandler)

	RegisterAuthRoutes(r) // 认证路由（注册/登录/刷新）

	users := r.Group("/users")
	if config.GetConfig().JWTConfig.Enforce {
		users.Use(middleware.JWTAuth())
	}
	RegisterFriendRoutes(users)       // 好友关系路由
	RegisterInboxRoutes(users)        // 收件箱路由
	RegisterConversationRoutes(users) // 会话路由
	RegisterEconomyRoutes(users)      // 经济系统路由
}

// healthHandler 健康检查
// GET /health
func healthHandler(c *gin.Context) {
	handler.HandleSuccess(c, &respond.HealthRespond{
		Ok:     true,
		Uptime: time.Since(startTime).Seconds(),
	})
}
