package router

import (
	"eduquest_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterConversationRoutes 注册两人会话相关路由
func RegisterConversationRoutes(users *gin.RouterGroup) {
	users.GET("/:username/conversations/:peer", handler.GetThreadHandler)
	users.POST("/:username/conversations/:peer", handler.SendMessageHandler)
}
