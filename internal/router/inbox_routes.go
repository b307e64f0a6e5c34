package router

import (
	"eduquest_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterInboxRoutes 注册收件箱相关路由
func RegisterInboxRoutes(users *gin.RouterGroup) {
	users.GET("/:username/inbox", handler.GetInboxHandler)
	users.PUT("/:username/inbox/:id/read", handler.MarkMessageReadHandler)
	users.PUT("/:username/inbox/:id/archive", handler.ArchiveMessageHandler)
	users.DELETE("/:username/inbox/:id", handler.DeleteMessageHandler)
}
