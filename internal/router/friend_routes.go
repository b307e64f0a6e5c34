package router

import (
	"eduquest_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterFriendRoutes 注册好友关系相关路由
func RegisterFriendRoutes(users *gin.RouterGroup) {
	users.GET("/:username/friends", handler.GetFriendListHandler)
	users.POST("/:username/friend-request", handler.SendFriendRequestHandler)
	users.POST("/:username/friend-request/accept", handler.AcceptFriendRequestHandler)
	users.POST("/:username/friend-request/decline", handler.DeclineFriendRequestHandler)
	users.GET("/:username/friend-requests", handler.GetFriendRequestListHandler)
	users.POST("/:username/block", handler.BlockUserHandler)
	users.DELETE("/:username/block/:target", handler.UnblockUserHandler)
}
