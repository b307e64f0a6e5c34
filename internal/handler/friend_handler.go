// Package handler 提供 HTTP 请求处理器
// 本文件处理好友关系相关的 API 请求
package handler

import (
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetFriendListHandler 获取好友列表
// GET /users/:username/friends
// 响应: respond.FriendListRespond
func GetFriendListHandler(c *gin.Context) {
	username := c.Param("username")
	data, err := service.Svc.Relationship.GetFriendList(username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SendFriendRequestHandler 发送好友申请
// POST /users/:username/friend-request
// 请求体: request.SendFriendRequestRequest
func SendFriendRequestHandler(c *gin.Context) {
	username := c.Param("username")
	var req request.SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Relationship.SendRequest(username, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// AcceptFriendRequestHandler 接受好友申请
// POST /users/:username/friend-request/accept
// 请求体: request.AcceptFriendRequestRequest
func AcceptFriendRequestHandler(c *gin.Context) {
	username := c.Param("username")
	var req request.AcceptFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Relationship.AcceptRequest(username, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// DeclineFriendRequestHandler 拒绝好友申请
// POST /users/:username/friend-request/decline
// 请求体: request.DeclineFriendRequestRequest
func DeclineFriendRequestHandler(c *gin.Context) {
	username := c.Param("username")
	var req request.DeclineFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Relationship.DeclineRequest(username, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// GetFriendRequestListHandler 获取收到的好友申请历史
// GET /users/:username/friend-requests
// 响应: respond.FriendRequestListRespond
func GetFriendRequestListHandler(c *gin.Context) {
	username := c.Param("username")
	data, err := service.Svc.Relationship.GetRequestList(username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// BlockUserHandler 拉黑用户
// POST /users/:username/block
// 请求体: request.BlockUserRequest
func BlockUserHandler(c *gin.Context) {
	username := c.Param("username")
	var req request.BlockUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Relationship.Block(username, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// UnblockUserHandler 取消拉黑
// DELETE /users/:username/block/:target
func UnblockUserHandler(c *gin.Context) {
	username := c.Param("username")
	target := c.Param("target")
	if err := service.Svc.Relationship.Unblock(username, target); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}
