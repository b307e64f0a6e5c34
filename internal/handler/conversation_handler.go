// Package handler 提供 HTTP 请求处理器
// 本文件处理两人会话相关的 API 请求
package handler

import (
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetThreadHandler 获取与 peer 的会话记录
// GET /users/:username/conversations/:peer
// 响应: respond.ThreadRespond
func GetThreadHandler(c *gin.Context) {
	username := c.Param("username")
	peer := c.Param("peer")
	data, err := service.Svc.Conversation.GetThread(username, peer)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SendMessageHandler 发送私信
// POST /users/:username/conversations/:peer
// 请求体: request.SendMessageRequest
func SendMessageHandler(c *gin.Context) {
	username := c.Param("username")
	peer := c.Param("peer")
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := service.Svc.Conversation.SendMessage(username, peer, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}
