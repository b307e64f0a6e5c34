// Package handler 提供 HTTP 请求处理器
// 本文件处理收件箱相关的 API 请求
package handler

import (
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/service"

	"github.com/gin-gonic/gin"
)

// GetInboxHandler 获取收件箱（排除已归档）和未读计数
// GET /users/:username/inbox
// 响应: respond.InboxListRespond
func GetInboxHandler(c *gin.Context) {
	username := c.Param("username")
	data, err := service.Svc.Inbox.GetInboxList(username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// MarkMessageReadHandler 置消息已读
// PUT /users/:username/inbox/:id/read
func MarkMessageReadHandler(c *gin.Context) {
	username := c.Param("username")
	messageId := c.Param("id")
	if err := service.Svc.Inbox.MarkRead(username, messageId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// ArchiveMessageHandler 归档消息
// PUT /users/:username/inbox/:id/archive
func ArchiveMessageHandler(c *gin.Context) {
	username := c.Param("username")
	messageId := c.Param("id")
	if err := service.Svc.Inbox.Archive(username, messageId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}

// DeleteMessageHandler 删除消息（物理删除）
// DELETE /users/:username/inbox/:id
func DeleteMessageHandler(c *gin.Context) {
	username := c.Param("username")
	messageId := c.Param("id")
	if err := service.Svc.Inbox.Delete(username, messageId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.NewOkRespond())
}
