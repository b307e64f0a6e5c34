// Package inbox 实现收件箱业务
// 收件箱是每个用户一份的只追加消息日志，默认列表视图排除已归档消息
package inbox

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"eduquest_server/internal/dao/mysql/repository"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/model"
	"eduquest_server/pkg/enum/message/message_direction_enum"
	"eduquest_server/pkg/enum/message/message_type_enum"
	"eduquest_server/pkg/errorx"
)

// Directory 用户名解析依赖，由 service/directory 提供实现
type Directory interface {
	Resolve(username string) (*model.User, error)
	Lookup(username string) error
}

// inboxService 收件箱业务实现
type inboxService struct {
	repos     *repository.Repositories
	directory Directory
}

// NewInboxService 构造函数
func NewInboxService(repos *repository.Repositories, directory Directory) *inboxService {
	return &inboxService{repos: repos, directory: directory}
}

// ToMessageRespond 将消息模型转换为响应结构
// 私聊专用字段仅在 direct_message 类型时填充
func ToMessageRespond(message *model.InboxMessage) respond.InboxMessageRespond {
	rsp := respond.InboxMessageRespond{
		Id:           strconv.FormatInt(message.Uuid, 10),
		Type:         message_type_enum.String(message.Type),
		FromUsername: message.FromUsername,
		Subject:      message.Subject,
		Content:      message.Content,
		IsRead:       message.IsRead,
		IsArchived:   message.IsArchived,
		CreatedAt:    message.CreatedAt.Format(time.RFC3339),
	}
	if message.Type == message_type_enum.DIRECT_MESSAGE {
		rsp.PeerUsername = message.PeerUsername
		rsp.Direction = message_direction_enum.String(message.Direction)
	}
	return rsp
}

// parseMessageId 解析路径中的消息 ID
// 非法 ID 视同不存在，与未知 ID 走同一个 NotFound 出口
func parseMessageId(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errorx.Newf(errorx.CodeNotFound, "message %s not found", raw)
	}
	return id, nil
}

// GetInboxList 获取收件箱
// 排除已归档消息，按到达顺序返回，并统计返回集合内的未读数
func (s *inboxService) GetInboxList(username string) (*respond.InboxListRespond, error) {
	if _, err := s.directory.Resolve(username); err != nil {
		return nil, err
	}

	rows, err := s.repos.Inbox.ListByOwner(username, true)
	if err != nil {
		zap.L().Error("List inbox error", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}

	messages := make([]respond.InboxMessageRespond, 0, len(rows))
	unread := 0
	for i := range rows {
		if !rows[i].IsRead {
			unread++
		}
		messages = append(messages, ToMessageRespond(&rows[i]))
	}
	return &respond.InboxListRespond{Messages: messages, UnreadCount: unread}, nil
}

// MarkRead 置已读
// 已读消息上重复调用是 no-op；ID 不存在返回 NotFound
func (s *inboxService) MarkRead(owner string, messageId string) error {
	if _, err := s.directory.Resolve(owner); err != nil {
		return err
	}
	id, err := parseMessageId(messageId)
	if err != nil {
		return err
	}

	message, err := s.repos.Inbox.FindByOwnerAndUuid(owner, id)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.Newf(errorx.CodeNotFound, "message %s not found", messageId)
		}
		zap.L().Error("Find inbox message error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if message.IsRead {
		return nil
	}

	if err := s.repos.Inbox.MarkRead(owner, id); err != nil {
		zap.L().Error("Mark message read error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// Archive 归档，幂等
func (s *inboxService) Archive(owner string, messageId string) error {
	if _, err := s.directory.Resolve(owner); err != nil {
		return err
	}
	id, err := parseMessageId(messageId)
	if err != nil {
		return err
	}

	message, err := s.repos.Inbox.FindByOwnerAndUuid(owner, id)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.Newf(errorx.CodeNotFound, "message %s not found", messageId)
		}
		zap.L().Error("Find inbox message error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if message.IsArchived {
		return nil
	}

	if err := s.repos.Inbox.Archive(owner, id); err != nil {
		zap.L().Error("Archive message error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// Delete 物理删除，无软删除、无恢复
// 删除不存在的 ID 返回 NotFound
func (s *inboxService) Delete(owner string, messageId string) error {
	if _, err := s.directory.Resolve(owner); err != nil {
		return err
	}
	id, err := parseMessageId(messageId)
	if err != nil {
		return err
	}

	deleted, err := s.repos.Inbox.Delete(owner, id)
	if err != nil {
		zap.L().Error("Delete message error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if !deleted {
		return errorx.Newf(errorx.CodeNotFound, "message %s not found", messageId)
	}
	return nil
}
