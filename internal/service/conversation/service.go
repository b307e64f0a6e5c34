// Package conversation 实现会话业务
// 会话视图是收件箱上的只读投影：过滤出与 peer 的 direct_message 记录并按时间升序。
// 一次发送在双方收件箱各产生一条记录，共享内容、时间戳和 exchange_id，
// 各自持有独立的雪花 ID、方向和读标志
package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eduquest_server/internal/dao/mysql/repository"
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/infrastructure/mq"
	"eduquest_server/internal/model"
	"eduquest_server/internal/service/inbox"
	"eduquest_server/pkg/enum/message/message_direction_enum"
	"eduquest_server/pkg/enum/message/message_type_enum"
	"eduquest_server/pkg/errorx"
	"eduquest_server/pkg/util/snowflake"
)

// Directory 用户名解析依赖，由 service/directory 提供实现
type Directory interface {
	Resolve(username string) (*model.User, error)
	Lookup(username string) error
}

// conversationService 会话业务实现
type conversationService struct {
	repos     *repository.Repositories
	directory Directory
	producer  *mq.Producer
}

// NewConversationService 构造函数
func NewConversationService(repos *repository.Repositories, directory Directory, producer *mq.Producer) *conversationService {
	return &conversationService{repos: repos, directory: directory, producer: producer}
}

// GetThread 获取与 peer 的会话记录
// 纯读操作，不会把消息置为已读
func (s *conversationService) GetThread(username, peer string) (*respond.ThreadRespond, error) {
	if _, err := s.directory.Resolve(username); err != nil {
		return nil, err
	}
	if err := s.directory.Lookup(peer); err != nil {
		return nil, err
	}

	rows, err := s.repos.Inbox.ListThread(username, peer)
	if err != nil {
		zap.L().Error("List thread error", zap.Error(err),
			zap.String("username", username), zap.String("peer", peer))
		return nil, errorx.ErrServerBusy
	}

	messages := make([]respond.InboxMessageRespond, 0, len(rows))
	for i := range rows {
		messages = append(messages, inbox.ToMessageRespond(&rows[i]))
	}
	return &respond.ThreadRespond{Messages: messages}, nil
}

// SendMessage 发送私信
// 前置条件：内容非空白、双方均未拉黑对方、双方已是好友。
// 成对的两条记录在同一事务内写入：发件人的一份预置已读，收件人的一份未读
func (s *conversationService) SendMessage(sender, peer string, req request.SendMessageRequest) error {
	content := strings.TrimSpace(req.Message)
	if content == "" {
		return errorx.New(errorx.CodeInvalidParam, "message content cannot be empty")
	}
	if _, err := s.directory.Resolve(sender); err != nil {
		return err
	}
	if err := s.directory.Lookup(peer); err != nil {
		return err
	}

	blocked, err := s.repos.Block.EitherBlocked(sender, peer)
	if err != nil {
		zap.L().Error("Check block error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if blocked {
		return errorx.New(errorx.CodeForbidden, "messaging is not allowed between these users")
	}

	if _, err := s.repos.Friendship.FindPair(sender, peer); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.Newf(errorx.CodeInvalidParam, "%s and %s are not friends", sender, peer)
		}
		zap.L().Error("Find friendship error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 两条记录共享内容、时间戳和 exchange_id
	now := time.Now()
	exchangeId := uuid.NewString()
	subject := fmt.Sprintf("Message from %s", sender)

	outgoing := &model.InboxMessage{
		Uuid:          snowflake.GenerateID(),
		OwnerUsername: sender,
		Type:          message_type_enum.DIRECT_MESSAGE,
		FromUsername:  sender,
		Subject:       subject,
		Content:       content,
		IsRead:        true, // 发件人的一份预置已读
		PeerUsername:  peer,
		Direction:     message_direction_enum.OUTGOING,
		ExchangeId:    exchangeId,
	}
	outgoing.CreatedAt = now
	incoming := &model.InboxMessage{
		Uuid:          snowflake.GenerateID(),
		OwnerUsername: peer,
		Type:          message_type_enum.DIRECT_MESSAGE,
		FromUsername:  sender,
		Subject:       subject,
		Content:       content,
		IsRead:        false,
		PeerUsername:  sender,
		Direction:     message_direction_enum.INCOMING,
		ExchangeId:    exchangeId,
	}
	incoming.CreatedAt = now

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		return tx.Inbox.CreateBatch([]*model.InboxMessage{outgoing, incoming})
	})
	if err != nil {
		zap.L().Error("Send message error", zap.Error(err),
			zap.String("sender", sender), zap.String("peer", peer))
		return errorx.ErrServerBusy
	}

	s.producer.Publish(context.Background(), mq.EventDirectMessageSent, sender, peer)
	return nil
}
