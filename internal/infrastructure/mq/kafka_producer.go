// Package mq 封装 Kafka 领域事件发布
// 纯技术组件：社交操作（申请、通过、私信）成功后向外发布事件，
// 供下游统计/审计消费。不承担任何对客户端的推送职责。
package mq

import (
	"context"
	"encoding/json"
	"time"

	"eduquest_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// 社交领域事件类型
const (
	EventFriendRequestSent     = "friend.request.sent"
	EventFriendRequestAccepted = "friend.request.accepted"
	EventFriendRequestDeclined = "friend.request.declined"
	EventUserBlocked           = "user.blocked"
	EventDirectMessageSent     = "dm.sent"
)

// SocialEvent 发布到 Kafka 的事件载荷
type SocialEvent struct {
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`   // 发起操作的用户名
	Subject   string    `json:"subject"` // 操作指向的用户名
	Timestamp time.Time `json:"timestamp"`
}

// Producer Kafka 事件生产者
// 零值/未初始化时所有方法均为 no-op，业务层无需判空配置
type Producer struct {
	writer *kafka.Writer
}

// NewProducer 根据配置创建生产者，未启用时返回空 Producer
func NewProducer(conf *config.KafkaConfig) *Producer {
	if conf == nil || !conf.Enabled {
		return &Producer{}
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(conf.HostPort),
			Topic:                  conf.SocialTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           conf.Timeout * time.Second,
			RequiredAcks:           kafka.RequireNone,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish 发布一条社交领域事件
// 事件发布失败只记录日志，不影响业务操作本身
func (p *Producer) Publish(ctx context.Context, eventType, actor, subject string) {
	if p == nil || p.writer == nil {
		return
	}
	event := SocialEvent{
		Type:      eventType,
		Actor:     actor,
		Subject:   subject,
		Timestamp: time.Now(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("marshal social event", zap.Error(err))
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(actor),
		Value: value,
	}); err != nil {
		zap.L().Error("publish social event",
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}

// Close 关闭底层 Writer
func (p *Producer) Close() {
	if p == nil || p.writer == nil {
		return
	}
	if err := p.writer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
}
