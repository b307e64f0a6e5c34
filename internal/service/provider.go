// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"time"

	"eduquest_server/internal/config"
	"eduquest_server/internal/dao/mysql/repository"
	"eduquest_server/internal/infrastructure/mq"
	"eduquest_server/internal/service/account"
	"eduquest_server/internal/service/conversation"
	"eduquest_server/internal/service/directory"
	"eduquest_server/internal/service/economy"
	"eduquest_server/internal/service/inbox"
	"eduquest_server/internal/service/relationship"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	Directory    DirectoryService    // 用户目录
	Account      AccountService      // 账号
	Relationship RelationshipService // 关系图谱
	Inbox        InboxService        // 收件箱
	Conversation ConversationService // 会话
	Economy      EconomyService      // 经济系统
}

// NewServices 创建并注入所有 Service 实例
// 各依赖显式传入，不读取全局配置，测试可直接使用
// repos: Repository 层聚合实例
// producer: Kafka 领域事件生产者（禁用时为 no-op）
// autoProvision: 用户目录自动注册策略
// refreshTokenTTL: Refresh Token 有效期
func NewServices(repos *repository.Repositories, producer *mq.Producer, autoProvision bool, refreshTokenTTL time.Duration) *Services {
	dir := directory.NewDirectoryService(repos, autoProvision)
	return &Services{
		Directory:    dir,
		Account:      account.NewAccountService(repos, refreshTokenTTL),
		Relationship: relationship.NewRelationshipService(repos, dir, producer),
		Inbox:        inbox.NewInboxService(repos, dir),
		Conversation: conversation.NewConversationService(repos, dir, producer),
		Economy:      economy.NewEconomyService(repos, dir),
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Relationship.SendRequest() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository 初始化之后
func InitServices(repos *repository.Repositories, producer *mq.Producer) {
	conf := config.GetConfig()
	Svc = NewServices(repos, producer,
		conf.UserDirectoryConfig.AutoProvision,
		time.Duration(conf.JWTConfig.RefreshTokenExpiry)*time.Hour,
	)
}
