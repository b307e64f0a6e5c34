// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"errors"

	"eduquest_server/internal/model"
	"eduquest_server/pkg/errorx"

	"gorm.io/gorm"
)

// ==================== 错误包装辅助函数 ====================

// wrapDBError 包装数据库错误
// 根据错误类型返回不同的错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 包装数据库错误（支持格式化消息）
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByUsername 根据用户名查找用户
	FindByUsername(username string) (*model.User, error)
	// Create 创建新用户
	Create(user *model.User) error
	// UpdatePoints 设置积分余额（单语句更新）
	UpdatePoints(username string, points int64) error
	// UpdateCurrentTheme 设置当前主题
	UpdateCurrentTheme(username string, theme string) error
	// TouchLastSeen 更新最近访问时间
	TouchLastSeen(username string) error
}

// FriendshipRepository 好友关系数据访问接口
// 好友关系以双向两行存储，成对写入由调用方的事务保证
type FriendshipRepository interface {
	// FindPair 查找 owner 名下指向 friend 的关系行
	FindPair(owner, friend string) (*model.Friendship, error)
	// ListByOwner 列出 owner 的全部好友关系行
	ListByOwner(owner string) ([]model.Friendship, error)
	// Create 创建一行好友关系
	Create(friendship *model.Friendship) error
	// DeletePair 删除 owner 名下指向 friend 的关系行
	DeletePair(owner, friend string) error
}

// FriendRequestRepository 好友申请数据访问接口
type FriendRequestRepository interface {
	// FindPending 查找 from -> to 的 pending 申请
	FindPending(from, to string) (*model.FriendRequest, error)
	// ListByTarget 列出发给 to 的全部申请（含历史），按创建时间升序
	ListByTarget(to string) ([]model.FriendRequest, error)
	// Create 创建新申请
	Create(request *model.FriendRequest) error
	// UpdateStatus 更新申请状态
	UpdateStatus(id uint, status int8) error
	// DeleteBetween 删除 a 与 b 之间双向的全部申请记录
	DeleteBetween(a, b string) error
}

// BlockRepository 黑名单数据访问接口
type BlockRepository interface {
	// Exists owner 是否拉黑了 target
	Exists(owner, target string) (bool, error)
	// EitherBlocked 双向检查：任一方拉黑了另一方即为 true
	EitherBlocked(a, b string) (bool, error)
	// Create 添加黑名单记录（幂等）
	Create(block *model.BlockedUser) error
	// Delete 移除黑名单记录
	Delete(owner, target string) error
}

// InboxRepository 收件箱数据访问接口
type InboxRepository interface {
	// Create 追加一条消息
	Create(message *model.InboxMessage) error
	// CreateBatch 在同一语句内追加多条消息（私聊成对写入）
	CreateBatch(messages []*model.InboxMessage) error
	// ListByOwner 列出收件箱，excludeArchived 为 true 时过滤已归档；按创建时间升序
	ListByOwner(owner string, excludeArchived bool) ([]model.InboxMessage, error)
	// FindByOwnerAndUuid 按归属者和消息 ID 查找
	FindByOwnerAndUuid(owner string, uuid int64) (*model.InboxMessage, error)
	// MarkRead 置已读
	MarkRead(owner string, uuid int64) error
	// Archive 置已归档
	Archive(owner string, uuid int64) error
	// Delete 物理删除，返回是否确实删除了记录
	Delete(owner string, uuid int64) (bool, error)
	// MarkRequestNoticeRead 将 owner 收件箱中来自 from 的未读好友申请通知置为已读
	MarkRequestNoticeRead(owner, from string) error
	// ListThread 列出 owner 与 peer 的私聊消息，按创建时间升序
	ListThread(owner, peer string) ([]model.InboxMessage, error)
}

// ThemeRepository 用户主题数据访问接口
type ThemeRepository interface {
	// ListByUsername 列出用户拥有的主题
	ListByUsername(username string) ([]string, error)
	// Add 添加主题（幂等）
	Add(username, theme string) error
}

// PowerupRepository 用户道具数据访问接口
type PowerupRepository interface {
	// MapByUsername 列出用户全部道具计数，powerupId -> count
	MapByUsername(username string) (map[string]int, error)
	// Increment 道具计数 +1，不存在则创建
	Increment(username, powerupId string) error
	// Decrement 道具计数 -1，仅当计数 > 0 时生效，返回是否生效
	Decrement(username, powerupId string) (bool, error)
	// DeleteDepleted 删除计数归零的记录
	DeleteDepleted(username, powerupId string) error
}

// ImportedSetRepository 导入学习集数据访问接口
type ImportedSetRepository interface {
	// ListByUsername 列出用户导入的学习集名称
	ListByUsername(username string) ([]string, error)
	// Add 添加学习集（幂等）
	Add(username, setName string) error
	// Remove 移除学习集（幂等）
	Remove(username, setName string) error
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db            *gorm.DB
	User          UserRepository
	Friendship    FriendshipRepository
	FriendRequest FriendRequestRepository
	Block         BlockRepository
	Inbox         InboxRepository
	Theme         ThemeRepository
	Powerup       PowerupRepository
	ImportedSet   ImportedSetRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:            db,
		User:          NewUserRepository(db),
		Friendship:    NewFriendshipRepository(db),
		FriendRequest: NewFriendRequestRepository(db),
		Block:         NewBlockRepository(db),
		Inbox:         NewInboxRepository(db),
		Theme:         NewThemeRepository(db),
		Powerup:       NewPowerupRepository(db),
		ImportedSet:   NewImportedSetRepository(db),
	}
}

// Transaction 在数据库事务中执行函数，作为跨聚合操作的工作单元
// 通过好友申请、拉黑清理、私聊成对写入等触及两个用户聚合的操作
// 必须整体运行在一个 Transaction 内：要么双方都更新，要么都不更新
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		// 无底层连接时调用方已持有工作单元（测试替身、嵌套事务）
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
