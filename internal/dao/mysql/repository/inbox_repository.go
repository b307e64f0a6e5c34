// Package repository 提供数据访问层的具体实现
// 本文件实现 InboxRepository 接口，处理收件箱消息的存取
package repository

import (
	"eduquest_server/internal/model"
	"eduquest_server/pkg/enum/message/message_type_enum"

	"gorm.io/gorm"
)

// inboxRepository InboxRepository 接口的实现
type inboxRepository struct {
	db *gorm.DB
}

// NewInboxRepository 创建 InboxRepository 实例
func NewInboxRepository(db *gorm.DB) InboxRepository {
	return &inboxRepository{db: db}
}

// Create 追加一条消息
func (r *inboxRepository) Create(message *model.InboxMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "create inbox message")
	}
	return nil
}

// CreateBatch 在同一语句内追加多条消息
// 私聊成对写入使用，配合外层事务保证两份拷贝同生共死
func (r *inboxRepository) CreateBatch(messages []*model.InboxMessage) error {
	if len(messages) == 0 {
		return nil
	}
	if err := r.db.Create(messages).Error; err != nil {
		return wrapDBError(err, "create inbox messages")
	}
	return nil
}

// ListByOwner 列出收件箱，按创建时间升序（即到达顺序）
// excludeArchived 为 true 时过滤已归档消息
func (r *inboxRepository) ListByOwner(owner string, excludeArchived bool) ([]model.InboxMessage, error) {
	var messages []model.InboxMessage
	query := r.db.Where("owner_username = ?", owner)
	if excludeArchived {
		query = query.Where("is_archived = ?", false)
	}
	if err := query.Order("created_at ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, wrapDBErrorf(err, "list inbox owner=%s", owner)
	}
	return messages, nil
}

// FindByOwnerAndUuid 按归属者和消息 ID 查找
func (r *inboxRepository) FindByOwnerAndUuid(owner string, uuid int64) (*model.InboxMessage, error) {
	var message model.InboxMessage
	if err := r.db.Where("owner_username = ? AND uuid = ?", owner, uuid).
		First(&message).Error; err != nil {
		return nil, wrapDBErrorf(err, "find inbox message owner=%s uuid=%d", owner, uuid)
	}
	return &message, nil
}

// MarkRead 置已读，重复调用幂等
func (r *inboxRepository) MarkRead(owner string, uuid int64) error {
	if err := r.db.Model(&model.InboxMessage{}).
		Where("owner_username = ? AND uuid = ?", owner, uuid).
		Update("is_read", true).Error; err != nil {
		return wrapDBErrorf(err, "mark read owner=%s uuid=%d", owner, uuid)
	}
	return nil
}

// Archive 置已归档，重复调用幂等
func (r *inboxRepository) Archive(owner string, uuid int64) error {
	if err := r.db.Model(&model.InboxMessage{}).
		Where("owner_username = ? AND uuid = ?", owner, uuid).
		Update("is_archived", true).Error; err != nil {
		return wrapDBErrorf(err, "archive owner=%s uuid=%d", owner, uuid)
	}
	return nil
}

// Delete 物理删除（Unscoped：消息无软删除语义），返回是否确实删除了记录
func (r *inboxRepository) Delete(owner string, uuid int64) (bool, error) {
	result := r.db.Where("owner_username = ? AND uuid = ?", owner, uuid).
		Unscoped().Delete(&model.InboxMessage{})
	if result.Error != nil {
		return false, wrapDBErrorf(result.Error, "delete inbox message owner=%s uuid=%d", owner, uuid)
	}
	return result.RowsAffected > 0, nil
}

// MarkRequestNoticeRead 将 owner 收件箱中来自 from 的未读好友申请通知置为已读
// 接受/拒绝申请时调用，让触发通知随之消失于未读列表
func (r *inboxRepository) MarkRequestNoticeRead(owner, from string) error {
	if err := r.db.Model(&model.InboxMessage{}).
		Where("owner_username = ? AND from_username = ? AND type = ? AND is_read = ?",
			owner, from, message_type_enum.FRIEND_REQUEST, false).
		Update("is_read", true).Error; err != nil {
		return wrapDBErrorf(err, "mark request notice read owner=%s from=%s", owner, from)
	}
	return nil
}

// ListThread 列出 owner 与 peer 的私聊消息，按创建时间升序
// 会话视图是收件箱上的纯投影，不做任何写操作
func (r *inboxRepository) ListThread(owner, peer string) ([]model.InboxMessage, error) {
	var messages []model.InboxMessage
	if err := r.db.Where("owner_username = ? AND peer_username = ? AND type = ?",
		owner, peer, message_type_enum.DIRECT_MESSAGE).
		Order("created_at ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, wrapDBErrorf(err, "list thread owner=%s peer=%s", owner, peer)
	}
	return messages, nil
}
