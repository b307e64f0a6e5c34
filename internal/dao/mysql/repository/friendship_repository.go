package repository

import (
	"eduquest_server/internal/model"

	"gorm.io/gorm"
)

// friendshipRepository FriendshipRepository 接口的实现
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository 创建 FriendshipRepository 实例
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// FindPair 查找 owner 名下指向 friend 的关系行
func (r *friendshipRepository) FindPair(owner, friend string) (*model.Friendship, error) {
	var friendship model.Friendship
	if err := r.db.Where("owner_username = ? AND friend_username = ?", owner, friend).
		First(&friendship).Error; err != nil {
		return nil, wrapDBErrorf(err, "find friendship %s -> %s", owner, friend)
	}
	return &friendship, nil
}

// ListByOwner 列出 owner 的全部好友关系行，按建立时间升序
func (r *friendshipRepository) ListByOwner(owner string) ([]model.Friendship, error) {
	var friendships []model.Friendship
	if err := r.db.Where("owner_username = ?", owner).
		Order("created_at ASC").Find(&friendships).Error; err != nil {
		return nil, wrapDBErrorf(err, "list friendships owner=%s", owner)
	}
	return friendships, nil
}

// Create 创建一行好友关系
// 成对（双向两行）写入由调用方的事务保证
func (r *friendshipRepository) Create(friendship *model.Friendship) error {
	if err := r.db.Create(friendship).Error; err != nil {
		return wrapDBError(err, "create friendship")
	}
	return nil
}

// DeletePair 删除 owner 名下指向 friend 的关系行
// 物理删除：软删行会继续占用 idx_friend_pair 唯一索引，
// 导致拉黑解除后重新加好友时写入冲突
func (r *friendshipRepository) DeletePair(owner, friend string) error {
	if err := r.db.Unscoped().Where("owner_username = ? AND friend_username = ?", owner, friend).
		Delete(&model.Friendship{}).Error; err != nil {
		return wrapDBErrorf(err, "delete friendship %s -> %s", owner, friend)
	}
	return nil
}
