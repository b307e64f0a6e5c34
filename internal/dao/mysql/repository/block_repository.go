package repository

import (
	"eduquest_server/internal/model"

	"gorm.io/gorm"
)

// blockRepository BlockRepository 接口的实现
type blockRepository struct {
	db *gorm.DB
}

// NewBlockRepository 创建 BlockRepository 实例
func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

// Exists owner 是否拉黑了 target
func (r *blockRepository) Exists(owner, target string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.BlockedUser{}).
		Where("owner_username = ? AND blocked_username = ?", owner, target).
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "count block %s -> %s", owner, target)
	}
	return count > 0, nil
}

// EitherBlocked 双向检查：任一方拉黑了另一方即为 true
// 申请和私信前都要做此校验
func (r *blockRepository) EitherBlocked(a, b string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.BlockedUser{}).
		Where("(owner_username = ? AND blocked_username = ?) OR (owner_username = ? AND blocked_username = ?)",
			a, b, b, a).
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "count blocks between %s and %s", a, b)
	}
	return count > 0, nil
}

// Create 添加黑名单记录
// FirstOrCreate 保证重复拉黑幂等
func (r *blockRepository) Create(block *model.BlockedUser) error {
	if err := r.db.Where("owner_username = ? AND blocked_username = ?",
		block.OwnerUsername, block.BlockedUsername).
		FirstOrCreate(block).Error; err != nil {
		return wrapDBError(err, "create block record")
	}
	return nil
}

// Delete 移除黑名单记录，目标不在黑名单时为 no-op
func (r *blockRepository) Delete(owner, target string) error {
	if err := r.db.Where("owner_username = ? AND blocked_username = ?", owner, target).
		Unscoped().Delete(&model.BlockedUser{}).Error; err != nil {
		return wrapDBErrorf(err, "delete block %s -> %s", owner, target)
	}
	return nil
}
