// Package repository 提供数据访问层的具体实现
// 本文件实现 FriendRequestRepository 接口，处理好友申请相关的数据库操作
package repository

import (
	"eduquest_server/internal/model"
	"eduquest_server/pkg/enum/friend_request/request_status_enum"

	"gorm.io/gorm"
)

// friendRequestRepository FriendRequestRepository 接口的实现
type friendRequestRepository struct {
	db *gorm.DB
}

// NewFriendRequestRepository 创建 FriendRequestRepository 实例
func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

// FindPending 查找 from -> to 的 pending 申请
// 用于重复申请检查和接受/拒绝时定位记录
func (r *friendRequestRepository) FindPending(from, to string) (*model.FriendRequest, error) {
	var request model.FriendRequest
	if err := r.db.Where("from_username = ? AND to_username = ? AND status = ?",
		from, to, request_status_enum.PENDING).First(&request).Error; err != nil {
		return nil, wrapDBErrorf(err, "find pending request %s -> %s", from, to)
	}
	return &request, nil
}

// ListByTarget 列出发给 to 的全部申请（含历史），按创建时间升序
func (r *friendRequestRepository) ListByTarget(to string) ([]model.FriendRequest, error) {
	var requests []model.FriendRequest
	if err := r.db.Where("to_username = ?", to).
		Order("created_at ASC").Find(&requests).Error; err != nil {
		return nil, wrapDBErrorf(err, "list requests to=%s", to)
	}
	return requests, nil
}

// Create 创建新的申请记录
func (r *friendRequestRepository) Create(request *model.FriendRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return wrapDBError(err, "create friend request")
	}
	return nil
}

// UpdateStatus 更新申请状态
// pending 是唯一的非终态，accepted/declined 之后不再变更
func (r *friendRequestRepository) UpdateStatus(id uint, status int8) error {
	if err := r.db.Model(&model.FriendRequest{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "update request status id=%d", id)
	}
	return nil
}

// DeleteBetween 删除 a 与 b 之间双向的全部申请记录
// 拉黑时调用：双方视角下的申请全部清除，避免遗留可被接受的 pending
func (r *friendRequestRepository) DeleteBetween(a, b string) error {
	if err := r.db.Where(
		"(from_username = ? AND to_username = ?) OR (from_username = ? AND to_username = ?)",
		a, b, b, a).Unscoped().Delete(&model.FriendRequest{}).Error; err != nil {
		return wrapDBErrorf(err, "delete requests between %s and %s", a, b)
	}
	return nil
}
