// Package repository 提供数据访问层的具体实现
// 本文件实现 UserRepository 接口
package repository

import (
	"time"

	"eduquest_server/internal/model"

	"gorm.io/gorm"
)

// userRepository UserRepository 接口的实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUsername 根据用户名查找用户
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapDBErrorf(err, "find user username=%s", username)
	}
	return &user, nil
}

// Create 创建新用户
func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "create user")
	}
	return nil
}

// UpdatePoints 设置积分余额
// 单语句更新，同一用户并发请求不会丢失更新
func (r *userRepository) UpdatePoints(username string, points int64) error {
	if err := r.db.Model(&model.User{}).Where("username = ?", username).
		Update("points", points).Error; err != nil {
		return wrapDBErrorf(err, "update points username=%s", username)
	}
	return nil
}

// UpdateCurrentTheme 设置当前主题
func (r *userRepository) UpdateCurrentTheme(username string, theme string) error {
	if err := r.db.Model(&model.User{}).Where("username = ?", username).
		Update("current_theme", theme).Error; err != nil {
		return wrapDBErrorf(err, "update theme username=%s", username)
	}
	return nil
}

// TouchLastSeen 更新最近访问时间
func (r *userRepository) TouchLastSeen(username string) error {
	if err := r.db.Model(&model.User{}).Where("username = ?", username).
		Update("last_seen_at", time.Now()).Error; err != nil {
		return wrapDBErrorf(err, "touch last seen username=%s", username)
	}
	return nil
}
