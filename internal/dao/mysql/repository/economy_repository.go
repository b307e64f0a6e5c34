// Package repository 提供数据访问层的具体实现
// 本文件实现主题、道具、学习集三个经济系统接口
package repository

import (
	"eduquest_server/internal/model"

	"gorm.io/gorm"
)

// ==================== ThemeRepository ====================

type themeRepository struct {
	db *gorm.DB
}

// NewThemeRepository 创建 ThemeRepository 实例
func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

// ListByUsername 列出用户拥有的主题
func (r *themeRepository) ListByUsername(username string) ([]string, error) {
	var themes []string
	if err := r.db.Model(&model.UserTheme{}).Where("username = ?", username).
		Order("created_at ASC").Pluck("theme", &themes).Error; err != nil {
		return nil, wrapDBErrorf(err, "list themes username=%s", username)
	}
	return themes, nil
}

// Add 添加主题，重复添加幂等
func (r *themeRepository) Add(username, theme string) error {
	record := model.UserTheme{Username: username, Theme: theme}
	if err := r.db.Where("username = ? AND theme = ?", username, theme).
		FirstOrCreate(&record).Error; err != nil {
		return wrapDBErrorf(err, "add theme username=%s theme=%s", username, theme)
	}
	return nil
}

// ==================== PowerupRepository ====================

type powerupRepository struct {
	db *gorm.DB
}

// NewPowerupRepository 创建 PowerupRepository 实例
func NewPowerupRepository(db *gorm.DB) PowerupRepository {
	return &powerupRepository{db: db}
}

// MapByUsername 列出用户全部道具计数
func (r *powerupRepository) MapByUsername(username string) (map[string]int, error) {
	var records []model.UserPowerup
	if err := r.db.Where("username = ?", username).Find(&records).Error; err != nil {
		return nil, wrapDBErrorf(err, "list powerups username=%s", username)
	}
	result := make(map[string]int, len(records))
	for _, record := range records {
		if record.Count > 0 {
			result[record.PowerupId] = record.Count
		}
	}
	return result, nil
}

// Increment 道具计数 +1
// 原子自增，计数行不存在时先创建；并发购买不会丢失更新
func (r *powerupRepository) Increment(username, powerupId string) error {
	result := r.db.Model(&model.UserPowerup{}).
		Where("username = ? AND powerup_id = ?", username, powerupId).
		Update("count", gorm.Expr("count + 1"))
	if result.Error != nil {
		return wrapDBErrorf(result.Error, "increment powerup username=%s id=%s", username, powerupId)
	}
	if result.RowsAffected == 0 {
		record := model.UserPowerup{Username: username, PowerupId: powerupId, Count: 1}
		if err := r.db.Create(&record).Error; err != nil {
			return wrapDBErrorf(err, "create powerup username=%s id=%s", username, powerupId)
		}
	}
	return nil
}

// Decrement 道具计数 -1，仅当计数 > 0 时生效
// 条件自减 + RowsAffected 判定，并发使用不会把计数减成负数
func (r *powerupRepository) Decrement(username, powerupId string) (bool, error) {
	result := r.db.Model(&model.UserPowerup{}).
		Where("username = ? AND powerup_id = ? AND count > 0", username, powerupId).
		Update("count", gorm.Expr("count - 1"))
	if result.Error != nil {
		return false, wrapDBErrorf(result.Error, "decrement powerup username=%s id=%s", username, powerupId)
	}
	return result.RowsAffected > 0, nil
}

// DeleteDepleted 删除计数归零的记录
func (r *powerupRepository) DeleteDepleted(username, powerupId string) error {
	if err := r.db.Where("username = ? AND powerup_id = ? AND count <= 0", username, powerupId).
		Unscoped().Delete(&model.UserPowerup{}).Error; err != nil {
		return wrapDBErrorf(err, "delete depleted powerup username=%s id=%s", username, powerupId)
	}
	return nil
}

// ==================== ImportedSetRepository ====================

type importedSetRepository struct {
	db *gorm.DB
}

// NewImportedSetRepository 创建 ImportedSetRepository 实例
func NewImportedSetRepository(db *gorm.DB) ImportedSetRepository {
	return &importedSetRepository{db: db}
}

// ListByUsername 列出用户导入的学习集名称
func (r *importedSetRepository) ListByUsername(username string) ([]string, error) {
	var sets []string
	if err := r.db.Model(&model.ImportedSet{}).Where("username = ?", username).
		Order("created_at ASC").Pluck("set_name", &sets).Error; err != nil {
		return nil, wrapDBErrorf(err, "list imported sets username=%s", username)
	}
	return sets, nil
}

// Add 添加学习集，重复添加幂等
func (r *importedSetRepository) Add(username, setName string) error {
	record := model.ImportedSet{Username: username, SetName: setName}
	if err := r.db.Where("username = ? AND set_name = ?", username, setName).
		FirstOrCreate(&record).Error; err != nil {
		return wrapDBErrorf(err, "add imported set username=%s set=%s", username, setName)
	}
	return nil
}

// Remove 移除学习集，目标不存在时为 no-op
func (r *importedSetRepository) Remove(username, setName string) error {
	if err := r.db.Where("username = ? AND set_name = ?", username, setName).
		Unscoped().Delete(&model.ImportedSet{}).Error; err != nil {
		return wrapDBErrorf(err, "remove imported set username=%s set=%s", username, setName)
	}
	return nil
}
