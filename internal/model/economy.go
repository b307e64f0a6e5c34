package model

import (
	"gorm.io/gorm"
)

// UserTheme 用户拥有的主题，一行一个
type UserTheme struct {
	gorm.Model
	Username string `gorm:"column:username;type:varchar(32);not null;uniqueIndex:idx_user_theme,priority:1;comment:用户名"`
	Theme    string `gorm:"column:theme;type:varchar(30);not null;uniqueIndex:idx_user_theme,priority:2;comment:主题"`
}

func (UserTheme) TableName() string {
	return "user_theme"
}

// UserPowerup 用户道具计数器
// Count 通过原子 SQL 自增/条件自减更新，避免并发购买/使用时丢失更新
type UserPowerup struct {
	gorm.Model
	Username  string `gorm:"column:username;type:varchar(32);not null;uniqueIndex:idx_user_powerup,priority:1;comment:用户名"`
	PowerupId string `gorm:"column:powerup_id;type:varchar(50);not null;uniqueIndex:idx_user_powerup,priority:2;comment:道具ID"`
	Count     int    `gorm:"column:count;not null;default:0;comment:持有数量"`
}

func (UserPowerup) TableName() string {
	return "user_powerup"
}

// ImportedSet 用户导入的学习集名称
type ImportedSet struct {
	gorm.Model
	Username string `gorm:"column:username;type:varchar(32);not null;uniqueIndex:idx_user_set,priority:1;comment:用户名"`
	SetName  string `gorm:"column:set_name;type:varchar(100);not null;uniqueIndex:idx_user_set,priority:2;comment:学习集名称"`
}

func (ImportedSet) TableName() string {
	return "imported_set"
}
