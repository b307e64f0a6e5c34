package model

import (
	"gorm.io/gorm"
)

// BlockedUser 黑名单记录，单向：仅记录在拉黑方名下
type BlockedUser struct {
	gorm.Model
	OwnerUsername   string `gorm:"column:owner_username;type:varchar(32);not null;uniqueIndex:idx_block_pair,priority:1;comment:拉黑方用户名"`
	BlockedUsername string `gorm:"column:blocked_username;type:varchar(32);not null;uniqueIndex:idx_block_pair,priority:2;comment:被拉黑用户名"`
}

func (BlockedUser) TableName() string {
	return "blocked_user"
}
