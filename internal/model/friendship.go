package model

import (
	"gorm.io/gorm"
)

// Friendship 好友关系，每对好友存双向两行
// 不变量：B 在 A 的好友中当且仅当 A 也在 B 的好友中（两行在同一事务内创建/删除）
type Friendship struct {
	gorm.Model
	OwnerUsername  string `gorm:"column:owner_username;type:varchar(32);not null;uniqueIndex:idx_friend_pair,priority:1;comment:持有方用户名"`
	FriendUsername string `gorm:"column:friend_username;type:varchar(32);not null;uniqueIndex:idx_friend_pair,priority:2;comment:好友用户名"`
}

func (Friendship) TableName() string {
	return "friendship"
}
