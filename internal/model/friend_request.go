package model

import (
	"gorm.io/gorm"
)

// FriendRequest 好友申请记录
// 对应数据库 friend_request 表
// 状态机：pending -> accepted / declined（终态，不会重新打开）
// 同一有序对 (from, to) 任意时刻至多存在一条 pending 记录；
// 终态记录作为历史永久保留
type FriendRequest struct {
	gorm.Model

	// FromUsername 申请人用户名
	FromUsername string `gorm:"column:from_username;index;type:varchar(32);not null;comment:申请人"`

	// ToUsername 被申请人用户名
	ToUsername string `gorm:"column:to_username;index;type:varchar(32);not null;comment:被申请人"`

	// Status 申请状态
	// 0=申请中, 1=已通过, 2=已拒绝
	// 参见 pkg/enum/friend_request/request_status_enum
	Status int8 `gorm:"column:status;not null;comment:申请状态，0.申请中，1.通过，2.拒绝"`
}

// TableName 指定表名
func (FriendRequest) TableName() string {
	return "friend_request"
}
