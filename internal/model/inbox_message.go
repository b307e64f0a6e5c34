// Package model 定义数据库实体模型
// 本文件定义收件箱消息模型：每个用户一份只追加的消息日志，
// 同时承担系统通知、好友申请通知和私聊记录三种用途
package model

import (
	"gorm.io/gorm"
)

// InboxMessage 收件箱消息
// 对应数据库 inbox_message 表
// 除 IsRead/IsArchived 外所有字段写入后不可变；两个标志只允许 false -> true。
// 删除是物理删除，无软删除、无恢复
type InboxMessage struct {
	gorm.Model

	// Uuid 消息唯一标识
	// 使用雪花算法生成的 int64，对外序列化为字符串避免 JS 精度丢失
	Uuid int64 `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:消息雪花ID"`

	// OwnerUsername 收件箱归属者
	// 一次私聊会在双方的收件箱中各产生一条记录
	OwnerUsername string `gorm:"column:owner_username;index;type:varchar(32);not null;comment:收件箱归属者"`

	// Type 消息类型
	// 0=系统通知, 1=好友申请, 2=私聊消息
	// 参见 pkg/enum/message/message_type_enum
	Type int8 `gorm:"column:type;not null;comment:消息类型，0.系统，1.好友申请，2.私聊"`

	// FromUsername 发送方用户名，系统消息为空
	FromUsername string `gorm:"column:from_username;type:varchar(32);comment:发送方"`

	// Subject 消息标题
	Subject string `gorm:"column:subject;type:varchar(100);comment:标题"`

	// Content 消息正文
	Content string `gorm:"column:content;type:TEXT;comment:正文"`

	// IsRead 已读标志，仅允许 false -> true
	IsRead bool `gorm:"column:is_read;not null;default:false;comment:已读"`

	// IsArchived 归档标志，仅允许 false -> true
	IsArchived bool `gorm:"column:is_archived;not null;default:false;comment:已归档"`

	// PeerUsername 私聊对端用户名
	// 仅 direct_message 类型使用；会话视图按 (owner, peer) 过滤此字段
	PeerUsername string `gorm:"column:peer_username;index:idx_owner_peer;type:varchar(32);comment:私聊对端"`

	// Direction 私聊方向，仅 direct_message 类型使用
	// 0=收到, 1=发出
	// 参见 pkg/enum/message/message_direction_enum
	Direction int8 `gorm:"column:direction;comment:私聊方向，0.收到，1.发出"`

	// ExchangeId 同一次私聊产生的两条记录共享的 uuid
	ExchangeId string `gorm:"column:exchange_id;type:char(36);comment:私聊配对ID"`
}

// TableName 指定表名
func (InboxMessage) TableName() string {
	return "inbox_message"
}
