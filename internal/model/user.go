// Package model 定义数据库实体模型
// 本文件定义用户模型，包含账号凭证和经济系统字段
package model

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 用户模型
// 对应数据库 user 表，是所有社交/经济数据的聚合根
// 好友、申请、黑名单、收件箱等列表数据规范化到各自的表中，以 username 关联
type User struct {
	gorm.Model

	// Username 用户唯一标识，注册后不可变
	Username string `gorm:"column:username;uniqueIndex;type:varchar(32);not null;comment:用户名"`

	// PasswordHash 密码（bcrypt 哈希），不存储明文
	PasswordHash string `gorm:"column:password_hash;type:varchar(100);not null;comment:密码哈希"`

	// Points 积分余额，始终 >= 0
	Points int64 `gorm:"column:points;not null;default:0;comment:积分"`

	// CurrentTheme 当前启用的主题
	CurrentTheme string `gorm:"column:current_theme;type:varchar(30);not null;default:space;comment:当前主题"`

	// LastSeenAt 最近一次访问时间
	LastSeenAt sql.NullTime `gorm:"column:last_seen_at;comment:最近访问时间"`

	// RawPassword 明文密码（不存入数据库）
	// 用于接收注册/建档时的明文密码，在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (User) TableName() string {
	return "user"
}

// BeforeSave GORM Hook：在创建和更新前自动调用
// 将 RawPassword 明文密码加密后存入 PasswordHash 字段
// 调用方只需设置 RawPassword，无需手动加密
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
		u.RawPassword = "" // 清空明文，防止泄露
	}
	return nil
}

// CheckPassword 校验密码是否正确，用于登录验证
func (u *User) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext))
	return err == nil
}
