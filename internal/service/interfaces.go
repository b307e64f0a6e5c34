// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/model"
)

// DirectoryService 用户目录接口
// 所有用户名解析的唯一入口
type DirectoryService interface {
	// Resolve 解析操作发起方（路径里的 {u}）
	// 严格模式下未知用户返回 NotFound；宽松模式下自动注册最小记录
	Resolve(username string) (*model.User, error)
	// Lookup 严格检查目标用户是否存在，不触发自动注册
	Lookup(username string) error
}

// RelationshipService 关系图谱业务接口
// 处理好友申请状态机、好友列表和黑名单
type RelationshipService interface {
	// GetFriendList 获取好友列表
	GetFriendList(username string) (*respond.FriendListRespond, error)
	// SendRequest 发送好友申请
	SendRequest(fromUsername string, req request.SendFriendRequestRequest) error
	// AcceptRequest 接受好友申请，双方互加好友
	AcceptRequest(owner string, req request.AcceptFriendRequestRequest) error
	// DeclineRequest 拒绝好友申请
	DeclineRequest(owner string, req request.DeclineFriendRequestRequest) error
	// GetRequestList 获取收到的好友申请历史
	GetRequestList(username string) (*respond.FriendRequestListRespond, error)
	// Block 拉黑用户并清理双方的好友关系与申请记录
	Block(owner string, req request.BlockUserRequest) error
	// Unblock 取消拉黑，不恢复好友关系
	Unblock(owner, target string) error
}

// InboxService 收件箱业务接口
// 收件箱是只追加的消息日志，兼做通知流和私聊记录
type InboxService interface {
	// GetInboxList 获取收件箱（默认排除已归档）及未读计数
	GetInboxList(username string) (*respond.InboxListRespond, error)
	// MarkRead 置已读，重复调用幂等
	MarkRead(owner string, messageId string) error
	// Archive 归档，重复调用幂等
	Archive(owner string, messageId string) error
	// Delete 物理删除，目标不存在返回 NotFound
	Delete(owner string, messageId string) error
}

// ConversationService 会话业务接口
// 会话视图是收件箱上的只读投影
type ConversationService interface {
	// GetThread 获取与 peer 的私聊记录，按时间升序，不产生副作用
	GetThread(username, peer string) (*respond.ThreadRespond, error)
	// SendMessage 发送私信，在双方收件箱各写入一条记录
	SendMessage(sender, peer string, req request.SendMessageRequest) error
}

// AccountService 账号业务接口
// 处理注册、登录和令牌刷新
type AccountService interface {
	// Register 用户注册
	Register(req request.RegisterRequest) error
	// Login 密码登录，签发 Access/Refresh Token
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// Refresh 用 Refresh Token 换取新的 Access Token
	Refresh(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error)
}

// EconomyService 积分/主题/道具/学习集业务接口
// 全部是用户聚合上的单字段变更，无状态机
type EconomyService interface {
	// GetPoints 查询积分
	GetPoints(username string) (*respond.PointsRespond, error)
	// UpdatePoints 设置积分，截断为整数并钳制到 >= 0
	UpdatePoints(username string, req request.UpdatePointsRequest) (*respond.PointsRespond, error)
	// GetTheme 查询当前主题
	GetTheme(username string) (*respond.ThemeRespond, error)
	// UpdateTheme 设置当前主题，隐式获得该主题
	UpdateTheme(username string, req request.UpdateThemeRequest) (*respond.ThemeRespond, error)
	// GetOwnedThemes 查询已拥有主题，默认主题始终在列
	GetOwnedThemes(username string) (*respond.ThemeListRespond, error)
	// PurchaseTheme 购买主题，重复购买幂等
	PurchaseTheme(username string, req request.PurchaseThemeRequest) error
	// GetPowerups 查询道具计数
	GetPowerups(username string) (*respond.PowerupListRespond, error)
	// PurchasePowerup 购买道具，计数 +1
	PurchasePowerup(username string, req request.PurchasePowerupRequest) error
	// UsePowerup 使用道具，计数为零时失败
	UsePowerup(username string, req request.UsePowerupRequest) error
	// GetImportedSets 查询已导入学习集
	GetImportedSets(username string) (*respond.ImportedSetListRespond, error)
	// ImportSet 导入学习集，重复导入幂等
	ImportSet(username string, req request.ImportSetRequest) error
	// RemoveImportedSet 移除学习集，目标不存在时幂等
	RemoveImportedSet(username, setName string) error
}
