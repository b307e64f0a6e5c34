// Package account 实现账号业务：注册、登录、令牌刷新
package account

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"eduquest_server/internal/dao/mysql/repository"
	myredis "eduquest_server/internal/dao/redis"
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/model"
	"eduquest_server/pkg/enum/message/message_type_enum"
	"eduquest_server/pkg/errorx"
	"eduquest_server/pkg/util/jwt"
	"eduquest_server/pkg/util/snowflake"
)

// refreshTokenKeyPrefix Refresh Token 在 Redis 中的键前缀
// 键存在即令牌有效，删除即吊销；TTL 与令牌有效期一致
const refreshTokenKeyPrefix = "refresh_token_"

// accountService 账号业务实现
type accountService struct {
	repos *repository.Repositories
	// refreshTokenTTL 与 JWT 配置中的 Refresh Token 有效期保持一致
	refreshTokenTTL time.Duration
}

// NewAccountService 构造函数
func NewAccountService(repos *repository.Repositories, refreshTokenTTL time.Duration) *accountService {
	return &accountService{repos: repos, refreshTokenTTL: refreshTokenTTL}
}

// Register 用户注册
// 用户记录和欢迎消息在同一事务内写入
func (s *accountService) Register(req request.RegisterRequest) error {
	if _, err := s.repos.User.FindByUsername(req.Username); err == nil {
		return errorx.Newf(errorx.CodeUserExist, "username %s is already taken", req.Username)
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("Find user error", zap.Error(err), zap.String("username", req.Username))
		return errorx.ErrServerBusy
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		user := &model.User{
			Username:    req.Username,
			RawPassword: req.Password, // BeforeSave 钩子负责 bcrypt 哈希
		}
		if err := tx.User.Create(user); err != nil {
			return err
		}
		// 欢迎消息直接写入收件箱，取代外发邮件
		return tx.Inbox.Create(&model.InboxMessage{
			Uuid:          snowflake.GenerateID(),
			OwnerUsername: req.Username,
			Type:          message_type_enum.SYSTEM,
			FromUsername:  "system",
			Subject:       "Welcome to EduQuest!",
			Content:       fmt.Sprintf("Hi %s, welcome aboard. Find friends and start learning together.", req.Username),
		})
	})
	if err != nil {
		zap.L().Error("Register user error", zap.Error(err), zap.String("username", req.Username))
		return errorx.ErrServerBusy
	}

	zap.L().Info("User registered", zap.String("username", req.Username))
	return nil
}

// Login 密码登录
// 用户不存在和密码错误返回同一个错误，避免用户名枚举
func (s *accountService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByUsername(req.Username)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeInvalidPassword, "invalid username or password")
		}
		zap.L().Error("Find user error", zap.Error(err), zap.String("username", req.Username))
		return nil, errorx.ErrServerBusy
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "invalid username or password")
	}

	accessToken, err := jwt.GenerateAccessToken(user.Username)
	if err != nil {
		zap.L().Error("Generate access token error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(user.Username)
	if err != nil {
		zap.L().Error("Generate refresh token error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// Refresh Token 登记到 Redis，刷新时校验、可主动吊销
	if err := myredis.SetKeyEx(context.Background(), refreshTokenKeyPrefix+tokenID, user.Username, s.refreshTokenTTL); err != nil {
		zap.L().Error("Store refresh token error", zap.Error(err))
	}

	if err := s.repos.User.TouchLastSeen(user.Username); err != nil {
		zap.L().Warn("Touch last seen error", zap.Error(err), zap.String("username", user.Username))
	}

	return &respond.LoginRespond{
		Ok:           true,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh 用 Refresh Token 换取新的 Access Token
func (s *accountService) Refresh(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(req.RefreshToken)
	if err != nil || claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "invalid refresh token")
	}

	// 吊销检查：键被删除（登出/互踢）的令牌不再可用
	stored, err := myredis.GetKeyNilIsErr(context.Background(), refreshTokenKeyPrefix+claims.TokenID)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeUnauthorized, "refresh token revoked or expired")
		}
		zap.L().Error("Check refresh token error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if stored != claims.Username {
		return nil, errorx.New(errorx.CodeUnauthorized, "invalid refresh token")
	}

	accessToken, err := jwt.GenerateAccessToken(claims.Username)
	if err != nil {
		zap.L().Error("Generate access token error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.RefreshTokenRespond{Ok: true, AccessToken: accessToken}, nil
}
