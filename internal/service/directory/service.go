// Package directory 实现用户目录
// 用户名到用户聚合的唯一解析入口，自动注册策略在此处集中体现
package directory

import (
	"context"
	"time"

	"go.uber.org/zap"

	"eduquest_server/internal/dao/mysql/repository"
	myredis "eduquest_server/internal/dao/redis"
	"eduquest_server/internal/model"
	"eduquest_server/pkg/constants"
	"eduquest_server/pkg/errorx"
)

// directoryService 用户目录实现
type directoryService struct {
	repos *repository.Repositories
	// autoProvision 宽松模式开关：首次访问自动注册最小用户记录
	// 关闭时为严格模式，未知用户名一律 NotFound
	autoProvision bool
}

// NewDirectoryService 构造函数
func NewDirectoryService(repos *repository.Repositories, autoProvision bool) *directoryService {
	return &directoryService{repos: repos, autoProvision: autoProvision}
}

// Resolve 解析操作发起方
// 宽松模式下未知用户名自动注册一条最小记录（默认密码、默认主题、零积分），
// 除此之外无任何副作用
func (d *directoryService) Resolve(username string) (*model.User, error) {
	user, err := d.repos.User.FindByUsername(username)
	if err == nil {
		return user, nil
	}
	if !errorx.IsNotFound(err) {
		zap.L().Error("Find user error", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}

	if !d.autoProvision {
		return nil, errorx.Newf(errorx.CodeUserNotExist, "user %s not found", username)
	}

	// 宽松模式：自动注册
	user = &model.User{
		Username:    username,
		RawPassword: constants.AUTO_PROVISION_PASSWORD,
	}
	if err := d.repos.User.Create(user); err != nil {
		// 与并发请求撞车时该用户可能刚被建出来，回读一次
		if recovered, findErr := d.repos.User.FindByUsername(username); findErr == nil {
			return recovered, nil
		}
		zap.L().Error("Auto provision user error", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}
	zap.L().Info("Auto provisioned user", zap.String("username", username))
	return user, nil
}

// Lookup 严格检查目标用户是否存在
// 操作目标（好友申请对象、私信对端等）不论策略如何都不自动注册
// 存在性结果带 TTL 缓存，用户名不可变且用户不删除，无需失效
func (d *directoryService) Lookup(username string) error {
	cacheKey := "user_exists_" + username
	ctx := context.Background()
	if cached, err := myredis.GetKey(ctx, cacheKey); err == nil && cached == "1" {
		return nil
	}

	if _, err := d.repos.User.FindByUsername(username); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.Newf(errorx.CodeUserNotExist, "user %s not found", username)
		}
		zap.L().Error("Lookup user error", zap.Error(err), zap.String("username", username))
		return errorx.ErrServerBusy
	}

	myredis.SubmitCacheTask(func() {
		_ = myredis.SetKeyEx(ctx, cacheKey, "1", time.Minute*constants.REDIS_TIMEOUT)
	})
	return nil
}
