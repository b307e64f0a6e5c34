// Package economy 实现积分、主题、道具、学习集业务
// 全部是用户聚合上的单字段变更：每个写操作落到一条原子 SQL 更新，
// 不做读-改-写，并发下不会丢失更新
package economy

import (
	"math"

	"go.uber.org/zap"

	"eduquest_server/internal/dao/mysql/repository"
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/model"
	"eduquest_server/pkg/constants"
	"eduquest_server/pkg/errorx"
)

// Directory 用户名解析依赖，由 service/directory 提供实现
type Directory interface {
	Resolve(username string) (*model.User, error)
	Lookup(username string) error
}

// economyService 经济系统业务实现
type economyService struct {
	repos     *repository.Repositories
	directory Directory
}

// NewEconomyService 构造函数
func NewEconomyService(repos *repository.Repositories, directory Directory) *economyService {
	return &economyService{repos: repos, directory: directory}
}

// GetPoints 查询积分
func (s *economyService) GetPoints(username string) (*respond.PointsRespond, error) {
	user, err := s.directory.Resolve(username)
	if err != nil {
		return nil, err
	}
	return &respond.PointsRespond{Points: user.Points}, nil
}

// UpdatePoints 设置积分
// 入参截断为整数并钳制到 >= 0
func (s *economyService) UpdatePoints(username string, req request.UpdatePointsRequest) (*respond.PointsRespond, error) {
	if _, err := s.directory.Resolve(username); err != nil {
		return nil, err
	}

	points := int64(math.Trunc(*req.Points))
	if points < 0 {
		points = 0
	}
	if err := s.repos.User.UpdatePoints(username, points); err != nil {
		zap.L().Error("Update points error", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}
	return &respond.PointsRespond{Points: points}, nil
}

// GetTheme 查询当前主题
func (s *economyService) GetTheme(username string) (*respond.ThemeRespond, error) {
	user, err := s.directory.Resolve(username)
	if err != nil {
		return nil, err
	}
	return &respond.ThemeRespond{Theme: user.CurrentTheme}, nil
}

// UpdateTheme 设置当前主题
// 设置即拥有：主题先写入持有表再切换
func (s *economyService) UpdateTheme(username string, req request.UpdateThemeRequest) (*respond.ThemeRespond, error) {
	if _, err := s.directory.Resolve(username); err != nil {
		return nil, err
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Theme.Add(username, req.Theme); err != nil {
			return err
		}
		return tx.User.UpdateCurrentTheme(username, req.Theme)
	})
	if err != nil {
		zap.L().Error("Update theme error", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}
	return &respond.ThemeRespond{Theme: req.Theme}, nil
}

// GetOwnedThemes 查询已拥有主题
// 默认主题人人拥有，不落库，返回时补齐
func (s *economyService) GetOwnedThemes(username string) (*respond.ThemeListRespond, error) {
	if _, err := s.directory.Resolve(username); err != nil {
		return nil, err
	}

	owned, err := s.repos.Theme.ListByUsername(username)
	if err != nil {
		zap.L().Error("List themes error", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}

	themes := make([]string, 0, len(owned)+1)
	themes = append(themes, constants.DEFAULT_THEME)
	for _, theme := range owned {
		if theme != constants.DEFAULT_THEME {
			themes = append(themes, theme)
		}
	}
	return &respond.ThemeListRespond{Themes: themes}, nil
}

// PurchaseTheme 购买主题，重复购买幂等
func (s *economyService) PurchaseTheme(username string, req request.PurchaseThemeRequest) error {
	if _, err := s.directory.Resolve(username); err != nil {
		return err
	}
	if err := s.repos.Theme.Add(username, req.Theme); err != nil {
		zap.L().Error("Purchase theme error", zap.Error(err), zap.String("username", username))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetPowerups 查询道具计数
func (s *economyService) GetPowerups(username string) (*respond.PowerupListRespond, error) {
	if _, err := s.directory.Resolve(username); err != nil {
		return nil, err
	}
	powerups, err := s.repos.Powerup.MapByUsername(username)
	if err != nil {
		zap.L().Error("List powerups error", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}
	return &respond.PowerupListRespond{Powerups: powerups}, nil
}

// PurchasePowerup 购买道具，计数原子 +1
func (s *economyService) PurchasePowerup(username string, req request.PurchasePowerupRequest) error {
	if _, err := s.directory.Resolve(username); err != nil {
		return err
	}
	if err := s.repos.Powerup.Increment(username, req.PowerupId); err != nil {
		zap.L().Error("Purchase powerup error", zap.Error(err), zap.String("username", username))
		return errorx.ErrServerBusy
	}
	return nil
}

// UsePowerup 使用道具
// 条件自减保证计数不会变负；减到零的记录随手清掉
func (s *economyService) UsePowerup(username string, req request.UsePowerupRequest) error {
	if _, err := s.directory.Resolve(username); err != nil {
		return err
	}

	used, err := s.repos.Powerup.Decrement(username, req.PowerupId)
	if err != nil {
		zap.L().Error("Use powerup error", zap.Error(err), zap.String("username", username))
		return errorx.ErrServerBusy
	}
	if !used {
		return errorx.Newf(errorx.CodeInvalidParam, "no %s powerup left", req.PowerupId)
	}

	if err := s.repos.Powerup.DeleteDepleted(username, req.PowerupId); err != nil {
		zap.L().Warn("Delete depleted powerup error", zap.Error(err), zap.String("username", username))
	}
	return nil
}

// GetImportedSets 查询已导入学习集
func (s *economyService) GetImportedSets(username string) (*respond.ImportedSetListRespond, error) {
	if _, err := s.directory.Resolve(username); err != nil {
		return nil, err
	}
	sets, err := s.repos.ImportedSet.ListByUsername(username)
	if err != nil {
		zap.L().Error("List imported sets error", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}
	if sets == nil {
		sets = []string{}
	}
	return &respond.ImportedSetListRespond{Sets: sets}, nil
}

// ImportSet 导入学习集，重复导入幂等
func (s *economyService) ImportSet(username string, req request.ImportSetRequest) error {
	if _, err := s.directory.Resolve(username); err != nil {
		return err
	}
	if err := s.repos.ImportedSet.Add(username, req.SetName); err != nil {
		zap.L().Error("Import set error", zap.Error(err), zap.String("username", username))
		return errorx.ErrServerBusy
	}
	return nil
}

// RemoveImportedSet 移除学习集，目标不存在时幂等
func (s *economyService) RemoveImportedSet(username, setName string) error {
	if _, err := s.directory.Resolve(username); err != nil {
		return err
	}
	if err := s.repos.ImportedSet.Remove(username, setName); err != nil {
		zap.L().Error("Remove imported set error", zap.Error(err), zap.String("username", username))
		return errorx.ErrServerBusy
	}
	return nil
}
