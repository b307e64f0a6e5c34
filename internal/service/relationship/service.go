// Package relationship 实现关系图谱业务
// 每个有序对 (from, to) 上的状态机: 无 -> pending -> {accepted, declined}
// accepted/declined 为终态；拒绝或对向接受后允许再次发起
package relationship

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"eduquest_server/internal/dao/mysql/repository"
	myredis "eduquest_server/internal/dao/redis"
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/dto/respond"
	"eduquest_server/internal/infrastructure/mq"
	"eduquest_server/internal/model"
	"eduquest_server/pkg/enum/friend_request/request_status_enum"
	"eduquest_server/pkg/enum/message/message_type_enum"
	"eduquest_server/pkg/errorx"
	"eduquest_server/pkg/util/snowflake"
)

// Directory 用户名解析依赖，由 service/directory 提供实现
type Directory interface {
	Resolve(username string) (*model.User, error)
	Lookup(username string) error
}

// relationshipService 关系图谱业务实现
type relationshipService struct {
	repos     *repository.Repositories
	directory Directory
	producer  *mq.Producer
}

// NewRelationshipService 构造函数
func NewRelationshipService(repos *repository.Repositories, directory Directory, producer *mq.Producer) *relationshipService {
	return &relationshipService{repos: repos, directory: directory, producer: producer}
}

// friendListCacheKey 好友列表缓存键
func friendListCacheKey(username string) string {
	return "friend_list_" + username
}

// invalidateFriendCache 异步失效双方的好友列表缓存
func invalidateFriendCache(usernames ...string) {
	myredis.SubmitCacheTask(func() {
		ctx := context.Background()
		for _, username := range usernames {
			if err := myredis.DelKeyIfExists(ctx, friendListCacheKey(username)); err != nil {
				zap.L().Error("Invalidate friend cache error", zap.Error(err), zap.String("username", username))
			}
		}
	})
}

// GetFriendList 获取好友列表
// Redis Set 读穿缓存：缓存命中直接返回成员，未命中回源数据库并写回
func (s *relationshipService) GetFriendList(username string) (*respond.FriendListRespond, error) {
	if _, err := s.directory.Resolve(username); err != nil {
		return nil, err
	}

	ctx := context.Background()
	cacheKey := friendListCacheKey(username)

	friends, err := myredis.SMembers(ctx, cacheKey)
	if err != nil || len(friends) == 0 {
		rows, dbErr := s.repos.Friendship.ListByOwner(username)
		if dbErr != nil {
			zap.L().Error("List friendships error", zap.Error(dbErr), zap.String("username", username))
			return nil, errorx.ErrServerBusy
		}
		friends = make([]string, 0, len(rows))
		for _, row := range rows {
			friends = append(friends, row.FriendUsername)
		}
		if len(friends) > 0 {
			members := make([]interface{}, len(friends))
			for i, v := range friends {
				members[i] = v
			}
			myredis.SubmitCacheTask(func() {
				_ = myredis.SAdd(ctx, cacheKey, members...)
			})
		}
	}

	return &respond.FriendListRespond{Friends: friends}, nil
}

// SendRequest 发送好友申请
// 前置校验全部通过后，在一个事务内写入 pending 记录
// 并向对方收件箱追加 friend_request 通知
func (s *relationshipService) SendRequest(fromUsername string, req request.SendFriendRequestRequest) error {
	to := req.ToUsername
	if fromUsername == to {
		return errorx.New(errorx.CodeInvalidParam, "cannot send a friend request to yourself")
	}
	if _, err := s.directory.Resolve(fromUsername); err != nil {
		return err
	}
	if err := s.directory.Lookup(to); err != nil {
		return err
	}

	// 任一方向被拉黑均禁止
	blocked, err := s.repos.Block.EitherBlocked(fromUsername, to)
	if err != nil {
		zap.L().Error("Check block error", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if blocked {
		return errorx.New(errorx.CodeForbidden, "request is not allowed between these users")
	}

	// 已是好友
	if _, err := s.repos.Friendship.FindPair(fromUsername, to); err == nil {
		return errorx.Newf(errorx.CodeConflict, "%s and %s are already friends", fromUsername, to)
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("Find friendship error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 同向 pending 唯一
	if _, err := s.repos.FriendRequest.FindPending(fromUsername, to); err == nil {
		return errorx.Newf(errorx.CodeConflict, "a pending request from %s to %s already exists", fromUsername, to)
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("Find pending request error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.FriendRequest.Create(&model.FriendRequest{
			FromUsername: fromUsername,
			ToUsername:   to,
			Status:       request_status_enum.PENDING,
		}); err != nil {
			return err
		}
		return tx.Inbox.Create(&model.InboxMessage{
			Uuid:          snowflake.GenerateID(),
			OwnerUsername: to,
			Type:          message_type_enum.FRIEND_REQUEST,
			FromUsername:  fromUsername,
			Subject:       "New friend request",
			Content:       fmt.Sprintf("%s sent you a friend request", fromUsername),
		})
	})
	if err != nil {
		zap.L().Error("Send friend request error", zap.Error(err),
			zap.String("from", fromUsername), zap.String("to", to))
		return errorx.ErrServerBusy
	}

	s.producer.Publish(context.Background(), mq.EventFriendRequestSent, fromUsername, to)
	return nil
}

// AcceptRequest 接受好友申请
// 在一个事务内：置申请 accepted、双向写入好友行、把通知置为已读。
// 双方同时互发申请时，接受任意一条会把对向 pending 一并置为 accepted，
// 避免已成好友后还挂着一条可被再次接受的申请
func (s *relationshipService) AcceptRequest(owner string, req request.AcceptFriendRequestRequest) error {
	from := req.FromUsername
	if _, err := s.directory.Resolve(owner); err != nil {
		return err
	}
	if err := s.directory.Lookup(from); err != nil {
		return err
	}

	pending, err := s.repos.FriendRequest.FindPending(from, owner)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.Newf(errorx.CodeNotFound, "no pending request from %s to %s", from, owner)
		}
		zap.L().Error("Find pending request error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.FriendRequest.UpdateStatus(pending.ID, request_status_enum.ACCEPTED); err != nil {
			return err
		}
		// 对向 pending（互发场景）一并收口
		if reverse, err := tx.FriendRequest.FindPending(owner, from); err == nil {
			if err := tx.FriendRequest.UpdateStatus(reverse.ID, request_status_enum.ACCEPTED); err != nil {
				return err
			}
		} else if !errorx.IsNotFound(err) {
			return err
		}
		// 双向两行在同一事务内写入，保证好友关系对称
		if err := tx.Friendship.Create(&model.Friendship{OwnerUsername: owner, FriendUsername: from}); err != nil {
			return err
		}
		if err := tx.Friendship.Create(&model.Friendship{OwnerUsername: from, FriendUsername: owner}); err != nil {
			return err
		}
		return tx.Inbox.MarkRequestNoticeRead(owner, from)
	})
	if err != nil {
		zap.L().Error("Accept friend request error", zap.Error(err),
			zap.String("owner", owner), zap.String("from", from))
		return errorx.ErrServerBusy
	}

	invalidateFriendCache(owner, from)
	s.producer.Publish(context.Background(), mq.EventFriendRequestAccepted, owner, from)
	return nil
}

// DeclineRequest 拒绝好友申请
// 置 declined 并把通知置为已读，好友列表不变；此后对方可重新发起
func (s *relationshipService) DeclineRequest(owner string, req request.DeclineFriendRequestRequest) error {
	from := req.FromUsername
	if _, err := s.directory.Resolve(owner); err != nil {
		return err
	}
	if err := s.directory.Lookup(from); err != nil {
		return err
	}

	pending, err := s.repos.FriendRequest.FindPending(from, owner)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.Newf(errorx.CodeNotFound, "no pending request from %s to %s", from, owner)
		}
		zap.L().Error("Find pending request error", zap.Error(err))
		return errorx.ErrServerBusy
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.FriendRequest.UpdateStatus(pending.ID, request_status_enum.DECLINED); err != nil {
			return err
		}
		return tx.Inbox.MarkRequestNoticeRead(owner, from)
	})
	if err != nil {
		zap.L().Error("Decline friend request error", zap.Error(err),
			zap.String("owner", owner), zap.String("from", from))
		return errorx.ErrServerBusy
	}

	s.producer.Publish(context.Background(), mq.EventFriendRequestDeclined, owner, from)
	return nil
}

// GetRequestList 获取收到的好友申请历史（含终态记录），按创建时间升序
func (s *relationshipService) GetRequestList(username string) (*respond.FriendRequestListRespond, error) {
	if _, err := s.directory.Resolve(username); err != nil {
		return nil, err
	}

	rows, err := s.repos.FriendRequest.ListByTarget(username)
	if err != nil {
		zap.L().Error("List friend requests error", zap.Error(err), zap.String("username", username))
		return nil, errorx.ErrServerBusy
	}

	requests := make([]respond.FriendRequestRespond, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, respond.FriendRequestRespond{
			FromUsername: row.FromUsername,
			ToUsername:   row.ToUsername,
			Status:       request_status_enum.String(row.Status),
			CreatedAt:    row.CreatedAt.Format(time.RFC3339),
		})
	}
	return &respond.FriendRequestListRespond{Requests: requests}, nil
}

// Block 拉黑用户
// 黑名单记录是单向的，但清理是对称的：双方的好友行和双向的申请记录
// 在同一事务内一并删除，保证不会留下事后还能被接受的 pending
func (s *relationshipService) Block(owner string, req request.BlockUserRequest) error {
	target := req.BlockUsername
	if owner == target {
		return errorx.New(errorx.CodeInvalidParam, "cannot block yourself")
	}
	if _, err := s.directory.Resolve(owner); err != nil {
		return err
	}
	if err := s.directory.Lookup(target); err != nil {
		return err
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		// 幂等：重复拉黑不报错
		if err := tx.Block.Create(&model.BlockedUser{OwnerUsername: owner, BlockedUsername: target}); err != nil {
			return err
		}
		if err := tx.Friendship.DeletePair(owner, target); err != nil {
			return err
		}
		if err := tx.Friendship.DeletePair(target, owner); err != nil {
			return err
		}
		return tx.FriendRequest.DeleteBetween(owner, target)
	})
	if err != nil {
		zap.L().Error("Block user error", zap.Error(err),
			zap.String("owner", owner), zap.String("target", target))
		return errorx.ErrServerBusy
	}

	invalidateFriendCache(owner, target)
	s.producer.Publish(context.Background(), mq.EventUserBlocked, owner, target)
	return nil
}

// Unblock 取消拉黑
// 只移除黑名单记录，不恢复好友关系和申请；目标未被拉黑时幂等
func (s *relationshipService) Unblock(owner, target string) error {
	if _, err := s.directory.Resolve(owner); err != nil {
		return err
	}
	if err := s.directory.Lookup(target); err != nil {
		return err
	}

	if err := s.repos.Block.Delete(owner, target); err != nil {
		zap.L().Error("Unblock user error", zap.Error(err),
			zap.String("owner", owner), zap.String("target", target))
		return errorx.ErrServerBusy
	}
	return nil
}
