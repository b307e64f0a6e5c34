// Package repotest 提供 Repository 层的内存假实现，供 Service 层测试使用
// 行为与 MySQL 实现对齐：NotFound 走同样的 errorx 错误码，
// db 为 nil 时 Repositories.Transaction 直接透传，事务语义在测试里退化为顺序执行
package repotest

import (
	"sort"
	"time"

	"eduquest_server/internal/dao/mysql/repository"
	"eduquest_server/internal/model"
	"eduquest_server/pkg/enum/friend_request/request_status_enum"
	"eduquest_server/pkg/enum/message/message_type_enum"
	"eduquest_server/pkg/errorx"
)

// Store 内存数据仓
type Store struct {
	users    map[string]*model.User
	friends  []model.Friendship
	requests []*model.FriendRequest
	blocks   []model.BlockedUser
	inbox    []*model.InboxMessage
	themes   map[string][]string
	powerups map[string]map[string]int
	sets     map[string][]string
	nextID   uint
}

// New 创建内存 Repositories 和底层 Store
// Store 暴露给测试用于预置和断言数据
func New() (*repository.Repositories, *Store) {
	s := &Store{
		users:    make(map[string]*model.User),
		themes:   make(map[string][]string),
		powerups: make(map[string]map[string]int),
		sets:     make(map[string][]string),
	}
	repos := &repository.Repositories{
		User:          (*userRepo)(s),
		Friendship:    (*friendshipRepo)(s),
		FriendRequest: (*friendRequestRepo)(s),
		Block:         (*blockRepo)(s),
		Inbox:         (*inboxRepo)(s),
		Theme:         (*themeRepo)(s),
		Powerup:       (*powerupRepo)(s),
		ImportedSet:   (*importedSetRepo)(s),
	}
	return repos, s
}

// AddUser 预置一个用户（明文密码经 BeforeSave 哈希）
func (s *Store) AddUser(username string) *model.User {
	user := &model.User{Username: username, RawPassword: "password", CurrentTheme: "space"}
	_ = user.BeforeSave(nil)
	s.users[username] = user
	return user
}

// AddFriendship 预置一对双向好友关系
func (s *Store) AddFriendship(a, b string) {
	s.friends = append(s.friends,
		model.Friendship{OwnerUsername: a, FriendUsername: b},
		model.Friendship{OwnerUsername: b, FriendUsername: a},
	)
}

// Requests 返回全部申请记录
func (s *Store) Requests() []*model.FriendRequest {
	return s.requests
}

// Inbox 返回某用户收件箱的全部记录（含已归档）
func (s *Store) Inbox(owner string) []*model.InboxMessage {
	var result []*model.InboxMessage
	for _, m := range s.inbox {
		if m.OwnerUsername == owner {
			result = append(result, m)
		}
	}
	return result
}

// FriendsOf 返回某用户好友行指向的用户名集合
func (s *Store) FriendsOf(owner string) []string {
	var result []string
	for _, f := range s.friends {
		if f.OwnerUsername == owner {
			result = append(result, f.FriendUsername)
		}
	}
	return result
}

func notFound(format string, args ...any) error {
	return errorx.Newf(errorx.CodeNotFound, format, args...)
}

// ==================== UserRepository ====================

type userRepo Store

func (r *userRepo) FindByUsername(username string) (*model.User, error) {
	if user, ok := r.users[username]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, notFound("user %s not found", username)
}

func (r *userRepo) Create(user *model.User) error {
	if _, ok := r.users[user.Username]; ok {
		return errorx.Newf(errorx.CodeDBError, "duplicate username %s", user.Username)
	}
	if err := user.BeforeSave(nil); err != nil {
		return err
	}
	if user.CurrentTheme == "" {
		user.CurrentTheme = "space"
	}
	copied := *user
	r.users[user.Username] = &copied
	return nil
}

func (r *userRepo) UpdatePoints(username string, points int64) error {
	if user, ok := r.users[username]; ok {
		user.Points = points
	}
	return nil
}

func (r *userRepo) UpdateCurrentTheme(username string, theme string) error {
	if user, ok := r.users[username]; ok {
		user.CurrentTheme = theme
	}
	return nil
}

func (r *userRepo) TouchLastSeen(username string) error {
	if user, ok := r.users[username]; ok {
		user.LastSeenAt.Time = time.Now()
		user.LastSeenAt.Valid = true
	}
	return nil
}

// ==================== FriendshipRepository ====================

type friendshipRepo Store

func (r *friendshipRepo) FindPair(owner, friend string) (*model.Friendship, error) {
	for i := range r.friends {
		if r.friends[i].OwnerUsername == owner && r.friends[i].FriendUsername == friend {
			return &r.friends[i], nil
		}
	}
	return nil, notFound("friendship %s -> %s not found", owner, friend)
}

func (r *friendshipRepo) ListByOwner(owner string) ([]model.Friendship, error) {
	var result []model.Friendship
	for _, f := range r.friends {
		if f.OwnerUsername == owner {
			result = append(result, f)
		}
	}
	return result, nil
}

func (r *friendshipRepo) Create(friendship *model.Friendship) error {
	for _, f := range r.friends {
		if f.OwnerUsername == friendship.OwnerUsername && f.FriendUsername == friendship.FriendUsername {
			return errorx.Newf(errorx.CodeDBError, "duplicate friendship %s -> %s",
				friendship.OwnerUsername, friendship.FriendUsername)
		}
	}
	r.friends = append(r.friends, *friendship)
	return nil
}

func (r *friendshipRepo) DeletePair(owner, friend string) error {
	kept := r.friends[:0]
	for _, f := range r.friends {
		if !(f.OwnerUsername == owner && f.FriendUsername == friend) {
			kept = append(kept, f)
		}
	}
	r.friends = kept
	return nil
}

// ==================== FriendRequestRepository ====================

type friendRequestRepo Store

func (r *friendRequestRepo) FindPending(from, to string) (*model.FriendRequest, error) {
	for _, req := range r.requests {
		if req.FromUsername == from && req.ToUsername == to && req.Status == request_status_enum.PENDING {
			copied := *req
			return &copied, nil
		}
	}
	return nil, notFound("pending request %s -> %s not found", from, to)
}

func (r *friendRequestRepo) ListByTarget(to string) ([]model.FriendRequest, error) {
	var result []model.FriendRequest
	for _, req := range r.requests {
		if req.ToUsername == to {
			result = append(result, *req)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *friendRequestRepo) Create(request *model.FriendRequest) error {
	r.nextID++
	request.ID = r.nextID
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	copied := *request
	r.requests = append(r.requests, &copied)
	return nil
}

func (r *friendRequestRepo) UpdateStatus(id uint, status int8) error {
	for _, req := range r.requests {
		if req.ID == id {
			req.Status = status
		}
	}
	return nil
}

func (r *friendRequestRepo) DeleteBetween(a, b string) error {
	kept := r.requests[:0]
	for _, req := range r.requests {
		between := (req.FromUsername == a && req.ToUsername == b) ||
			(req.FromUsername == b && req.ToUsername == a)
		if !between {
			kept = append(kept, req)
		}
	}
	r.requests = kept
	return nil
}

// ==================== BlockRepository ====================

type blockRepo Store

func (r *blockRepo) Exists(owner, target string) (bool, error) {
	for _, b := range r.blocks {
		if b.OwnerUsername == owner && b.BlockedUsername == target {
			return true, nil
		}
	}
	return false, nil
}

func (r *blockRepo) EitherBlocked(a, b string) (bool, error) {
	forward, _ := r.Exists(a, b)
	backward, _ := r.Exists(b, a)
	return forward || backward, nil
}

func (r *blockRepo) Create(block *model.BlockedUser) error {
	if exists, _ := r.Exists(block.OwnerUsername, block.BlockedUsername); exists {
		return nil
	}
	r.blocks = append(r.blocks, *block)
	return nil
}

func (r *blockRepo) Delete(owner, target string) error {
	kept := r.blocks[:0]
	for _, b := range r.blocks {
		if !(b.OwnerUsername == owner && b.BlockedUsername == target) {
			kept = append(kept, b)
		}
	}
	r.blocks = kept
	return nil
}

// ==================== InboxRepository ====================

type inboxRepo Store

func (r *inboxRepo) Create(message *model.InboxMessage) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	copied := *message
	r.inbox = append(r.inbox, &copied)
	return nil
}

func (r *inboxRepo) CreateBatch(messages []*model.InboxMessage) error {
	for _, m := range messages {
		if err := r.Create(m); err != nil {
			return err
		}
	}
	return nil
}

func (r *inboxRepo) ListByOwner(owner string, excludeArchived bool) ([]model.InboxMessage, error) {
	var result []model.InboxMessage
	for _, m := range r.inbox {
		if m.OwnerUsername != owner {
			continue
		}
		if excludeArchived && m.IsArchived {
			continue
		}
		result = append(result, *m)
	}
	return result, nil
}

func (r *inboxRepo) FindByOwnerAndUuid(owner string, uuid int64) (*model.InboxMessage, error) {
	for _, m := range r.inbox {
		if m.OwnerUsername == owner && m.Uuid == uuid {
			copied := *m
			return &copied, nil
		}
	}
	return nil, notFound("message %d not found", uuid)
}

func (r *inboxRepo) MarkRead(owner string, uuid int64) error {
	for _, m := range r.inbox {
		if m.OwnerUsername == owner && m.Uuid == uuid {
			m.IsRead = true
		}
	}
	return nil
}

func (r *inboxRepo) Archive(owner string, uuid int64) error {
	for _, m := range r.inbox {
		if m.OwnerUsername == owner && m.Uuid == uuid {
			m.IsArchived = true
		}
	}
	return nil
}

func (r *inboxRepo) Delete(owner string, uuid int64) (bool, error) {
	for i, m := range r.inbox {
		if m.OwnerUsername == owner && m.Uuid == uuid {
			r.inbox = append(r.inbox[:i], r.inbox[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *inboxRepo) MarkRequestNoticeRead(owner, from string) error {
	for _, m := range r.inbox {
		if m.OwnerUsername == owner && m.FromUsername == from && m.Type == message_type_enum.FRIEND_REQUEST && !m.IsRead {
			m.IsRead = true
		}
	}
	return nil
}

func (r *inboxRepo) ListThread(owner, peer string) ([]model.InboxMessage, error) {
	var result []model.InboxMessage
	for _, m := range r.inbox {
		if m.OwnerUsername == owner && m.Type == message_type_enum.DIRECT_MESSAGE && m.PeerUsername == peer {
			result = append(result, *m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// ==================== ThemeRepository ====================

type themeRepo Store

func (r *themeRepo) ListByUsername(username string) ([]string, error) {
	return r.themes[username], nil
}

func (r *themeRepo) Add(username, theme string) error {
	for _, t := range r.themes[username] {
		if t == theme {
			return nil
		}
	}
	r.themes[username] = append(r.themes[username], theme)
	return nil
}

// ==================== PowerupRepository ====================

type powerupRepo Store

func (r *powerupRepo) MapByUsername(username string) (map[string]int, error) {
	result := make(map[string]int)
	for id, count := range r.powerups[username] {
		if count > 0 {
			result[id] = count
		}
	}
	return result, nil
}

func (r *powerupRepo) Increment(username, powerupId string) error {
	if r.powerups[username] == nil {
		r.powerups[username] = make(map[string]int)
	}
	r.powerups[username][powerupId]++
	return nil
}

func (r *powerupRepo) Decrement(username, powerupId string) (bool, error) {
	if r.powerups[username] == nil || r.powerups[username][powerupId] <= 0 {
		return false, nil
	}
	r.powerups[username][powerupId]--
	return true, nil
}

func (r *powerupRepo) DeleteDepleted(username, powerupId string) error {
	if counts, ok := r.powerups[username]; ok && counts[powerupId] <= 0 {
		delete(counts, powerupId)
	}
	return nil
}

// ==================== ImportedSetRepository ====================

type importedSetRepo Store

func (r *importedSetRepo) ListByUsername(username string) ([]string, error) {
	return r.sets[username], nil
}

func (r *importedSetRepo) Add(username, setName string) error {
	for _, s := range r.sets[username] {
		if s == setName {
			return nil
		}
	}
	r.sets[username] = append(r.sets[username], setName)
	return nil
}

func (r *importedSetRepo) Remove(username, setName string) error {
	kept := r.sets[username][:0]
	for _, s := range r.sets[username] {
		if s != setName {
			kept = append(kept, s)
		}
	}
	r.sets[username] = kept
	return nil
}
