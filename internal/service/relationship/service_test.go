package relationship

import (
	"testing"

	"eduquest_server/internal/config"
	"eduquest_server/internal/dao/mysql/repository/repotest"
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/infrastructure/mq"
	"eduquest_server/internal/service/directory"
	"eduquest_server/pkg/enum/friend_request/request_status_enum"
	"eduquest_server/pkg/enum/message/message_type_enum"
	"eduquest_server/pkg/errorx"
)

// newTestService 构建基于内存 Repository 的被测服务，预置 alice 和 bob
func newTestService(t *testing.T) (*relationshipService, *repotest.Store) {
	t.Helper()
	repos, store := repotest.New()
	store.AddUser("alice")
	store.AddUser("bob")
	dir := directory.NewDirectoryService(repos, false)
	producer := mq.NewProducer(&config.KafkaConfig{})
	return NewRelationshipService(repos, dir, producer), store
}

func assertCode(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", want)
	}
	if got := errorx.GetCode(err); got != want {
		t.Fatalf("expected error code %d, got %d (%v)", want, got, err)
	}
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

func TestSendRequestThenAccept(t *testing.T) {
	svc, store := newTestService(t)

	if err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"}); err != nil {
		t.Fatalf("send request: %v", err)
	}

	// bob 的收件箱应收到一条未读的好友申请通知
	inbox := store.Inbox("bob")
	if len(inbox) != 1 {
		t.Fatalf("expected 1 inbox message for bob, got %d", len(inbox))
	}
	if inbox[0].Type != message_type_enum.FRIEND_REQUEST || inbox[0].FromUsername != "alice" {
		t.Fatalf("unexpected notification: %+v", inbox[0])
	}
	if inbox[0].IsRead {
		t.Fatal("notification should start unread")
	}

	if err := svc.AcceptRequest("bob", request.AcceptFriendRequestRequest{FromUsername: "alice"}); err != nil {
		t.Fatalf("accept request: %v", err)
	}

	// 好友关系必须对称
	if !contains(store.FriendsOf("alice"), "bob") || !contains(store.FriendsOf("bob"), "alice") {
		t.Fatalf("friendship not symmetric: alice=%v bob=%v", store.FriendsOf("alice"), store.FriendsOf("bob"))
	}
	// 原申请置为 accepted
	if store.Requests()[0].Status != request_status_enum.ACCEPTED {
		t.Fatalf("request status = %d, want accepted", store.Requests()[0].Status)
	}
	// 通知被置为已读
	if !store.Inbox("bob")[0].IsRead {
		t.Fatal("notification should be marked read after accept")
	}
}

func TestSendRequestToSelf(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "alice"})
	assertCode(t, err, errorx.CodeInvalidParam)
}

func TestSendRequestUnknownTarget(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "ghost"})
	assertCode(t, err, errorx.CodeUserNotExist)
}

func TestSendRequestDuplicatePending(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"}); err != nil {
		t.Fatalf("first send: %v", err)
	}
	err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"})
	assertCode(t, err, errorx.CodeConflict)
}

func TestSendRequestAlreadyFriends(t *testing.T) {
	svc, store := newTestService(t)
	store.AddFriendship("alice", "bob")
	err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"})
	assertCode(t, err, errorx.CodeConflict)
}

func TestSendRequestBlocked(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Block("alice", request.BlockUserRequest{BlockUsername: "bob"}); err != nil {
		t.Fatalf("block: %v", err)
	}
	// 拉黑方向无关紧要，双向都禁止
	err := svc.SendRequest("bob", request.SendFriendRequestRequest{ToUsername: "alice"})
	assertCode(t, err, errorx.CodeForbidden)
	err = svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"})
	assertCode(t, err, errorx.CodeForbidden)
}

func TestAcceptMissingRequest(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.AcceptRequest("bob", request.AcceptFriendRequestRequest{FromUsername: "alice"})
	assertCode(t, err, errorx.CodeNotFound)
}

func TestDeclineRequest(t *testing.T) {
	svc, store := newTestService(t)
	if err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := svc.DeclineRequest("bob", request.DeclineFriendRequestRequest{FromUsername: "alice"}); err != nil {
		t.Fatalf("decline: %v", err)
	}

	if store.Requests()[0].Status != request_status_enum.DECLINED {
		t.Fatalf("request status = %d, want declined", store.Requests()[0].Status)
	}
	if len(store.FriendsOf("alice")) != 0 || len(store.FriendsOf("bob")) != 0 {
		t.Fatal("decline must not create friendship")
	}
	if !store.Inbox("bob")[0].IsRead {
		t.Fatal("notification should be marked read after decline")
	}

	// 拒绝后允许重新发起
	if err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"}); err != nil {
		t.Fatalf("re-send after decline: %v", err)
	}
}

func TestMutualPendingAutoResolve(t *testing.T) {
	svc, store := newTestService(t)
	if err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"}); err != nil {
		t.Fatalf("alice send: %v", err)
	}
	if err := svc.SendRequest("bob", request.SendFriendRequestRequest{ToUsername: "alice"}); err != nil {
		t.Fatalf("bob send: %v", err)
	}

	if err := svc.AcceptRequest("bob", request.AcceptFriendRequestRequest{FromUsername: "alice"}); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// 两条申请都应收口为 accepted，不能留下可再次接受的 pending
	for _, req := range store.Requests() {
		if req.Status != request_status_enum.ACCEPTED {
			t.Fatalf("request %s->%s status = %d, want accepted",
				req.FromUsername, req.ToUsername, req.Status)
		}
	}
	// 对向申请已无 pending，再接受一次应报 NotFound
	err := svc.AcceptRequest("alice", request.AcceptFriendRequestRequest{FromUsername: "bob"})
	assertCode(t, err, errorx.CodeNotFound)
}

func TestBlockCleansUpBothSides(t *testing.T) {
	svc, store := newTestService(t)
	if err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	store.AddFriendship("alice", "bob")

	if err := svc.Block("alice", request.BlockUserRequest{BlockUsername: "bob"}); err != nil {
		t.Fatalf("block: %v", err)
	}

	// 双方的好友行都被清掉
	if len(store.FriendsOf("alice")) != 0 || len(store.FriendsOf("bob")) != 0 {
		t.Fatalf("friendship must be removed on both sides: alice=%v bob=%v",
			store.FriendsOf("alice"), store.FriendsOf("bob"))
	}
	// 双向申请记录全部清除
	if len(store.Requests()) != 0 {
		t.Fatalf("expected no requests between pair, got %d", len(store.Requests()))
	}

	// 幂等：重复拉黑不报错
	if err := svc.Block("alice", request.BlockUserRequest{BlockUsername: "bob"}); err != nil {
		t.Fatalf("repeat block: %v", err)
	}
}

func TestBlockSelf(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.Block("alice", request.BlockUserRequest{BlockUsername: "alice"})
	assertCode(t, err, errorx.CodeInvalidParam)
}

func TestUnblockDoesNotRestore(t *testing.T) {
	svc, store := newTestService(t)
	store.AddFriendship("alice", "bob")
	if err := svc.Block("alice", request.BlockUserRequest{BlockUsername: "bob"}); err != nil {
		t.Fatalf("block: %v", err)
	}
	if err := svc.Unblock("alice", "bob"); err != nil {
		t.Fatalf("unblock: %v", err)
	}

	// 好友关系不恢复
	if len(store.FriendsOf("alice")) != 0 {
		t.Fatal("unblock must not restore friendship")
	}
	// 解除之后可以重新发起申请
	if err := svc.SendRequest("bob", request.SendFriendRequestRequest{ToUsername: "alice"}); err != nil {
		t.Fatalf("send after unblock: %v", err)
	}
}

func TestReFriendAfterBlockCycle(t *testing.T) {
	svc, store := newTestService(t)
	store.AddFriendship("alice", "bob")

	if err := svc.Block("alice", request.BlockUserRequest{BlockUsername: "bob"}); err != nil {
		t.Fatalf("block: %v", err)
	}
	if err := svc.Unblock("alice", "bob"); err != nil {
		t.Fatalf("unblock: %v", err)
	}

	// 旧关系行必须被彻底清除，重新走一遍申请/接受不能撞唯一索引
	if err := svc.SendRequest("bob", request.SendFriendRequestRequest{ToUsername: "alice"}); err != nil {
		t.Fatalf("send after unblock: %v", err)
	}
	if err := svc.AcceptRequest("alice", request.AcceptFriendRequestRequest{FromUsername: "bob"}); err != nil {
		t.Fatalf("accept after unblock: %v", err)
	}

	if !contains(store.FriendsOf("alice"), "bob") || !contains(store.FriendsOf("bob"), "alice") {
		t.Fatalf("friendship not restored symmetrically: alice=%v bob=%v",
			store.FriendsOf("alice"), store.FriendsOf("bob"))
	}
}

func TestGetFriendList(t *testing.T) {
	svc, store := newTestService(t)
	store.AddUser("carol")
	store.AddFriendship("alice", "bob")
	store.AddFriendship("alice", "carol")

	rsp, err := svc.GetFriendList("alice")
	if err != nil {
		t.Fatalf("get friend list: %v", err)
	}
	if len(rsp.Friends) != 2 || !contains(rsp.Friends, "bob") || !contains(rsp.Friends, "carol") {
		t.Fatalf("unexpected friends: %v", rsp.Friends)
	}

	// 未知用户（严格模式）404
	if _, err := svc.GetFriendList("ghost"); errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("expected CodeUserNotExist, got %v", err)
	}
}

func TestGetRequestListKeepsHistory(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := svc.DeclineRequest("bob", request.DeclineFriendRequestRequest{FromUsername: "alice"}); err != nil {
		t.Fatalf("decline: %v", err)
	}
	if err := svc.SendRequest("alice", request.SendFriendRequestRequest{ToUsername: "bob"}); err != nil {
		t.Fatalf("re-send: %v", err)
	}

	rsp, err := svc.GetRequestList("bob")
	if err != nil {
		t.Fatalf("get request list: %v", err)
	}
	// 终态记录保留为历史
	if len(rsp.Requests) != 2 {
		t.Fatalf("expected 2 requests in history, got %d", len(rsp.Requests))
	}
	if rsp.Requests[0].Status != "declined" || rsp.Requests[1].Status != "pending" {
		t.Fatalf("unexpected statuses: %+v", rsp.Requests)
	}
}
