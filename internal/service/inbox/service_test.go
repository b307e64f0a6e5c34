package inbox

import (
	"strconv"
	"testing"

	"eduquest_server/internal/dao/mysql/repository/repotest"
	"eduquest_server/internal/model"
	"eduquest_server/internal/service/directory"
	"eduquest_server/pkg/enum/message/message_type_enum"
	"eduquest_server/pkg/errorx"
)

func newTestService(t *testing.T) (*inboxService, *repotest.Store) {
	t.Helper()
	repos, store := repotest.New()
	store.AddUser("alice")
	dir := directory.NewDirectoryService(repos, false)
	return NewInboxService(repos, dir), store
}

// seedMessage 直接写入一条收件箱消息并返回其对外 ID
func seedMessage(t *testing.T, svc *inboxService, message *model.InboxMessage) string {
	t.Helper()
	if err := svc.repos.Inbox.Create(message); err != nil {
		t.Fatalf("seed message: %v", err)
	}
	return strconv.FormatInt(message.Uuid, 10)
}

func TestGetInboxList(t *testing.T) {
	svc, _ := newTestService(t)
	seedMessage(t, svc, &model.InboxMessage{
		Uuid: 1, OwnerUsername: "alice", Type: message_type_enum.SYSTEM,
		FromUsername: "system", Subject: "Welcome", Content: "hi",
	})
	seedMessage(t, svc, &model.InboxMessage{
		Uuid: 2, OwnerUsername: "alice", Type: message_type_enum.FRIEND_REQUEST,
		FromUsername: "bob", Subject: "New friend request", IsRead: true,
	})
	// 已归档的不进列表
	seedMessage(t, svc, &model.InboxMessage{
		Uuid: 3, OwnerUsername: "alice", Type: message_type_enum.SYSTEM,
		Subject: "old", IsArchived: true,
	})
	// 别人的收件箱不串号
	seedMessage(t, svc, &model.InboxMessage{
		Uuid: 4, OwnerUsername: "bob", Type: message_type_enum.SYSTEM, Subject: "not yours",
	})

	rsp, err := svc.GetInboxList("alice")
	if err != nil {
		t.Fatalf("get inbox: %v", err)
	}
	if len(rsp.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(rsp.Messages))
	}
	if rsp.UnreadCount != 1 {
		t.Fatalf("unread count = %d, want 1", rsp.UnreadCount)
	}
	if rsp.Messages[0].Id != "1" || rsp.Messages[0].Type != "system" {
		t.Fatalf("unexpected first message: %+v", rsp.Messages[0])
	}
	// 非私聊消息不携带会话字段
	if rsp.Messages[0].PeerUsername != "" || rsp.Messages[0].Direction != "" {
		t.Fatalf("system message must not carry thread fields: %+v", rsp.Messages[0])
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	id := seedMessage(t, svc, &model.InboxMessage{
		Uuid: 10, OwnerUsername: "alice", Type: message_type_enum.SYSTEM, Subject: "x",
	})

	if err := svc.MarkRead("alice", id); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	// 重复置已读是 no-op
	if err := svc.MarkRead("alice", id); err != nil {
		t.Fatalf("repeat mark read: %v", err)
	}

	rsp, err := svc.GetInboxList("alice")
	if err != nil {
		t.Fatalf("get inbox: %v", err)
	}
	if rsp.UnreadCount != 0 || !rsp.Messages[0].IsRead {
		t.Fatalf("message should be read: %+v", rsp.Messages[0])
	}
}

func TestMarkReadUnknownId(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.MarkRead("alice", "999")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", err)
	}
	// 非数字 ID 同样按不存在处理
	err = svc.MarkRead("alice", "not-a-number")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("expected CodeNotFound for malformed id, got %v", err)
	}
}

func TestArchiveHidesFromList(t *testing.T) {
	svc, _ := newTestService(t)
	id := seedMessage(t, svc, &model.InboxMessage{
		Uuid: 20, OwnerUsername: "alice", Type: message_type_enum.SYSTEM, Subject: "x",
	})

	if err := svc.Archive("alice", id); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if err := svc.Archive("alice", id); err != nil {
		t.Fatalf("repeat archive: %v", err)
	}

	rsp, err := svc.GetInboxList("alice")
	if err != nil {
		t.Fatalf("get inbox: %v", err)
	}
	if len(rsp.Messages) != 0 {
		t.Fatalf("archived message must not appear, got %d", len(rsp.Messages))
	}
}

func TestDelete(t *testing.T) {
	svc, store := newTestService(t)
	id := seedMessage(t, svc, &model.InboxMessage{
		Uuid: 30, OwnerUsername: "alice", Type: message_type_enum.SYSTEM, Subject: "x",
	})

	if err := svc.Delete("alice", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.Inbox("alice")) != 0 {
		t.Fatal("message should be gone")
	}

	// 再删同一条报 NotFound
	err := svc.Delete("alice", id)
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", err)
	}
}

func TestOwnerScoping(t *testing.T) {
	svc, store := newTestService(t)
	store.AddUser("bob")
	id := seedMessage(t, svc, &model.InboxMessage{
		Uuid: 40, OwnerUsername: "alice", Type: message_type_enum.SYSTEM, Subject: "x",
	})

	// bob 操作 alice 的消息 ID 一律 NotFound
	if err := svc.MarkRead("bob", id); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", err)
	}
	if err := svc.Delete("bob", id); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", err)
	}
}

func TestUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.GetInboxList("ghost"); errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("expected CodeUserNotExist, got %v", err)
	}
}
