package conversation

import (
	"testing"

	"eduquest_server/internal/config"
	"eduquest_server/internal/dao/mysql/repository/repotest"
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/infrastructure/mq"
	"eduquest_server/internal/model"
	"eduquest_server/internal/service/directory"
	"eduquest_server/pkg/enum/message/message_direction_enum"
	"eduquest_server/pkg/enum/message/message_type_enum"
	"eduquest_server/pkg/errorx"
)

func newTestService(t *testing.T) (*conversationService, *repotest.Store) {
	t.Helper()
	repos, store := repotest.New()
	store.AddUser("alice")
	store.AddUser("bob")
	dir := directory.NewDirectoryService(repos, false)
	producer := mq.NewProducer(&config.KafkaConfig{})
	return NewConversationService(repos, dir, producer), store
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

func TestSendMessageCreatesBothCopies(t *testing.T) {
	svc, store := newTestService(t)
	store.AddFriendship("alice", "bob")

	if err := svc.SendMessage("alice", "bob", request.SendMessageRequest{Message: "hi bob"}); err != nil {
		t.Fatalf("send message: %v", err)
	}

	aliceInbox := store.Inbox("alice")
	bobInbox := store.Inbox("bob")
	if len(aliceInbox) != 1 || len(bobInbox) != 1 {
		t.Fatalf("expected one copy each, got alice=%d bob=%d", len(aliceInbox), len(bobInbox))
	}

	out, in := aliceInbox[0], bobInbox[0]
	// 发送方副本已读，接收方副本未读
	if !out.IsRead {
		t.Fatal("sender copy should be read")
	}
	if in.IsRead {
		t.Fatal("recipient copy should be unread")
	}
	if out.Direction != message_direction_enum.OUTGOING || in.Direction != message_direction_enum.INCOMING {
		t.Fatalf("unexpected directions: out=%d in=%d", out.Direction, in.Direction)
	}
	// 两份副本共享内容、时间戳和会话交换 id
	if out.Content != "hi bob" || in.Content != "hi bob" {
		t.Fatalf("content mismatch: %q / %q", out.Content, in.Content)
	}
	if !out.CreatedAt.Equal(in.CreatedAt) {
		t.Fatal("both copies must share one timestamp")
	}
	if out.ExchangeId == "" || out.ExchangeId != in.ExchangeId {
		t.Fatalf("exchange ids must match: %q / %q", out.ExchangeId, in.ExchangeId)
	}
	if out.Uuid == in.Uuid {
		t.Fatal("copies must have distinct message ids")
	}
	if out.Type != message_type_enum.DIRECT_MESSAGE || in.Type != message_type_enum.DIRECT_MESSAGE {
		t.Fatalf("unexpected types: %d / %d", out.Type, in.Type)
	}
	if out.PeerUsername != "bob" || in.PeerUsername != "alice" {
		t.Fatalf("unexpected peers: %q / %q", out.PeerUsername, in.PeerUsername)
	}
}

func TestSendMessageRequiresFriendship(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.SendMessage("alice", "bob", request.SendMessageRequest{Message: "hi"})
	assertCode(t, err, errorx.CodeInvalidParam)
}

func TestSendMessageBlankContent(t *testing.T) {
	svc, store := newTestService(t)
	store.AddFriendship("alice", "bob")
	for _, msg := range []string{"", "   ", "\n\t"} {
		err := svc.SendMessage("alice", "bob", request.SendMessageRequest{Message: msg})
		assertCode(t, err, errorx.CodeInvalidParam)
	}
}

func TestSendMessageBlocked(t *testing.T) {
	svc, store := newTestService(t)
	store.AddFriendship("alice", "bob")
	if err := svc.repos.Block.Create(&model.BlockedUser{OwnerUsername: "bob", BlockedUsername: "alice"}); err != nil {
		t.Fatalf("seed block: %v", err)
	}

	err := svc.SendMessage("alice", "bob", request.SendMessageRequest{Message: "hi"})
	assertCode(t, err, errorx.CodeForbidden)
}

func TestSendMessageUnknownPeer(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.SendMessage("alice", "ghost", request.SendMessageRequest{Message: "hi"})
	assertCode(t, err, errorx.CodeUserNotExist)
}

func TestGetThreadOrdering(t *testing.T) {
	svc, store := newTestService(t)
	store.AddUser("carol")
	store.AddFriendship("alice", "bob")
	store.AddFriendship("alice", "carol")

	if err := svc.SendMessage("alice", "bob", request.SendMessageRequest{Message: "first"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := svc.SendMessage("bob", "alice", request.SendMessageRequest{Message: "second"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	// 与 carol 的消息不得混入 alice/bob 会话
	if err := svc.SendMessage("alice", "carol", request.SendMessageRequest{Message: "other"}); err != nil {
		t.Fatalf("send: %v", err)
	}

	rsp, err := svc.GetThread("alice", "bob")
	if err != nil {
		t.Fatalf("get thread: %v", err)
	}
	if len(rsp.Messages) != 2 {
		t.Fatalf("expected 2 messages in thread, got %d", len(rsp.Messages))
	}
	if rsp.Messages[0].Content != "first" || rsp.Messages[1].Content != "second" {
		t.Fatalf("unexpected order: %+v", rsp.Messages)
	}
	if rsp.Messages[0].Direction != "outgoing" || rsp.Messages[1].Direction != "incoming" {
		t.Fatalf("unexpected directions: %+v", rsp.Messages)
	}
}

func TestGetThreadUnknownPeer(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetThread("alice", "ghost")
	assertCode(t, err, errorx.CodeUserNotExist)
}
