// Package api_test 提供贯穿 HTTP 层的冒烟测试
// Repository 换成内存实现，路由、参数绑定、错误映射走真实代码
package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"eduquest_server/internal/config"
	"eduquest_server/internal/dao/mysql/repository/repotest"
	"eduquest_server/internal/handler"
	"eduquest_server/internal/infrastructure/mq"
	"eduquest_server/internal/router"
	"eduquest_server/internal/service"
	"eduquest_server/pkg/util/jwt"
)

// newTestServer 构建完整路由的测试服务器
func newTestServer(t *testing.T) (*gin.Engine, *repotest.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := handler.InitTrans(); err != nil {
		t.Fatalf("init validator translator: %v", err)
	}
	jwt.Init("test-secret", 60, 24)

	repos, store := repotest.New()
	producer := mq.NewProducer(&config.KafkaConfig{})
	service.Svc = service.NewServices(repos, producer, false, 24*time.Hour)

	engine := gin.New()
	router.RegisterRoutes(engine)
	return engine, store
}

// doJSON 发起一次 JSON 请求并返回响应记录
func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// decode 解析响应体
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	engine, _ := newTestServer(t)
	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health = %d, want 200", w.Code)
	}
	var rsp struct {
		Ok     bool    `json:"ok"`
		Uptime float64 `json:"uptime"`
	}
	decode(t, w, &rsp)
	if !rsp.Ok || rsp.Uptime < 0 {
		t.Fatalf("unexpected health respond: %+v", rsp)
	}
}

func TestFriendshipFlow(t *testing.T) {
	engine, store := newTestServer(t)
	store.AddUser("alice")
	store.AddUser("bob")

	// alice -> bob 发申请
	w := doJSON(t, engine, http.MethodPost, "/users/alice/friend-request",
		gin.H{"toUsername": "bob"})
	if w.Code != http.StatusOK {
		t.Fatalf("send request = %d, body %s", w.Code, w.Body.String())
	}

	// 重复申请 409
	w = doJSON(t, engine, http.MethodPost, "/users/alice/friend-request",
		gin.H{"toUsername": "bob"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate request = %d, want 409", w.Code)
	}

	// bob 的申请列表里能看到
	w = doJSON(t, engine, http.MethodGet, "/users/bob/friend-requests", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("request list = %d", w.Code)
	}
	var reqList struct {
		Requests []struct {
			FromUsername string `json:"fromUsername"`
			Status       string `json:"status"`
		} `json:"requests"`
	}
	decode(t, w, &reqList)
	if len(reqList.Requests) != 1 || reqList.Requests[0].FromUsername != "alice" || reqList.Requests[0].Status != "pending" {
		t.Fatalf("unexpected request list: %+v", reqList)
	}

	// bob 接受
	w = doJSON(t, engine, http.MethodPost, "/users/bob/friend-request/accept",
		gin.H{"fromUsername": "alice"})
	if w.Code != http.StatusOK {
		t.Fatalf("accept = %d, body %s", w.Code, w.Body.String())
	}

	// 双方好友列表对称
	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		w = doJSON(t, engine, http.MethodGet, "/users/"+pair[0]+"/friends", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("friends of %s = %d", pair[0], w.Code)
		}
		var friends struct {
			Friends []string `json:"friends"`
		}
		decode(t, w, &friends)
		if len(friends.Friends) != 1 || friends.Friends[0] != pair[1] {
			t.Fatalf("friends of %s = %v, want [%s]", pair[0], friends.Friends, pair[1])
		}
	}
}

func TestConversationFlow(t *testing.T) {
	engine, store := newTestServer(t)
	store.AddUser("alice")
	store.AddUser("bob")

	// 还不是好友，发私信 400
	w := doJSON(t, engine, http.MethodPost, "/users/alice/conversations/bob",
		gin.H{"message": "hi"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("message before friendship = %d, want 400", w.Code)
	}

	store.AddFriendship("alice", "bob")

	w = doJSON(t, engine, http.MethodPost, "/users/alice/conversations/bob",
		gin.H{"message": "hi bob"})
	if w.Code != http.StatusOK {
		t.Fatalf("send message = %d, body %s", w.Code, w.Body.String())
	}

	// 双方会话视图各有一条，方向相反
	var thread struct {
		Messages []struct {
			Content   string `json:"content"`
			Direction string `json:"direction"`
			IsRead    bool   `json:"isRead"`
		} `json:"messages"`
	}
	w = doJSON(t, engine, http.MethodGet, "/users/alice/conversations/bob", nil)
	decode(t, w, &thread)
	if len(thread.Messages) != 1 || thread.Messages[0].Direction != "outgoing" || !thread.Messages[0].IsRead {
		t.Fatalf("unexpected sender thread: %+v", thread)
	}
	w = doJSON(t, engine, http.MethodGet, "/users/bob/conversations/alice", nil)
	decode(t, w, &thread)
	if len(thread.Messages) != 1 || thread.Messages[0].Direction != "incoming" || thread.Messages[0].IsRead {
		t.Fatalf("unexpected recipient thread: %+v", thread)
	}

	// bob 的收件箱未读数为 1
	var inbox struct {
		Messages []struct {
			Id string `json:"id"`
		} `json:"messages"`
		UnreadCount int `json:"unreadCount"`
	}
	w = doJSON(t, engine, http.MethodGet, "/users/bob/inbox", nil)
	decode(t, w, &inbox)
	if inbox.UnreadCount != 1 || len(inbox.Messages) != 1 {
		t.Fatalf("unexpected inbox: %+v", inbox)
	}

	// 置已读后未读数归零
	w = doJSON(t, engine, http.MethodPut, "/users/bob/inbox/"+inbox.Messages[0].Id+"/read", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("mark read = %d", w.Code)
	}
	w = doJSON(t, engine, http.MethodGet, "/users/bob/inbox", nil)
	decode(t, w, &inbox)
	if inbox.UnreadCount != 0 {
		t.Fatalf("unread after read = %d, want 0", inbox.UnreadCount)
	}

	// 删除不存在的消息 404
	w = doJSON(t, engine, http.MethodDelete, "/users/bob/inbox/999999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing = %d, want 404", w.Code)
	}
}

func TestBlockedSendReturns403(t *testing.T) {
	engine, store := newTestServer(t)
	store.AddUser("alice")
	store.AddUser("bob")
	store.AddFriendship("alice", "bob")

	w := doJSON(t, engine, http.MethodPost, "/users/bob/block",
		gin.H{"blockUsername": "alice"})
	if w.Code != http.StatusOK {
		t.Fatalf("block = %d, body %s", w.Code, w.Body.String())
	}

	// 拉黑清掉了好友关系，且再次发申请被禁止
	w = doJSON(t, engine, http.MethodPost, "/users/alice/friend-request",
		gin.H{"toUsername": "bob"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("request while blocked = %d, want 403", w.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/auth/register",
		gin.H{"username": "alice", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("register = %d, body %s", w.Code, w.Body.String())
	}

	// 重名 409
	w = doJSON(t, engine, http.MethodPost, "/auth/register",
		gin.H{"username": "alice", "password": "secret123"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register = %d, want 409", w.Code)
	}

	// 密码太短被 validator 拦在 400
	w = doJSON(t, engine, http.MethodPost, "/auth/register",
		gin.H{"username": "bob", "password": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password = %d, want 400", w.Code)
	}

	w = doJSON(t, engine, http.MethodPost, "/auth/login",
		gin.H{"username": "alice", "password": "secret123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d, body %s", w.Code, w.Body.String())
	}
	var login struct {
		Ok          bool   `json:"ok"`
		AccessToken string `json:"accessToken"`
	}
	decode(t, w, &login)
	if !login.Ok || login.AccessToken == "" {
		t.Fatalf("unexpected login respond: %+v", login)
	}

	// 密码错误 401
	w = doJSON(t, engine, http.MethodPost, "/auth/login",
		gin.H{"username": "alice", "password": "wrongpass"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password = %d, want 401", w.Code)
	}
}

func TestEconomyEndpoints(t *testing.T) {
	engine, store := newTestServer(t)
	store.AddUser("alice")

	// 积分小数截断
	w := doJSON(t, engine, http.MethodPut, "/users/alice/points", gin.H{"points": 41.9})
	if w.Code != http.StatusOK {
		t.Fatalf("update points = %d, body %s", w.Code, w.Body.String())
	}
	var pts struct {
		Points int64 `json:"points"`
	}
	decode(t, w, &pts)
	if pts.Points != 41 {
		t.Fatalf("points = %d, want 41", pts.Points)
	}

	// 道具购买与使用
	w = doJSON(t, engine, http.MethodPost, "/users/alice/powerups/purchase",
		gin.H{"powerupId": "freeze"})
	if w.Code != http.StatusOK {
		t.Fatalf("purchase powerup = %d", w.Code)
	}
	w = doJSON(t, engine, http.MethodPost, "/users/alice/powerups/use",
		gin.H{"powerupId": "freeze"})
	if w.Code != http.StatusOK {
		t.Fatalf("use powerup = %d", w.Code)
	}
	// 用光之后 400
	w = doJSON(t, engine, http.MethodPost, "/users/alice/powerups/use",
		gin.H{"powerupId": "freeze"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("use depleted powerup = %d, want 400", w.Code)
	}

	// 学习集增删
	w = doJSON(t, engine, http.MethodPost, "/users/alice/imported-sets",
		gin.H{"setName": "biology-101"})
	if w.Code != http.StatusOK {
		t.Fatalf("import set = %d", w.Code)
	}
	w = doJSON(t, engine, http.MethodDelete, "/users/alice/imported-sets/biology-101", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove set = %d", w.Code)
	}

	// 未知用户 404
	w = doJSON(t, engine, http.MethodGet, "/users/ghost/points", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown user = %d, want 404", w.Code)
	}
}
