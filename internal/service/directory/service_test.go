package directory

import (
	"testing"

	"eduquest_server/internal/dao/mysql/repository/repotest"
	"eduquest_server/pkg/constants"
	"eduquest_server/pkg/errorx"
)

func TestResolveStrict(t *testing.T) {
	repos, store := repotest.New()
	store.AddUser("alice")
	svc := NewDirectoryService(repos, false)

	user, err := svc.Resolve("alice")
	if err != nil {
		t.Fatalf("resolve existing: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("resolved wrong user: %q", user.Username)
	}

	// 严格模式未知用户名一律报错，不自动注册
	if _, err := svc.Resolve("ghost"); errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("expected CodeUserNotExist, got %v", err)
	}
	if _, err := repos.User.FindByUsername("ghost"); err == nil {
		t.Fatal("strict mode must not create users")
	}
}

func TestResolveAutoProvision(t *testing.T) {
	repos, _ := repotest.New()
	svc := NewDirectoryService(repos, true)

	user, err := svc.Resolve("newcomer")
	if err != nil {
		t.Fatalf("resolve with auto provision: %v", err)
	}
	// 自动注册的最小记录：默认主题、零积分
	if user.Points != 0 || user.CurrentTheme != constants.DEFAULT_THEME {
		t.Fatalf("unexpected provisioned record: points=%d theme=%q", user.Points, user.CurrentTheme)
	}

	// 再次解析命中同一条记录
	again, err := svc.Resolve("newcomer")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if again.ID != user.ID {
		t.Fatal("second resolve must hit the same record")
	}
}

func TestLookupNeverProvisions(t *testing.T) {
	repos, store := repotest.New()
	store.AddUser("alice")
	svc := NewDirectoryService(repos, true)

	if err := svc.Lookup("alice"); err != nil {
		t.Fatalf("lookup existing: %v", err)
	}
	// Lookup 针对操作目标，宽松模式也不自动注册
	if err := svc.Lookup("ghost"); errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("expected CodeUserNotExist, got %v", err)
	}
	if _, err := repos.User.FindByUsername("ghost"); err == nil {
		t.Fatal("lookup must not create users")
	}
}
