package economy

import (
	"testing"

	"eduquest_server/internal/dao/mysql/repository/repotest"
	"eduquest_server/internal/dto/request"
	"eduquest_server/internal/service/directory"
	"eduquest_server/pkg/constants"
	"eduquest_server/pkg/errorx"
)

func newTestService(t *testing.T) (*economyService, *repotest.Store) {
	t.Helper()
	repos, store := repotest.New()
	store.AddUser("alice")
	dir := directory.NewDirectoryService(repos, false)
	return NewEconomyService(repos, dir), store
}

func points(v float64) request.UpdatePointsRequest {
	return request.UpdatePointsRequest{Points: &v}
}

func TestUpdatePoints(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		in   float64
		want int64
	}{
		{100, 100},
		{99.9, 99},  // 截断而非四舍五入
		{-0.5, 0},   // 负数钳制到零
		{-1000, 0},
		{0, 0},
	}
	for _, tc := range cases {
		rsp, err := svc.UpdatePoints("alice", points(tc.in))
		if err != nil {
			t.Fatalf("update points %v: %v", tc.in, err)
		}
		if rsp.Points != tc.want {
			t.Fatalf("update points %v = %d, want %d", tc.in, rsp.Points, tc.want)
		}
		got, err := svc.GetPoints("alice")
		if err != nil {
			t.Fatalf("get points: %v", err)
		}
		if got.Points != tc.want {
			t.Fatalf("stored points = %d, want %d", got.Points, tc.want)
		}
	}
}

func TestThemeLifecycle(t *testing.T) {
	svc, _ := newTestService(t)

	// 默认主题
	theme, err := svc.GetTheme("alice")
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	if theme.Theme != constants.DEFAULT_THEME {
		t.Fatalf("default theme = %q, want %q", theme.Theme, constants.DEFAULT_THEME)
	}

	// 设置即拥有
	if _, err := svc.UpdateTheme("alice", request.UpdateThemeRequest{Theme: "ocean"}); err != nil {
		t.Fatalf("update theme: %v", err)
	}
	theme, err = svc.GetTheme("alice")
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	if theme.Theme != "ocean" {
		t.Fatalf("theme = %q, want ocean", theme.Theme)
	}

	owned, err := svc.GetOwnedThemes("alice")
	if err != nil {
		t.Fatalf("get owned themes: %v", err)
	}
	// 默认主题始终在列，且排在首位
	if len(owned.Themes) != 2 || owned.Themes[0] != constants.DEFAULT_THEME || owned.Themes[1] != "ocean" {
		t.Fatalf("unexpected owned themes: %v", owned.Themes)
	}
}

func TestPurchaseThemeIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	for i := 0; i < 2; i++ {
		if err := svc.PurchaseTheme("alice", request.PurchaseThemeRequest{Theme: "forest"}); err != nil {
			t.Fatalf("purchase theme: %v", err)
		}
	}
	// 重复购买默认主题也不产生重复项
	if err := svc.PurchaseTheme("alice", request.PurchaseThemeRequest{Theme: constants.DEFAULT_THEME}); err != nil {
		t.Fatalf("purchase default theme: %v", err)
	}

	owned, err := svc.GetOwnedThemes("alice")
	if err != nil {
		t.Fatalf("get owned themes: %v", err)
	}
	if len(owned.Themes) != 2 {
		t.Fatalf("expected [space forest], got %v", owned.Themes)
	}
}

func TestPowerupCounts(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		if err := svc.PurchasePowerup("alice", request.PurchasePowerupRequest{PowerupId: "freeze"}); err != nil {
			t.Fatalf("purchase powerup: %v", err)
		}
	}
	if err := svc.PurchasePowerup("alice", request.PurchasePowerupRequest{PowerupId: "double"}); err != nil {
		t.Fatalf("purchase powerup: %v", err)
	}

	rsp, err := svc.GetPowerups("alice")
	if err != nil {
		t.Fatalf("get powerups: %v", err)
	}
	if rsp.Powerups["freeze"] != 3 || rsp.Powerups["double"] != 1 {
		t.Fatalf("unexpected counts: %v", rsp.Powerups)
	}

	if err := svc.UsePowerup("alice", request.UsePowerupRequest{PowerupId: "freeze"}); err != nil {
		t.Fatalf("use powerup: %v", err)
	}
	rsp, _ = svc.GetPowerups("alice")
	if rsp.Powerups["freeze"] != 2 {
		t.Fatalf("count after use = %d, want 2", rsp.Powerups["freeze"])
	}
}

func TestUsePowerupAtZero(t *testing.T) {
	svc, _ := newTestService(t)

	// 从未拥有过
	err := svc.UsePowerup("alice", request.UsePowerupRequest{PowerupId: "freeze"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("expected CodeInvalidParam, got %v", err)
	}

	// 用到耗尽后再用同样报错，计数不会变负
	if err := svc.PurchasePowerup("alice", request.PurchasePowerupRequest{PowerupId: "freeze"}); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if err := svc.UsePowerup("alice", request.UsePowerupRequest{PowerupId: "freeze"}); err != nil {
		t.Fatalf("use: %v", err)
	}
	err = svc.UsePowerup("alice", request.UsePowerupRequest{PowerupId: "freeze"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("expected CodeInvalidParam after depletion, got %v", err)
	}

	// 耗尽的道具从计数表中消失
	rsp, err := svc.GetPowerups("alice")
	if err != nil {
		t.Fatalf("get powerups: %v", err)
	}
	if _, ok := rsp.Powerups["freeze"]; ok {
		t.Fatalf("depleted powerup should not be listed: %v", rsp.Powerups)
	}
}

func TestImportedSets(t *testing.T) {
	svc, _ := newTestService(t)

	rsp, err := svc.GetImportedSets("alice")
	if err != nil {
		t.Fatalf("get sets: %v", err)
	}
	// 空列表序列化为 []，不是 null
	if rsp.Sets == nil || len(rsp.Sets) != 0 {
		t.Fatalf("expected empty slice, got %v", rsp.Sets)
	}

	// 重复导入幂等
	for i := 0; i < 2; i++ {
		if err := svc.ImportSet("alice", request.ImportSetRequest{SetName: "biology-101"}); err != nil {
			t.Fatalf("import set: %v", err)
		}
	}
	if err := svc.ImportSet("alice", request.ImportSetRequest{SetName: "latin-verbs"}); err != nil {
		t.Fatalf("import set: %v", err)
	}

	rsp, _ = svc.GetImportedSets("alice")
	if len(rsp.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %v", rsp.Sets)
	}

	// 移除幂等，目标不存在也不报错
	if err := svc.RemoveImportedSet("alice", "biology-101"); err != nil {
		t.Fatalf("remove set: %v", err)
	}
	if err := svc.RemoveImportedSet("alice", "biology-101"); err != nil {
		t.Fatalf("repeat remove: %v", err)
	}

	rsp, _ = svc.GetImportedSets("alice")
	if len(rsp.Sets) != 1 || rsp.Sets[0] != "latin-verbs" {
		t.Fatalf("unexpected sets: %v", rsp.Sets)
	}
}

func TestUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.GetPoints("ghost"); errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("expected CodeUserNotExist, got %v", err)
	}
}
