package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
)

func setupSystemConfigService(repos *testStaffingRepos) SystemConfigService {
	return NewSystemConfigService(repos.toRepository(), defaultStaffing(), zap.NewNop())
}

func TestSystemConfigGetFallsBackToDefaults(t *testing.T) {
	repos := newTestStaffingRepos()
	svc := setupSystemConfigService(repos)

	cfg, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if cfg.EquityWindow != model.EquityWindowMonth || cfg.RequireAvailability {
		t.Fatalf("expected deployment defaults, got %+v", cfg)
	}
}

func TestSystemConfigUpdate(t *testing.T) {
	repos := newTestStaffingRepos()
	repos.systemConfig.cfg = &model.SystemConfig{
		Singleton:    true,
		EquityWindow: model.EquityWindowMonth,
	}
	svc := setupSystemConfigService(repos)

	window := model.EquityWindowWeek
	require := true
	cfg, err := svc.Update(context.Background(), &dto.UpdateSystemConfigRequest{
		EquityWindow:        &window,
		RequireAvailability: &require,
	}, "gm-1")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if cfg.EquityWindow != model.EquityWindowWeek || !cfg.RequireAvailability || cfg.UpdatedBy != "gm-1" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if repos.systemConfig.cfg.EquityWindow != model.EquityWindowWeek {
		t.Fatal("expected the stored row updated")
	}
}
