package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"venuecrew/backend/config"
	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// SystemConfigService reads and updates the engine-wide settings row.
// When the row is missing (fresh database before the seed migration ran)
// reads fall back to the deployment defaults.
type SystemConfigService interface {
	Get(ctx context.Context) (*model.SystemConfig, error)
	Update(ctx context.Context, req *dto.UpdateSystemConfigRequest, actorID string) (*model.SystemConfig, error)
}

type systemConfigService struct {
	repo     *repository.Repository
	staffing config.StaffingConfig
	logger   *zap.Logger
}

// NewSystemConfigService creates a SystemConfigService instance.
func NewSystemConfigService(repo *repository.Repository, staffing config.StaffingConfig, logger *zap.Logger) SystemConfigService {
	return &systemConfigService{repo: repo, staffing: staffing, logger: logger}
}

func (s *systemConfigService) Get(ctx context.Context) (*model.SystemConfig, error) {
	cfg, err := s.repo.SystemConfig.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.SystemConfig{
				EquityWindow:        s.staffing.EquityWindow,
				RequireAvailability: s.staffing.RequireAvailability,
			}, nil
		}
		s.logger.Error("load system config failed", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}

func (s *systemConfigService) Update(ctx context.Context, req *dto.UpdateSystemConfigRequest, actorID string) (*model.SystemConfig, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.EquityWindow != nil {
		cfg.EquityWindow = *req.EquityWindow
	}
	if req.RequireAvailability != nil {
		cfg.RequireAvailability = *req.RequireAvailability
	}
	cfg.UpdatedBy = actorID

	if err := s.repo.SystemConfig.Update(ctx, cfg); err != nil {
		s.logger.Error("update system config failed", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}
