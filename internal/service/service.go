package service

import (
	"go.uber.org/zap"

	"venuecrew/backend/config"
	"venuecrew/backend/internal/repository"
)

// Service aggregates all business services.
type Service struct {
	Venue        VenueService
	Staff        StaffService
	Availability AvailabilityService
	Shift        ShiftService
	Validation   ValidationService
	Ranking      RankingService
	Planner      PlannerService
	Assignment   AssignmentService
	Override     OverrideService
	Tips         TipsService
	SystemConfig SystemConfigService
	Notification NotificationService
	Export       ExportService
}

// NewService builds the service aggregate.
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	notification := NewNotificationService(repo, logger)

	return &Service{
		Venue:        NewVenueService(repo, logger),
		Staff:        NewStaffService(repo, logger),
		Availability: NewAvailabilityService(repo, logger),
		Shift:        NewShiftService(repo, notification, logger),
		Validation:   NewValidationService(repo, cfg.Staffing, logger),
		Ranking:      NewRankingService(repo, cfg.Staffing, logger),
		Planner:      NewPlannerService(repo, cfg.Staffing, logger),
		Assignment:   NewAssignmentService(repo, cfg.Staffing, notification, logger),
		Override:     NewOverrideService(repo, notification, logger),
		Tips:         NewTipsService(repo, notification, logger),
		SystemConfig: NewSystemConfigService(repo, cfg.Staffing, logger),
		Notification: notification,
		Export:       NewExportService(repo, logger),
	}
}
