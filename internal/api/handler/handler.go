package handler

import "venuecrew/backend/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Venue        *VenueHandler
	Staff        *StaffHandler
	Availability *AvailabilityHandler
	Shift        *ShiftHandler
	Assignment   *AssignmentHandler
	Override     *OverrideHandler
	Tips         *TipsHandler
	SystemConfig *SystemConfigHandler
	Notification *NotificationHandler
	Export       *ExportHandler
}

// NewHandler builds the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Venue:        NewVenueHandler(svc.Venue),
		Staff:        NewStaffHandler(svc.Staff),
		Availability: NewAvailabilityHandler(svc.Availability),
		Shift:        NewShiftHandler(svc.Shift),
		Assignment:   NewAssignmentHandler(svc.Assignment, svc.Validation, svc.Ranking, svc.Planner),
		Override:     NewOverrideHandler(svc.Override),
		Tips:         NewTipsHandler(svc.Tips),
		SystemConfig: NewSystemConfigHandler(svc.SystemConfig),
		Notification: NewNotificationHandler(svc.Notification),
		Export:       NewExportHandler(svc.Export),
	}
}
