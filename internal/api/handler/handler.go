package handler

import "github.com/subaru7958/sports-team-manager/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth     *AuthHandler
	Season   *SeasonHandler
	Facility *FacilityHandler
	Group    *GroupHandler
	Event    *EventHandler
	Calendar *CalendarHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		Season:   NewSeasonHandler(svc.Season),
		Facility: NewFacilityHandler(svc.Facility),
		Group:    NewGroupHandler(svc.Group),
		Event:    NewEventHandler(svc.Event),
		Calendar: NewCalendarHandler(svc.Calendar),
		Export:   NewExportHandler(svc.Export),
	}
}
