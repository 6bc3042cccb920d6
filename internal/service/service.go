package service

import (
	"go.uber.org/zap"

	"github.com/subaru7958/sports-team-manager/config"
	"github.com/subaru7958/sports-team-manager/internal/repository"
	"github.com/subaru7958/sports-team-manager/pkg/jwt"
	"github.com/subaru7958/sports-team-manager/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth     AuthService
	Season   SeasonService
	Facility FacilityService
	Group    GroupService
	Event    EventService
	Calendar CalendarService
	Export   ExportService
}

// NewService 创建 Service 聚合
// rdb 允许为 nil（Redis 不可用时降级运行）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(&cfg.Auth, repo, jwtMgr, rdb, logger),
		Season:   NewSeasonService(repo, logger),
		Facility: NewFacilityService(repo, logger),
		Group:    NewGroupService(repo, logger),
		Event:    NewEventService(repo, logger),
		Calendar: NewCalendarService(&cfg.Calendar, repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
