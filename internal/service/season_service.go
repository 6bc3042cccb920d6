package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/repository"
)

// ── 赛季模块业务错误 ──

var (
	ErrSeasonNotFound    = errors.New("赛季不存在")
	ErrSeasonDateInvalid = errors.New("日期格式无效")
	ErrSeasonDateOrder   = errors.New("结束日期必须不早于开始日期")
)

// SeasonService 赛季业务接口
type SeasonService interface {
	Create(ctx context.Context, teamID string, req *dto.CreateSeasonRequest) (*dto.SeasonResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SeasonResponse, error)
	List(ctx context.Context, teamID string) ([]dto.SeasonResponse, error)
	Delete(ctx context.Context, id string) error
}

type seasonService struct {
	repo   *repository.Repository
	logger *zap.Logger

	nowFn func() time.Time
}

// NewSeasonService 创建 SeasonService 实例
func NewSeasonService(repo *repository.Repository, logger *zap.Logger) SeasonService {
	return &seasonService{repo: repo, logger: logger, nowFn: time.Now}
}

func (s *seasonService) Create(ctx context.Context, teamID string, req *dto.CreateSeasonRequest) (*dto.SeasonResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrSeasonDateInvalid
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrSeasonDateInvalid
	}
	// 单日赛季合法（start_date == end_date）
	if endDate.Before(startDate) {
		return nil, ErrSeasonDateOrder
	}

	season := &model.Season{
		TeamID:      teamID,
		Name:        req.Name,
		Discipline:  req.Discipline,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      model.SeasonStatusUpcoming,
	}

	if err := s.repo.Season.Create(ctx, season); err != nil {
		s.logger.Error("创建赛季失败", zap.String("team_id", teamID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("赛季创建成功", zap.String("season_id", season.SeasonID), zap.String("name", season.Name))
	return s.toResponse(season), nil
}

func (s *seasonService) GetByID(ctx context.Context, id string) (*dto.SeasonResponse, error) {
	season, err := s.repo.Season.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		s.logger.Error("查询赛季失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toResponse(season), nil
}

func (s *seasonService) List(ctx context.Context, teamID string) ([]dto.SeasonResponse, error) {
	seasons, err := s.repo.Season.ListByTeam(ctx, teamID)
	if err != nil {
		s.logger.Error("查询赛季列表失败", zap.String("team_id", teamID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SeasonResponse, 0, len(seasons))
	for i := range seasons {
		result = append(result, *s.toResponse(&seasons[i]))
	}
	return result, nil
}

func (s *seasonService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Season.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSeasonNotFound
		}
		s.logger.Error("查询赛季失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Season.Delete(ctx, id); err != nil {
		s.logger.Error("删除赛季失败", zap.String("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("赛季删除成功", zap.String("season_id", id))
	return nil
}

// toResponse 响应中的 status 为按当前日期推导的展示状态，不回写持久化字段
func (s *seasonService) toResponse(season *model.Season) *dto.SeasonResponse {
	return &dto.SeasonResponse{
		ID:          season.SeasonID,
		Name:        season.Name,
		Discipline:  season.Discipline,
		Description: season.Description,
		StartDate:   season.StartDate.Format("2006-01-02"),
		EndDate:     season.EndDate.Format("2006-01-02"),
		Status:      season.DisplayStatus(s.nowFn()),
		CreatedAt:   season.CreatedAt.Format(time.RFC3339),
	}
}
