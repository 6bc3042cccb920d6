package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/repository"
)

// ── 场地模块业务错误 ──

var (
	ErrFacilityNotFound  = errors.New("场地不存在")
	ErrFacilityNameTaken = errors.New("同项目下已存在同名场地")
)

// FacilityService 场地业务接口
type FacilityService interface {
	Create(ctx context.Context, teamID string, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error)
	List(ctx context.Context, teamID string, discipline string) ([]dto.FacilityResponse, error)
	Delete(ctx context.Context, id string) error
}

type facilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacilityService 创建 FacilityService 实例
func NewFacilityService(repo *repository.Repository, logger *zap.Logger) FacilityService {
	return &facilityService{repo: repo, logger: logger}
}

func (s *facilityService) Create(ctx context.Context, teamID string, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error) {
	name := strings.TrimSpace(req.Name)

	// 同球队同项目下场地名大小写不敏感唯一
	taken, err := s.repo.Facility.ExistsName(ctx, teamID, req.Discipline, name)
	if err != nil {
		s.logger.Error("检查场地名失败", zap.String("team_id", teamID), zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, ErrFacilityNameTaken
	}

	facility := &model.Facility{
		TeamID:     teamID,
		Name:       name,
		Discipline: req.Discipline,
	}
	if err := s.repo.Facility.Create(ctx, facility); err != nil {
		s.logger.Error("创建场地失败", zap.String("team_id", teamID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("场地创建成功", zap.String("facility_id", facility.FacilityID), zap.String("name", name))
	return toFacilityResponse(facility), nil
}

func (s *facilityService) List(ctx context.Context, teamID string, discipline string) ([]dto.FacilityResponse, error) {
	facilities, err := s.repo.Facility.ListByTeam(ctx, teamID, discipline)
	if err != nil {
		s.logger.Error("查询场地列表失败", zap.String("team_id", teamID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.FacilityResponse, 0, len(facilities))
	for i := range facilities {
		result = append(result, *toFacilityResponse(&facilities[i]))
	}
	return result, nil
}

func (s *facilityService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Facility.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacilityNotFound
		}
		s.logger.Error("查询场地失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Facility.Delete(ctx, id); err != nil {
		s.logger.Error("删除场地失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toFacilityResponse(f *model.Facility) *dto.FacilityResponse {
	return &dto.FacilityResponse{
		ID:         f.FacilityID,
		Name:       f.Name,
		Discipline: f.Discipline,
	}
}
