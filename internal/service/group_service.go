package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/repository"
)

var ErrGroupNotFound = errors.New("训练组不存在")

// GroupService 训练组查询接口
// 日程核心只消费训练组目录，组员与教练管理由外部协作方负责
type GroupService interface {
	GetByID(ctx context.Context, id string) (*dto.GroupResponse, error)
	ListBySeason(ctx context.Context, seasonID string) ([]dto.GroupResponse, error)
}

type groupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGroupService 创建 GroupService 实例
func NewGroupService(repo *repository.Repository, logger *zap.Logger) GroupService {
	return &groupService{repo: repo, logger: logger}
}

func (s *groupService) GetByID(ctx context.Context, id string) (*dto.GroupResponse, error) {
	group, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("查询训练组失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toGroupResponse(group), nil
}

func (s *groupService) ListBySeason(ctx context.Context, seasonID string) ([]dto.GroupResponse, error) {
	groups, err := s.repo.Group.ListBySeason(ctx, seasonID)
	if err != nil {
		s.logger.Error("查询训练组列表失败", zap.String("season_id", seasonID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, *toGroupResponse(&groups[i]))
	}
	return result, nil
}

func toGroupResponse(g *model.Group) *dto.GroupResponse {
	return &dto.GroupResponse{
		ID:       g.GroupID,
		SeasonID: g.SeasonID,
		Name:     g.Name,
		Category: g.Category,
	}
}
