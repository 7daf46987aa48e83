package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fouadlamrini/School-Attendance/internal/dto"
	"github.com/fouadlamrini/School-Attendance/internal/model"
	"github.com/fouadlamrini/School-Attendance/internal/repository"
)

// ── 班级模块业务错误 ──

var ErrClassNotFound = errors.New("班级不存在")

// ClassService 班级业务接口
type ClassService interface {
	// List 返回所有班级及其学生与课次
	List(ctx context.Context) ([]model.Class, error)
	GetByID(ctx context.Context, id uint) (*model.Class, error)
	Create(ctx context.Context, req *dto.ClassRequest) (*model.Class, error)
	Update(ctx context.Context, id uint, req *dto.ClassRequest) (*model.Class, error)
	Delete(ctx context.Context, id uint) error
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService 创建 ClassService 实例
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) List(ctx context.Context) ([]model.Class, error) {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		s.logger.Error("列出班级失败", zap.Error(err))
		return nil, err
	}
	return classes, nil
}

func (s *classService) GetByID(ctx context.Context, id uint) (*model.Class, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return class, nil
}

func (s *classService) Create(ctx context.Context, req *dto.ClassRequest) (*model.Class, error) {
	class := &model.Class{Name: strings.TrimSpace(req.Name)}
	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("创建班级失败", zap.Error(err))
		return nil, err
	}
	return class, nil
}

func (s *classService) Update(ctx context.Context, id uint, req *dto.ClassRequest) (*model.Class, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	class.Name = strings.TrimSpace(req.Name)
	// 避免 Save 级联更新已预加载的学生 / 课次
	class.Students = nil
	class.Sessions = nil

	if err := s.repo.Class.Update(ctx, class); err != nil {
		s.logger.Error("更新班级失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return class, nil
}

func (s *classService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Class.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	// 依赖行（学生、课次、点名记录）由外键级联策略处理
	if err := s.repo.Class.Delete(ctx, id); err != nil {
		s.logger.Error("删除班级失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
