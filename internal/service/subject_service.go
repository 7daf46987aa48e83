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

// ── 科目模块业务错误 ──

var (
	ErrSubjectNotFound = errors.New("科目不存在")
	ErrSubjectExists   = errors.New("科目名称已存在")
)

// SubjectService 科目业务接口
type SubjectService interface {
	List(ctx context.Context) ([]model.Subject, error)
	GetByID(ctx context.Context, id uint) (*model.Subject, error)
	// Create 科目名称全局唯一
	Create(ctx context.Context, req *dto.SubjectRequest) (*model.Subject, error)
	// Update 唯一性检查排除自身
	Update(ctx context.Context, id uint, req *dto.SubjectRequest) (*model.Subject, error)
	Delete(ctx context.Context, id uint) error
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService 创建 SubjectService 实例
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

func (s *subjectService) List(ctx context.Context) ([]model.Subject, error) {
	subjects, err := s.repo.Subject.List(ctx)
	if err != nil {
		s.logger.Error("列出科目失败", zap.Error(err))
		return nil, err
	}
	return subjects, nil
}

func (s *subjectService) GetByID(ctx context.Context, id uint) (*model.Subject, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return subject, nil
}

func (s *subjectService) Create(ctx context.Context, req *dto.SubjectRequest) (*model.Subject, error) {
	name := strings.TrimSpace(req.Name)

	existing, err := s.repo.Subject.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询科目失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrSubjectExists
	}

	subject := &model.Subject{Name: name}
	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubjectExists
		}
		s.logger.Error("创建科目失败", zap.Error(err))
		return nil, err
	}
	return subject, nil
}

func (s *subjectService) Update(ctx context.Context, id uint, req *dto.SubjectRequest) (*model.Subject, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name != subject.Name {
		existing, err := s.repo.Subject.GetByName(ctx, name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrSubjectExists
		}
		subject.Name = name
	}
	subject.Sessions = nil

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		s.logger.Error("更新科目失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return subject, nil
}

func (s *subjectService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Subject.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Subject.Delete(ctx, id); err != nil {
		s.logger.Error("删除科目失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}
