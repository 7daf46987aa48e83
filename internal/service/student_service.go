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

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound   = errors.New("学生不存在")
	ErrStudentEmailInUse = errors.New("学生邮箱已被使用")
	ErrInvalidClassName  = errors.New("invalid className")
)

// StudentService 学生业务接口
type StudentService interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	Create(ctx context.Context, req *dto.StudentRequest) (*model.Student, error)
	Update(ctx context.Context, id uint, req *dto.StudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("列出学生失败", zap.Error(err))
		return nil, err
	}
	return students, nil
}

func (s *studentService) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (s *studentService) Create(ctx context.Context, req *dto.StudentRequest) (*model.Student, error) {
	class, err := s.resolveClass(ctx, req.ClassName)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	existing, err := s.repo.Student.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrStudentEmailInUse
	}

	student := &model.Student{
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		ClassID: class.ID,
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStudentEmailInUse
		}
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}

	student.ClassEntity = class
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id uint, req *dto.StudentRequest) (*model.Student, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	class, err := s.resolveClass(ctx, req.ClassName)
	if err != nil {
		return nil, err
	}

	// 唯一性检查排除自身
	email := strings.TrimSpace(req.Email)
	other, err := s.repo.Student.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, ErrStudentEmailInUse
	}

	student.Name = strings.TrimSpace(req.Name)
	student.Email = email
	student.ClassID = class.ID
	student.ClassEntity = nil
	student.Attendances = nil

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("更新学生失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	student.ClassEntity = class
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	// 该学生的点名记录由外键级联删除
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("删除学生失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *studentService) resolveClass(ctx context.Context, className string) (*model.Class, error) {
	class, err := s.repo.Class.GetByName(ctx, strings.TrimSpace(className))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidClassName
		}
		s.logger.Error("查询班级失败", zap.String("name", className), zap.Error(err))
		return nil, err
	}
	return class, nil
}
