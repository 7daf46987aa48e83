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

// ── 课次模块业务错误 ──

var (
	ErrSessionNotFound    = errors.New("课次不存在")
	ErrInvalidSubjectName = errors.New("invalid subjectName")
	ErrInvalidTeacherName = errors.New("invalid teacherName")
)

// Requester 发起请求的已认证身份，课次模块用于推断授课教师
type Requester struct {
	UserID uint
	Role   string
}

// SessionService 课次业务接口
type SessionService interface {
	List(ctx context.Context) ([]model.Session, error)
	GetByID(ctx context.Context, id uint) (*model.Session, error)
	// Create 教师解析优先级：显式 teacherName > 请求者本人（教师角色）> 不设置
	Create(ctx context.Context, req *dto.SessionRequest, requester Requester) (*model.Session, error)
	Update(ctx context.Context, id uint, req *dto.SessionRequest, requester Requester) (*model.Session, error)
	Delete(ctx context.Context, id uint) error
}

type sessionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSessionService 创建 SessionService 实例
func NewSessionService(repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{repo: repo, logger: logger}
}

func (s *sessionService) List(ctx context.Context) ([]model.Session, error) {
	sessions, err := s.repo.Session.List(ctx)
	if err != nil {
		s.logger.Error("列出课次失败", zap.Error(err))
		return nil, err
	}
	return sessions, nil
}

func (s *sessionService) GetByID(ctx context.Context, id uint) (*model.Session, error) {
	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("查询课次失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Create(ctx context.Context, req *dto.SessionRequest, requester Requester) (*model.Session, error) {
	refs, err := s.resolveRefs(ctx, req, requester)
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		Date:      model.Date(req.Date),
		ClassID:   refs.class.ID,
		SubjectID: refs.subject.ID,
		TeacherID: refs.teacherID,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("创建课次失败", zap.Error(err))
		return nil, err
	}

	// 重查以附带关联实体
	return s.repo.Session.GetByID(ctx, session.ID)
}

func (s *sessionService) Update(ctx context.Context, id uint, req *dto.SessionRequest, requester Requester) (*model.Session, error) {
	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("查询课次失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	refs, err := s.resolveRefs(ctx, req, requester)
	if err != nil {
		return nil, err
	}

	session.Date = model.Date(req.Date)
	session.ClassID = refs.class.ID
	session.SubjectID = refs.subject.ID
	session.TeacherID = refs.teacherID
	session.ClassEntity = nil
	session.Subject = nil
	session.Teacher = nil
	session.Attendances = nil

	if err := s.repo.Session.Update(ctx, session); err != nil {
		s.logger.Error("更新课次失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.repo.Session.GetByID(ctx, id)
}

func (s *sessionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Session.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("查询课次失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Session.Delete(ctx, id); err != nil {
		s.logger.Error("删除课次失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

type sessionRefs struct {
	class     *model.Class
	subject   *model.Subject
	teacherID *uint
}

// resolveRefs 按名称解析班级 / 科目 / 教师
func (s *sessionService) resolveRefs(ctx context.Context, req *dto.SessionRequest, requester Requester) (*sessionRefs, error) {
	class, err := s.repo.Class.GetByName(ctx, strings.TrimSpace(req.ClassName))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidClassName
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	subject, err := s.repo.Subject.GetByName(ctx, strings.TrimSpace(req.SubjectName))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSubjectName
		}
		s.logger.Error("查询科目失败", zap.Error(err))
		return nil, err
	}

	var teacherID *uint
	if name := strings.TrimSpace(req.TeacherName); name != "" {
		teacher, err := s.repo.User.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidTeacherName
			}
			s.logger.Error("查询教师失败", zap.Error(err))
			return nil, err
		}
		teacherID = &teacher.ID
	} else if requester.Role == model.RoleTeacher {
		id := requester.UserID
		teacherID = &id
	}
	// 无教师时仍允许创建，可后续指派

	return &sessionRefs{class: class, subject: subject, teacherID: teacherID}, nil
}
