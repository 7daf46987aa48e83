package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fouadlamrini/School-Attendance/internal/model"
)

// SessionRepository 课次数据访问接口
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	// GetByID 按 ID 查询课次，附带班级 / 科目 / 教师
	GetByID(ctx context.Context, id uint) (*model.Session, error)
	// GetByClassAndDate 点名流程按 (班级, 日期) 定位课次
	GetByClassAndDate(ctx context.Context, classID uint, date string) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	Update(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id uint) error
}

// sessionRepo SessionRepository 的 GORM 实现
type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo 创建 SessionRepository 实例
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id uint) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Preload("ClassEntity").
		Preload("Subject").
		Preload("Teacher").
		Where("id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) GetByClassAndDate(ctx context.Context, classID uint, date string) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND date = ?", classID, date).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Preload("ClassEntity").
		Preload("Subject").
		Preload("Teacher").
		Order("date").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Session{}, id).Error
}
