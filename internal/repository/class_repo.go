package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fouadlamrini/School-Attendance/internal/model"
)

// ClassRepository 班级数据访问接口
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	// GetByID 按 ID 查询班级，附带学生与课次
	GetByID(ctx context.Context, id uint) (*model.Class, error)
	GetByName(ctx context.Context, name string) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id uint) error
}

// classRepo ClassRepository 的 GORM 实现
type classRepo struct {
	db *gorm.DB
}

// NewClassRepo 创建 ClassRepository 实例
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, id uint) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Preload("Students").
		Preload("Sessions").
		Where("id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) GetByName(ctx context.Context, name string) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) List(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).
		Preload("Students").
		Preload("Sessions").
		Order("id").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepo) Update(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Class{}, id).Error
}
