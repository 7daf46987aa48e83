package model

// Class 班级表 — 对应 classes
type Class struct {
	ID   uint   `gorm:"primaryKey"                 json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	BaseModel

	// 关联
	Students []Student `gorm:"foreignKey:ClassID" json:"students,omitempty"`
	Sessions []Session `gorm:"foreignKey:ClassID" json:"sessions,omitempty"`
}

// TableName 指定表名
func (Class) TableName() string { return "classes" }
