package model

// Subject 科目表 — 对应 subjects
type Subject struct {
	ID   uint   `gorm:"primaryKey"                             json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	BaseModel

	// 关联
	Sessions []Session `gorm:"foreignKey:SubjectID" json:"sessions,omitempty"`
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }
