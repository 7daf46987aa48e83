package model

// Attendance 点名记录表 — 对应 attendances
// 每个 (session_id, student_id) 组合至多一条记录，
// 由数据库 UNIQUE 约束保证（见 migrations/000001_init_schema.up.sql）
type Attendance struct {
	ID        uint   `gorm:"primaryKey"                                                  json:"id"`
	Status    string `gorm:"type:varchar(20);not null"                                   json:"status"`
	SessionID uint   `gorm:"not null;uniqueIndex:uq_attendances_session_student"         json:"-"`
	StudentID uint   `gorm:"not null;uniqueIndex:uq_attendances_session_student"         json:"-"`
	BaseModel

	// 关联
	Session *Session `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }
