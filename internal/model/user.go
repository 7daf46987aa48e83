package model

// User 用户表 — 对应 users
// 密码散列永不序列化
type User struct {
	ID           uint   `gorm:"primaryKey"                                 json:"id"`
	Name         string `gorm:"type:varchar(100);not null"                 json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                 json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	BaseModel

	// 关联：该用户（教师角色）授课的课次
	Sessions []Session `gorm:"foreignKey:TeacherID" json:"sessions,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
