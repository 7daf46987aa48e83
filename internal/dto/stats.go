package dto

// ── 统计模块 DTO ──

// ClassStatsResponse 班级缺勤 / 迟到统计
type ClassStatsResponse struct {
	ClassID  uint  `json:"classId"`
	Absences int64 `json:"absences"`
	Late     int64 `json:"late"`
}

// StudentStatsResponse 学生缺勤 / 迟到统计
type StudentStatsResponse struct {
	StudentID uint  `json:"studentId"`
	Absences  int64 `json:"absences"`
	Late      int64 `json:"late"`
}
