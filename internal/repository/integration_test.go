//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fouadlamrini/School-Attendance/internal/model"
	"github.com/fouadlamrini/School-Attendance/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var (
	testDB   *gorm.DB
	testRepo *repository.Repository
)

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=attendance password=attendance_password dbname=attendance_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.User{},
		&model.Class{},
		&model.Subject{},
		&model.Student{},
		&model.Session{},
		&model.Attendance{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	testRepo = repository.NewRepository(testDB)

	code := m.Run()
	os.Exit(code)
}

// setupTestData 创建基础测试数据并返回清理函数
func setupTestData(t *testing.T) (class *model.Class, subject *model.Subject, student *model.Student, session *model.Session, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	nano := time.Now().UnixNano()

	class = &model.Class{Name: fmt.Sprintf("测试班级-%d", nano)}
	if err := testRepo.Class.Create(ctx, class); err != nil {
		t.Fatalf("创建班级失败: %v", err)
	}

	subject = &model.Subject{Name: fmt.Sprintf("测试科目-%d", nano)}
	if err := testRepo.Subject.Create(ctx, subject); err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}

	student = &model.Student{
		Name:    "测试学生",
		Email:   fmt.Sprintf("student%d@test.local", nano),
		ClassID: class.ID,
	}
	if err := testRepo.Student.Create(ctx, student); err != nil {
		t.Fatalf("创建学生失败: %v", err)
	}

	session = &model.Session{
		Date:      "2026-03-02",
		ClassID:   class.ID,
		SubjectID: subject.ID,
	}
	if err := testRepo.Session.Create(ctx, session); err != nil {
		t.Fatalf("创建课次失败: %v", err)
	}

	cleanup = func() {
		testDB.Where("session_id = ?", session.ID).Delete(&model.Attendance{})
		testDB.Delete(&model.Session{}, session.ID)
		testDB.Delete(&model.Student{}, student.ID)
		testDB.Delete(&model.Session{}, "class_id = ?", class.ID)
		testDB.Delete(&model.Subject{}, subject.ID)
		testDB.Delete(&model.Class{}, class.ID)
	}
	return
}

// ═══════════════════════════════════════════════════════════
// Attendance Repository
// ═══════════════════════════════════════════════════════════

func TestAttendanceRepo_DuplicateTranslatesToErrDuplicatedKey(t *testing.T) {
	_, _, student, session, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	first := &model.Attendance{
		Status:    model.StatusPresent,
		SessionID: session.ID,
		StudentID: student.ID,
	}
	if err := testRepo.Attendance.Create(ctx, first); err != nil {
		t.Fatalf("首条点名记录应创建成功: %v", err)
	}

	// 唯一约束 uq_attendances_session_student 生效，
	// TranslateError 将驱动错误翻译为 gorm.ErrDuplicatedKey
	dup := &model.Attendance{
		Status:    model.StatusLate,
		SessionID: session.ID,
		StudentID: student.ID,
	}
	err := testRepo.Attendance.Create(ctx, dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("期望 gorm.ErrDuplicatedKey，实际: %v", err)
	}
}

func TestAttendanceRepo_ListByClassJoinsSessions(t *testing.T) {
	class, subject, student, session, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	second := &model.Session{Date: "2026-03-03", ClassID: class.ID, SubjectID: subject.ID}
	if err := testRepo.Session.Create(ctx, second); err != nil {
		t.Fatalf("创建第二个课次失败: %v", err)
	}

	for _, sessID := range []uint{session.ID, second.ID} {
		if err := testRepo.Attendance.Create(ctx, &model.Attendance{
			Status: model.StatusAbsent, SessionID: sessID, StudentID: student.ID,
		}); err != nil {
			t.Fatalf("创建点名记录失败: %v", err)
		}
	}

	result, err := testRepo.Attendance.ListByClass(ctx, class.ID)
	if err != nil {
		t.Fatalf("ListByClass 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("期望跨课次汇总 2 条，实际 %d 条", len(result))
	}
	for _, a := range result {
		if a.Session == nil || a.Student == nil {
			t.Error("记录应附带 Session / Student 关联")
		}
	}
}

func TestAttendanceRepo_CountByStatus(t *testing.T) {
	class, _, student, session, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	if err := testRepo.Attendance.Create(ctx, &model.Attendance{
		Status: model.StatusAbsent, SessionID: session.ID, StudentID: student.ID,
	}); err != nil {
		t.Fatalf("创建点名记录失败: %v", err)
	}

	absences, err := testRepo.Attendance.CountByStatusForClass(ctx, class.ID, model.StatusAbsent)
	if err != nil {
		t.Fatalf("CountByStatusForClass 应成功: %v", err)
	}
	if absences != 1 {
		t.Errorf("期望缺勤 1 次，实际 %d", absences)
	}

	late, err := testRepo.Attendance.CountByStatusForStudent(ctx, student.ID, model.StatusLate)
	if err != nil {
		t.Fatalf("CountByStatusForStudent 应成功: %v", err)
	}
	if late != 0 {
		t.Errorf("期望迟到 0 次，实际 %d", late)
	}
}

// ═══════════════════════════════════════════════════════════
// Session Repository
// ═══════════════════════════════════════════════════════════

func TestSessionRepo_GetByClassAndDate(t *testing.T) {
	class, _, _, session, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	got, err := testRepo.Session.GetByClassAndDate(ctx, class.ID, "2026-03-02")
	if err != nil {
		t.Fatalf("GetByClassAndDate 应成功: %v", err)
	}
	if got.ID != session.ID {
		t.Errorf("期望课次 %d，实际 %d", session.ID, got.ID)
	}
	// DATE 列读回必须还是 "YYYY-MM-DD"，不能被驱动格式化成 RFC3339
	if got.Date != "2026-03-02" {
		t.Errorf("期望日期 2026-03-02，实际 %q", got.Date)
	}

	_, err = testRepo.Session.GetByClassAndDate(ctx, class.ID, "2026-12-31")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("无课次日期期望 ErrRecordNotFound，实际: %v", err)
	}
}

func TestSessionRepo_GetByIDPreloadsRelations(t *testing.T) {
	_, _, _, session, cleanup := setupTestData(t)
	defer cleanup()

	got, err := testRepo.Session.GetByID(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.ClassEntity == nil || got.Subject == nil {
		t.Error("课次应附带班级与科目关联")
	}
}

// 日历导出走 List 后按日期解析，读回的日期必须能按 DateLayout 解析
func TestSessionRepo_ListDateRoundTrip(t *testing.T) {
	_, _, _, session, cleanup := setupTestData(t)
	defer cleanup()

	sessions, err := testRepo.Session.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	for i := range sessions {
		if sessions[i].ID != session.ID {
			continue
		}
		if sessions[i].Date != "2026-03-02" {
			t.Errorf("期望日期 2026-03-02，实际 %q", sessions[i].Date)
		}
		if _, err := sessions[i].Date.Time(); err != nil {
			t.Errorf("读回日期应可按 YYYY-MM-DD 解析: %v", err)
		}
		return
	}
	t.Errorf("List 结果中未找到课次 %d", session.ID)
}

// ═══════════════════════════════════════════════════════════
// Student Repository
// ═══════════════════════════════════════════════════════════

func TestStudentRepo_GetByNameAndEmail(t *testing.T) {
	_, _, student, _, cleanup := setupTestData(t)
	defer cleanup()
	ctx := context.Background()

	got, err := testRepo.Student.GetByNameAndEmail(ctx, student.Name, student.Email)
	if err != nil {
		t.Fatalf("GetByNameAndEmail 应成功: %v", err)
	}
	if got.ID != student.ID {
		t.Errorf("期望学生 %d，实际 %d", student.ID, got.ID)
	}

	// 姓名与邮箱必须同时匹配
	_, err = testRepo.Student.GetByNameAndEmail(ctx, "别的名字", student.Email)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound，实际: %v", err)
	}
}
