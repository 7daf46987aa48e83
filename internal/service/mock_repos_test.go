package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/fouadlamrini/School-Attendance/internal/model"
	"github.com/fouadlamrini/School-Attendance/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByName(_ context.Context, name string) (*model.User, error) {
	for _, u := range m.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes map[uint]*model.Class
	nextID  uint
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[uint]*model.Class), nextID: 1}
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	if class.ID == 0 {
		class.ID = m.nextID
		m.nextID++
	}
	m.classes[class.ID] = class
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id uint) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) GetByName(_ context.Context, name string) (*model.Class, error) {
	for _, c := range m.classes {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) List(_ context.Context) ([]model.Class, error) {
	result := make([]model.Class, 0, len(m.classes))
	for _, c := range m.classes {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockClassRepo) Update(_ context.Context, class *model.Class) error {
	if _, ok := m.classes[class.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.classes[class.ID] = class
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id uint) error {
	delete(m.classes, id)
	return nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct {
	subjects map[uint]*model.Subject
	nextID   uint
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[uint]*model.Subject), nextID: 1}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	for _, s := range m.subjects {
		if s.Name == subject.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if subject.ID == 0 {
		subject.ID = m.nextID
		m.nextID++
	}
	m.subjects[subject.ID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id uint) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) GetByName(_ context.Context, name string) (*model.Subject, error) {
	for _, s := range m.subjects {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context) ([]model.Subject, error) {
	result := make([]model.Subject, 0, len(m.subjects))
	for _, s := range m.subjects {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	if _, ok := m.subjects[subject.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.subjects[subject.ID] = subject
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id uint) error {
	delete(m.subjects, id)
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[uint]*model.Student
	nextID   uint
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[uint]*model.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	for _, s := range m.students {
		if s.Email == student.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if student.ID == 0 {
		student.ID = m.nextID
		m.nextID++
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByNameAndEmail(_ context.Context, name, email string) (*model.Student, error) {
	for _, s := range m.students {
		if s.Name == name && s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	result := make([]model.Student, 0, len(m.students))
	for _, s := range m.students {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	if _, ok := m.students[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id uint) error {
	delete(m.students, id)
	return nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct {
	sessions map[uint]*model.Session
	nextID   uint
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[uint]*model.Session), nextID: 1}
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.Session) error {
	if session.ID == 0 {
		session.ID = m.nextID
		m.nextID++
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id uint) (*model.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) GetByClassAndDate(_ context.Context, classID uint, date string) (*model.Session, error) {
	for _, s := range m.sessions {
		if s.ClassID == classID && s.Date == model.Date(date) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) List(_ context.Context) ([]model.Session, error) {
	result := make([]model.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSessionRepo) Update(_ context.Context, session *model.Session) error {
	if _, ok := m.sessions[session.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id uint) error {
	delete(m.sessions, id)
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	attendances map[uint]*model.Attendance
	nextID      uint
	// sessions 用于 ListByClass / CountByStatusForClass 的班级关联
	sessions *mockSessionRepo
}

func newMockAttendanceRepo(sessions *mockSessionRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{
		attendances: make(map[uint]*model.Attendance),
		nextID:      1,
		sessions:    sessions,
	}
}

func (m *mockAttendanceRepo) Create(_ context.Context, attendance *model.Attendance) error {
	for _, a := range m.attendances {
		if a.SessionID == attendance.SessionID && a.StudentID == attendance.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	if attendance.ID == 0 {
		attendance.ID = m.nextID
		m.nextID++
	}
	m.attendances[attendance.ID] = attendance
	return nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id uint) (*model.Attendance, error) {
	if a, ok := m.attendances[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) GetBySessionAndStudent(_ context.Context, sessionID, studentID uint) (*model.Attendance, error) {
	for _, a := range m.attendances {
		if a.SessionID == sessionID && a.StudentID == studentID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) ListBySession(_ context.Context, sessionID uint) ([]model.Attendance, error) {
	result := make([]model.Attendance, 0)
	for _, a := range m.attendances {
		if a.SessionID == sessionID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListByStudent(_ context.Context, studentID uint) ([]model.Attendance, error) {
	result := make([]model.Attendance, 0)
	for _, a := range m.attendances {
		if a.StudentID == studentID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListByClass(_ context.Context, classID uint) ([]model.Attendance, error) {
	result := make([]model.Attendance, 0)
	for _, a := range m.attendances {
		if sess, ok := m.sessions.sessions[a.SessionID]; ok && sess.ClassID == classID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, attendance *model.Attendance) error {
	if _, ok := m.attendances[attendance.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.attendances[attendance.ID] = attendance
	return nil
}

func (m *mockAttendanceRepo) CountByStatusForClass(_ context.Context, classID uint, status string) (int64, error) {
	var count int64
	for _, a := range m.attendances {
		if a.Status != status {
			continue
		}
		if sess, ok := m.sessions.sessions[a.SessionID]; ok && sess.ClassID == classID {
			count++
		}
	}
	return count, nil
}

func (m *mockAttendanceRepo) CountByStatusForStudent(_ context.Context, studentID uint, status string) (int64, error) {
	var count int64
	for _, a := range m.attendances {
		if a.Status == status && a.StudentID == studentID {
			count++
		}
	}
	return count, nil
}

// ── 组装 ──

// mockRepoSet 暴露各 mock 实例，便于测试直接预置数据
type mockRepoSet struct {
	user       *mockUserRepo
	class      *mockClassRepo
	subject    *mockSubjectRepo
	student    *mockStudentRepo
	session    *mockSessionRepo
	attendance *mockAttendanceRepo
}

func newMockRepos() (*repository.Repository, *mockRepoSet) {
	sessions := newMockSessionRepo()
	set := &mockRepoSet{
		user:       newMockUserRepo(),
		class:      newMockClassRepo(),
		subject:    newMockSubjectRepo(),
		student:    newMockStudentRepo(),
		session:    sessions,
		attendance: newMockAttendanceRepo(sessions),
	}
	repo := &repository.Repository{
		User:       set.user,
		Class:      set.class,
		Subject:    set.subject,
		Student:    set.student,
		Session:    set.session,
		Attendance: set.attendance,
	}
	return repo, set
}
