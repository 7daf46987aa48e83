package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/fouadlamrini/School-Attendance/internal/dto"
)

func setupTestClassService() (ClassService, *mockRepoSet) {
	repo, set := newMockRepos()
	return NewClassService(repo, zap.NewNop()), set
}

func TestClass_CreateAndGet(t *testing.T) {
	svc, _ := setupTestClassService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.ClassRequest{Name: "10B"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if created.ID == 0 {
		t.Error("创建后应分配 ID")
	}
	if created.Name != "10B" {
		t.Errorf("期望 Name=10B，实际=%s", created.Name)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Name != "10B" {
		t.Errorf("期望 Name=10B，实际=%s", got.Name)
	}
}

func TestClass_CreateTrimsName(t *testing.T) {
	svc, _ := setupTestClassService()

	created, err := svc.Create(context.Background(), &dto.ClassRequest{Name: "  10B  "})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if created.Name != "10B" {
		t.Errorf("期望名称去除首尾空白，实际=%q", created.Name)
	}
}

func TestClass_Update(t *testing.T) {
	svc, _ := setupTestClassService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.ClassRequest{Name: "10B"})

	updated, err := svc.Update(ctx, created.ID, &dto.ClassRequest{Name: "11A"})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Name != "11A" {
		t.Errorf("期望 Name=11A，实际=%s", updated.Name)
	}
}

func TestClass_UpdateNotFound(t *testing.T) {
	svc, _ := setupTestClassService()

	_, err := svc.Update(context.Background(), 999, &dto.ClassRequest{Name: "11A"})
	if !errors.Is(err, ErrClassNotFound) {
		t.Errorf("期望 ErrClassNotFound，实际: %v", err)
	}
}

func TestClass_Delete(t *testing.T) {
	svc, _ := setupTestClassService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.ClassRequest{Name: "10B"})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("删除后期望 ErrClassNotFound，实际: %v", err)
	}
}

func TestClass_DeleteNotFound(t *testing.T) {
	svc, _ := setupTestClassService()

	if err := svc.Delete(context.Background(), 999); !errors.Is(err, ErrClassNotFound) {
		t.Errorf("期望 ErrClassNotFound，实际: %v", err)
	}
}

func TestClass_ListEmpty(t *testing.T) {
	svc, _ := setupTestClassService()

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("期望空列表，实际 %d 项", len(result))
	}
}
