package repos

import (
	"context"
	"testing"

	"github.com/scripta/scripta-backend/internal/repos/testutil"
	"github.com/scripta/scripta-backend/internal/types"
)

func tpmFixture(name string, version int) *types.Tpm {
	return &types.Tpm{
		TPM:      name,
		Version:  version,
		PackType: testutil.Str("FoldingBox"),
	}
}

func TestTpmCreateAndGetByID(t *testing.T) {
	repo := NewTpmRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	tpm := tpmFixture("TPM-001", 1)
	if err := repo.Create(ctx, nil, tpm); err != nil {
		t.Fatalf("create: %v", err)
	}
	if tpm.ID == 0 {
		t.Fatal("create should assign an ID")
	}
	if tpm.CreatedTimestamp.IsZero() {
		t.Fatal("create should stamp CreatedTimestamp")
	}

	got, err := repo.GetByID(ctx, nil, tpm.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.TPM != "TPM-001" {
		t.Fatalf("unexpected record: %+v", got)
	}

	missing, err := repo.GetByID(ctx, nil, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("want nil for unknown id, got %+v", missing)
	}
}

func TestTpmGetByNameReturnsAllVersions(t *testing.T) {
	repo := NewTpmRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	for _, version := range []int{1, 2} {
		if err := repo.Create(ctx, nil, tpmFixture("TPM-001", version)); err != nil {
			t.Fatalf("create v%d: %v", version, err)
		}
	}
	if err := repo.Create(ctx, nil, tpmFixture("TPM-002", 1)); err != nil {
		t.Fatalf("create other: %v", err)
	}

	got, err := repo.GetByName(ctx, nil, "TPM-001")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len: want=2 got=%d", len(got))
	}

	all, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("list len: want=3 got=%d", len(all))
	}
}

func TestTpmSaveAndDelete(t *testing.T) {
	repo := NewTpmRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	tpm := tpmFixture("TPM-001", 1)
	if err := repo.Create(ctx, nil, tpm); err != nil {
		t.Fatalf("create: %v", err)
	}

	tpm.Version = 2
	if err := repo.Save(ctx, nil, tpm); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.GetByID(ctx, nil, tpm.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Version != 2 {
		t.Fatalf("version: want=2 got=%d", got.Version)
	}

	deleted, err := repo.Delete(ctx, nil, tpm.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("want deleted=true")
	}
	deleted, err = repo.Delete(ctx, nil, tpm.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Fatal("want deleted=false for missing row")
	}
}
