package services

import (
	"context"
	"errors"
	"testing"

	"github.com/scripta/scripta-backend/internal/repos"
	"github.com/scripta/scripta-backend/internal/repos/testutil"
	"github.com/scripta/scripta-backend/internal/types"
)

func newTpmService(t *testing.T) TpmService {
	t.Helper()
	log := testutil.Logger(t)
	return NewTpmService(repos.NewTpmRepo(testutil.DB(t), log), log)
}

func tpmRequestFixture(name string) types.TpmRequest {
	return types.TpmRequest{
		TPM:      name,
		PackType: testutil.Str("FoldingBox"),
	}
}

func TestTpmCreateDefaultsVersion(t *testing.T) {
	svc := newTpmService(t)

	tpm, err := svc.Create(context.Background(), tpmRequestFixture("TPM-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tpm.ID == 0 {
		t.Fatal("create should assign an ID")
	}
	if tpm.Version != 1 {
		t.Fatalf("version: want=1 got=%d", tpm.Version)
	}
}

func TestTpmGetByName(t *testing.T) {
	svc := newTpmService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, tpmRequestFixture("TPM-001")); err != nil {
		t.Fatalf("create: %v", err)
	}
	req := tpmRequestFixture("TPM-001")
	req.Version = 2
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("create v2: %v", err)
	}

	resp, err := svc.GetByName(ctx, "TPM-001")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if len(resp.Tpms) != 2 {
		t.Fatalf("versions: want=2 got=%d", len(resp.Tpms))
	}

	if _, err := svc.GetByName(ctx, "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestTpmGetByID(t *testing.T) {
	svc := newTpmService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, tpmRequestFixture("TPM-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.TPM != "TPM-001" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := svc.GetByID(ctx, 99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestTpmUpdate(t *testing.T) {
	svc := newTpmService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, tpmRequestFixture("TPM-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := tpmRequestFixture("TPM-001")
	req.Version = 3
	updated, err := svc.Update(ctx, created.ID, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Version != 3 {
		t.Fatalf("version: want=3 got=%d", updated.Version)
	}
	if !updated.CreatedTimestamp.Equal(created.CreatedTimestamp) {
		t.Fatal("update must not change CreatedTimestamp")
	}

	if _, err := svc.Update(ctx, 99999, req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestTpmDelete(t *testing.T) {
	svc := newTpmService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, tpmRequestFixture("TPM-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	resp, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Tpms) != 0 {
		t.Fatalf("list len: want=0 got=%d", len(resp.Tpms))
	}
}
