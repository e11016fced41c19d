package services

import (
	"context"
	"fmt"

	"github.com/scripta/scripta-backend/internal/logger"
	"github.com/scripta/scripta-backend/internal/repos"
	"github.com/scripta/scripta-backend/internal/types"
)

type TpmService interface {
	List(ctx context.Context) (*types.TpmConfigResponse, error)
	GetByName(ctx context.Context, tpmName string) (*types.TpmConfigResponse, error)
	GetByID(ctx context.Context, id int64) (*types.Tpm, error)
	Create(ctx context.Context, req types.TpmRequest) (*types.Tpm, error)
	Update(ctx context.Context, id int64, req types.TpmRequest) (*types.Tpm, error)
	Delete(ctx context.Context, id int64) error
}

type tpmService struct {
	log  *logger.Logger
	repo repos.TpmRepo
}

func NewTpmService(repo repos.TpmRepo, baseLog *logger.Logger) TpmService {
	svcLog := baseLog.With("service", "TpmService")
	return &tpmService{log: svcLog, repo: repo}
}

func (ts *tpmService) List(ctx context.Context) (*types.TpmConfigResponse, error) {
	tpms, err := ts.repo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tpm records: %w", err)
	}
	return &types.TpmConfigResponse{Tpms: tpms}, nil
}

// GetByName returns every version stored under the TPM name. Multiple rows
// per name are expected, variants and versions share it.
func (ts *tpmService) GetByName(ctx context.Context, tpmName string) (*types.TpmConfigResponse, error) {
	tpms, err := ts.repo.GetByName(ctx, nil, tpmName)
	if err != nil {
		return nil, fmt.Errorf("get tpm %q: %w", tpmName, err)
	}
	if len(tpms) == 0 {
		return nil, fmt.Errorf("tpm %q: %w", tpmName, ErrNotFound)
	}
	return &types.TpmConfigResponse{Tpms: tpms}, nil
}

func (ts *tpmService) GetByID(ctx context.Context, id int64) (*types.Tpm, error) {
	tpm, err := ts.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("get tpm %d: %w", id, err)
	}
	if tpm == nil {
		return nil, fmt.Errorf("tpm %d: %w", id, ErrNotFound)
	}
	return tpm, nil
}

func (ts *tpmService) Create(ctx context.Context, req types.TpmRequest) (*types.Tpm, error) {
	tpm := req.ToTpm()
	if err := ts.repo.Create(ctx, nil, tpm); err != nil {
		return nil, fmt.Errorf("create tpm %q: %w", req.TPM, err)
	}
	ts.log.Info("TPM record created", "tpm", tpm.TPM, "id", tpm.ID)
	return tpm, nil
}

func (ts *tpmService) Update(ctx context.Context, id int64, req types.TpmRequest) (*types.Tpm, error) {
	existing, err := ts.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("get tpm %d: %w", id, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("tpm %d: %w", id, ErrNotFound)
	}

	updated := req.ToTpm()
	updated.ID = existing.ID
	updated.CreatedTimestamp = existing.CreatedTimestamp
	if err := ts.repo.Save(ctx, nil, updated); err != nil {
		return nil, fmt.Errorf("update tpm %d: %w", id, err)
	}
	ts.log.Info("TPM record updated", "tpm", updated.TPM, "id", id)
	return updated, nil
}

func (ts *tpmService) Delete(ctx context.Context, id int64) error {
	deleted, err := ts.repo.Delete(ctx, nil, id)
	if err != nil {
		return fmt.Errorf("delete tpm %d: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("tpm %d: %w", id, ErrNotFound)
	}
	ts.log.Info("TPM record deleted", "id", id)
	return nil
}
