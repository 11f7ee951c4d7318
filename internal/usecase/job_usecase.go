package usecase

import (
	"context"
	"errors"
	"strings"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"
)

var ErrInvalidJobID = errors.New("invalid job id")

// IJobUseCase exposes job read paths. Jobs are created only by accepting a
// proposta, so there is no create operation here.

type IJobUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Job, error)
	GetBySolicitacaoID(ctx context.Context, solicitacaoID string) (entities.Job, error)
	List(ctx context.Context, f interfaces.JobFilter) ([]entities.Job, error)
}

type JobUseCase struct {
	repo interfaces.IJobRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) GetBySolicitacaoID(ctx context.Context, solicitacaoID string) (entities.Job, error) {
	solicitacaoID = strings.TrimSpace(solicitacaoID)
	if solicitacaoID == "" {
		return entities.Job{}, ErrInvalidQuoteRequestID
	}

	j, err := u.repo.GetBySolicitacaoID(ctx, solicitacaoID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) List(ctx context.Context, f interfaces.JobFilter) ([]entities.Job, error) {
	f.ContratanteID = strings.TrimSpace(f.ContratanteID)
	f.ProfissionalID = strings.TrimSpace(f.ProfissionalID)
	return u.repo.List(ctx, f)
}
