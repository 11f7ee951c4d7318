package interfaces

import (
	"context"
	"workbridge/internal/domain/entities"
)

// JobFilter narrows List results. Empty fields are ignored.
type JobFilter struct {
	ContratanteID  string
	ProfissionalID string
}

// IJobRepository abstracts DynamoDB reads for jobs. Creation is not exposed:
// jobs are only ever written by the proposal accept transaction.

type IJobRepository interface {
	GetByID(ctx context.Context, id string) (entities.Job, error)
	GetBySolicitacaoID(ctx context.Context, solicitacaoID string) (entities.Job, error)
	List(ctx context.Context, f JobFilter) ([]entities.Job, error)
}
