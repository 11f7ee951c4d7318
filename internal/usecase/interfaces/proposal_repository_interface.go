package interfaces

import (
	"context"
	"workbridge/internal/domain/entities"
)

// ProposalFilter narrows List results. Empty fields are ignored.
type ProposalFilter struct {
	SolicitacaoID  string
	ProfissionalID string
}

// IProposalRepository abstracts DynamoDB persistence for propostas.
//
// Uniqueness and transition rules live in storage, not only in pre-checks:
//   - Create performs a conditional put on the (solicitacao, profissional)
//     composite key; a lost duplicate race returns a zero-value Proposal.
//   - UpdateStatus transitions only when the stored status equals `from`;
//     a zero-value result means the condition failed (already terminal).
//   - AcceptAndCreateJob commits accept + job creation + solicitação close in
//     one TransactWriteItems call, so a crash never leaves an accepted
//     proposta without its job. A zero-value result means another accept won.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	GetByPair(ctx context.Context, solicitacaoID, profissionalID string) (entities.Proposal, error)
	List(ctx context.Context, f ProposalFilter) ([]entities.Proposal, error)
	UpdateStatus(ctx context.Context, solicitacaoID, profissionalID string, from, to entities.ProposalStatus) (entities.Proposal, error)
	AcceptAndCreateJob(ctx context.Context, p entities.Proposal, job entities.Job) (entities.Proposal, error)
}
