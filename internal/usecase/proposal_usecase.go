package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProposalNotFound   = errors.New("proposta not found")
	ErrDuplicateProposal  = errors.New("proposta already exists for this solicitacao and profissional")
	ErrInvalidProposalID  = errors.New("invalid proposta id")
	ErrInvalidProposalVal = errors.New("invalid proposta labor value")
	ErrInvalidValidade    = errors.New("invalid proposta validity deadline")
	ErrProposalNotPending = errors.New("proposta is not pending")
	ErrProposalExpired    = errors.New("proposta validity expired")
	ErrQuoteRequestClosed = errors.New("solicitacao is closed")
)

// SubmitProposalInput carries the fields a professional sends against a
// solicitação. Monetary values are integer cents.
type SubmitProposalInput struct {
	SolicitacaoID      string
	ProfissionalID     string
	ValorMaoObraCents  int64
	ValorMaterialCents int64
	DataInicioPrevista *time.Time
	DataFimPrevista    *time.Time
	ValidadeAte        time.Time
	Mensagem           string
}

// IProposalUseCase exposes the proposta lifecycle:
//
//	pendente → aceita   (Accept; creates the job atomically)
//	pendente → recusada (Reject)
//	pendente → expirada (derived from validade_ate at read time)
//
// aceita, recusada and expirada are terminal. Accept is not idempotent:
// re-accepting fails with ErrProposalNotPending.

type IProposalUseCase interface {
	Submit(ctx context.Context, in SubmitProposalInput) (entities.Proposal, error)
	Accept(ctx context.Context, id string) (entities.Proposal, entities.Job, error)
	Reject(ctx context.Context, id string) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context, f interfaces.ProposalFilter, status entities.ProposalStatus) ([]entities.Proposal, error)
}

type ProposalUseCase struct {
	repo       interfaces.IProposalRepository
	quoteRepo  interfaces.IQuoteRequestRepository
	autoReject bool
	now        func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

// NewProposalUseCase wires the lifecycle. autoReject controls whether sibling
// pendente propostas are rejected after one is accepted; the rejection happens
// after the accept transaction commits and is best-effort.
func NewProposalUseCase(repo interfaces.IProposalRepository, quoteRepo interfaces.IQuoteRequestRepository, autoReject bool) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, quoteRepo: quoteRepo, autoReject: autoReject, now: time.Now}
}

func (u *ProposalUseCase) Submit(ctx context.Context, in SubmitProposalInput) (entities.Proposal, error) {
	in.SolicitacaoID = strings.TrimSpace(in.SolicitacaoID)
	in.ProfissionalID = strings.TrimSpace(in.ProfissionalID)
	if in.SolicitacaoID == "" {
		return entities.Proposal{}, ErrInvalidQuoteRequestID
	}
	if in.ProfissionalID == "" {
		return entities.Proposal{}, ErrInvalidProfessionalID
	}
	if in.ValorMaoObraCents <= 0 || in.ValorMaterialCents < 0 {
		return entities.Proposal{}, ErrInvalidProposalVal
	}

	now := u.now().UTC()
	if in.ValidadeAte.IsZero() || in.ValidadeAte.Before(now) {
		return entities.Proposal{}, ErrInvalidValidade
	}

	solicitacao, err := u.quoteRepo.GetByID(ctx, in.SolicitacaoID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if solicitacao.ID == "" {
		return entities.Proposal{}, ErrQuoteRequestNotFound
	}
	if solicitacao.Status != entities.QuoteRequestStatusAberta {
		return entities.Proposal{}, ErrQuoteRequestClosed
	}

	// Pre-check keeps the common duplicate path cheap; the conditional put in
	// the repository is what actually enforces uniqueness under races.
	if existing, err := u.repo.GetByPair(ctx, in.SolicitacaoID, in.ProfissionalID); err != nil {
		return entities.Proposal{}, err
	} else if existing.ID != "" {
		return entities.Proposal{}, ErrDuplicateProposal
	}

	p := entities.Proposal{
		ID:                 uuid.NewString(),
		SolicitacaoID:      in.SolicitacaoID,
		ProfissionalID:     in.ProfissionalID,
		ValorMaoObraCents:  in.ValorMaoObraCents,
		ValorMaterialCents: in.ValorMaterialCents,
		DataInicioPrevista: in.DataInicioPrevista,
		DataFimPrevista:    in.DataFimPrevista,
		ValidadeAte:        in.ValidadeAte.UTC(),
		Mensagem:           strings.TrimSpace(in.Mensagem),
		Status:             entities.ProposalStatusPendente,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	if created.ID == "" {
		// Lost the race against a concurrent submit for the same pair.
		return entities.Proposal{}, ErrDuplicateProposal
	}
	return created, nil
}

// Accept transitions a pendente proposta to aceita and creates its job. The
// job copies contratante, cidade and título from the originating solicitação,
// and the whole effect (accept + job + solicitação close) commits atomically.
func (u *ProposalUseCase) Accept(ctx context.Context, id string) (entities.Proposal, entities.Job, error) {
	p, err := u.getPending(ctx, id)
	if err != nil {
		return entities.Proposal{}, entities.Job{}, err
	}

	solicitacao, err := u.quoteRepo.GetByID(ctx, p.SolicitacaoID)
	if err != nil {
		return entities.Proposal{}, entities.Job{}, err
	}
	if solicitacao.ID == "" {
		return entities.Proposal{}, entities.Job{}, ErrQuoteRequestNotFound
	}

	now := u.now().UTC()
	job := entities.Job{
		ID:             uuid.NewString(),
		PropostaID:     p.ID,
		SolicitacaoID:  solicitacao.ID,
		ContratanteID:  solicitacao.ContratanteID,
		ProfissionalID: p.ProfissionalID,
		Cidade:         solicitacao.Cidade,
		Titulo:         solicitacao.Titulo,
		CriadoEm:       now,
	}

	accepted, err := u.repo.AcceptAndCreateJob(ctx, p, job)
	if err != nil {
		return entities.Proposal{}, entities.Job{}, err
	}
	if accepted.ID == "" {
		// A concurrent accept on this solicitação committed first.
		return entities.Proposal{}, entities.Job{}, ErrProposalNotPending
	}
	log.Printf("[proposal][usecase] accepted proposta_id=%s solicitacao_id=%s job_id=%s", accepted.ID, solicitacao.ID, job.ID)

	if u.autoReject {
		u.rejectCompeting(ctx, solicitacao.ID, accepted.ID)
	}
	return accepted, job, nil
}

func (u *ProposalUseCase) Reject(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.getPending(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, p.SolicitacaoID, p.ProfissionalID, entities.ProposalStatusPendente, entities.ProposalStatusRecusada)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotPending
	}
	return updated, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// List filters propostas; a non-empty status matches against the derived
// status, so "expirada" selects pendente propostas past their validade.
func (u *ProposalUseCase) List(ctx context.Context, f interfaces.ProposalFilter, status entities.ProposalStatus) ([]entities.Proposal, error) {
	f.SolicitacaoID = strings.TrimSpace(f.SolicitacaoID)
	f.ProfissionalID = strings.TrimSpace(f.ProfissionalID)

	list, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return list, nil
	}

	now := u.now().UTC()
	filtered := make([]entities.Proposal, 0, len(list))
	for _, p := range list {
		if p.EffectiveStatus(now) == status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// getPending resolves a proposta and verifies it is still actionable.
func (u *ProposalUseCase) getPending(ctx context.Context, id string) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != entities.ProposalStatusPendente {
		return entities.Proposal{}, ErrProposalNotPending
	}
	if u.now().UTC().After(p.ValidadeAte) {
		return entities.Proposal{}, ErrProposalExpired
	}
	return p, nil
}

func (u *ProposalUseCase) rejectCompeting(ctx context.Context, solicitacaoID, acceptedID string) {
	siblings, err := u.repo.List(ctx, interfaces.ProposalFilter{SolicitacaoID: solicitacaoID})
	if err != nil {
		log.Printf("[proposal][usecase] auto-reject listing failed solicitacao_id=%s err=%v", solicitacaoID, err)
		return
	}
	for _, s := range siblings {
		if s.ID == acceptedID || s.Status != entities.ProposalStatusPendente {
			continue
		}
		if _, err := u.repo.UpdateStatus(ctx, s.SolicitacaoID, s.ProfissionalID, entities.ProposalStatusPendente, entities.ProposalStatusRecusada); err != nil {
			log.Printf("[proposal][usecase] auto-reject failed proposta_id=%s err=%v", s.ID, err)
		}
	}
}
