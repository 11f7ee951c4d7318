package response

import (
	"time"

	"workbridge/internal/domain/entities"
)

// ProposalResponse reports the derived status: a pendente proposta past its
// validade_ate is presented as expirada even though storage is untouched.
type ProposalResponse struct {
	ID                 string     `json:"id"`
	SolicitacaoID      string     `json:"solicitacao_id"`
	ProfissionalID     string     `json:"profissional_id"`
	ValorMaoObraCents  int64      `json:"valor_mao_obra_cents"`
	ValorMaterialCents int64      `json:"valor_material_cents"`
	DataInicioPrevista *time.Time `json:"data_inicio_prevista,omitempty"`
	DataFimPrevista    *time.Time `json:"data_fim_prevista,omitempty"`
	ValidadeAte        time.Time  `json:"validade_ate"`
	Mensagem           string     `json:"mensagem,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// AcceptProposalResponse pairs the accepted proposta with the job it created.
type AcceptProposalResponse struct {
	Proposta ProposalResponse `json:"proposta"`
	Job      JobResponse      `json:"job"`
}

func FromProposal(p entities.Proposal, now time.Time) ProposalResponse {
	return ProposalResponse{
		ID:                 p.ID,
		SolicitacaoID:      p.SolicitacaoID,
		ProfissionalID:     p.ProfissionalID,
		ValorMaoObraCents:  p.ValorMaoObraCents,
		ValorMaterialCents: p.ValorMaterialCents,
		DataInicioPrevista: p.DataInicioPrevista,
		DataFimPrevista:    p.DataFimPrevista,
		ValidadeAte:        p.ValidadeAte,
		Mensagem:           p.Mensagem,
		Status:             string(p.EffectiveStatus(now)),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromProposals(list []entities.Proposal, now time.Time) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProposal(p, now))
	}
	return out
}

func FromAcceptedProposal(p entities.Proposal, j entities.Job, now time.Time) AcceptProposalResponse {
	return AcceptProposalResponse{
		Proposta: FromProposal(p, now),
		Job:      FromJob(j),
	}
}
