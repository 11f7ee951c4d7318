package entities

import "time"

// ProposalStatus represents the lifecycle of a proposta.
//
// pendente is the only non-terminal state. expirada is derived at read time from
// ValidadeAte and is never written to storage.

type ProposalStatus string

const (
	ProposalStatusPendente ProposalStatus = "pendente"
	ProposalStatusAceita   ProposalStatus = "aceita"
	ProposalStatusRecusada ProposalStatus = "recusada"
	ProposalStatusExpirada ProposalStatus = "expirada"
)

// Proposal is a professional's priced proposta against a solicitação.
//
// Storage model (DynamoDB):
//   - PK: solicitacao_id, SK: profissional_id — the composite key enforces at
//     most one proposta per (solicitação, profissional) pair.
//   - GSI (id-index): id
//
// Monetary representation:
//   - Values are integer cents, so amounts round-trip without drift.
type Proposal struct {
	ID                 string         `json:"id"`
	SolicitacaoID      string         `json:"solicitacao_id"`
	ProfissionalID     string         `json:"profissional_id"`
	ValorMaoObraCents  int64          `json:"valor_mao_obra_cents"`
	ValorMaterialCents int64          `json:"valor_material_cents"`
	DataInicioPrevista *time.Time     `json:"data_inicio_prevista,omitempty"`
	DataFimPrevista    *time.Time     `json:"data_fim_prevista,omitempty"`
	ValidadeAte        time.Time      `json:"validade_ate"`
	Mensagem           string         `json:"mensagem,omitempty"`
	Status             ProposalStatus `json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// EffectiveStatus reports expirada for pendente propostas whose validity window
// has closed. Stored state is untouched.
func (p Proposal) EffectiveStatus(now time.Time) ProposalStatus {
	if p.Status == ProposalStatusPendente && now.After(p.ValidadeAte) {
		return ProposalStatusExpirada
	}
	return p.Status
}
