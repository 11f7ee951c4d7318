package entities

import "time"

// Job is the contracted engagement created when a proposta is accepted.
//
// Storage model (DynamoDB):
//   - PK: solicitacao_id — one job per solicitação by construction; the
//     conditional put inside the accept transaction makes concurrent accepts
//     on the same solicitação race safely.
//   - GSI (id-index): id
//
// Jobs are immutable historical records: contratante, cidade and título are
// copied from the originating solicitação at creation time.
type Job struct {
	ID             string    `json:"id"`
	PropostaID     string    `json:"proposta_id"`
	SolicitacaoID  string    `json:"solicitacao_id"`
	ContratanteID  string    `json:"contratante_id"`
	ProfissionalID string    `json:"profissional_id"`
	Cidade         string    `json:"cidade,omitempty"`
	Titulo         string    `json:"titulo"`
	CriadoEm       time.Time `json:"criado_em"`
}
