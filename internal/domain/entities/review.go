package entities

import "time"

// ReviewTipo distinguishes who is being rated for a job.

type ReviewTipo string

const (
	ReviewTipoProfissional ReviewTipo = "profissional"
	ReviewTipoContratante  ReviewTipo = "contratante"
)

// Review is a per-job rating, one per direction.
//
// Storage model (DynamoDB):
//   - PK: job_id, SK: tipo — the composite key enforces at most one rating per
//     job per direction.
//   - GSI (avaliado_id-index): avaliado_id
type Review struct {
	JobID       string     `json:"job_id"`
	Tipo        ReviewTipo `json:"tipo"`
	AvaliadorID string     `json:"avaliador_id"`
	AvaliadoID  string     `json:"avaliado_id"`
	Nota        int        `json:"nota"`
	Comentario  string     `json:"comentario,omitempty"`
	CriadoEm    time.Time  `json:"criado_em"`
}
