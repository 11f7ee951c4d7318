package entities

import "time"

// Conversation groups the messages exchanged around a solicitação or a job.
// At least one of SolicitacaoID/JobID is set.
//
// Storage model (DynamoDB):
//   - conversations PK: id
//   - messages PK: conversa_id, SK: sort_key (criado_em + message id, so listing
//     by conversation returns chronological order)
type Conversation struct {
	ID            string    `json:"id"`
	SolicitacaoID string    `json:"solicitacao_id,omitempty"`
	JobID         string    `json:"job_id,omitempty"`
	CriadoEm      time.Time `json:"criado_em"`
}

type Message struct {
	ID         string    `json:"id"`
	ConversaID string    `json:"conversa_id"`
	AutorID    string    `json:"autor_id"`
	Corpo      string    `json:"corpo"`
	CriadoEm   time.Time `json:"criado_em"`
}
