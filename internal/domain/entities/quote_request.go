package entities

import "time"

// QuoteRequestStatus represents the lifecycle of a solicitação de orçamento.
//
// A solicitação closes when one of its proposals is accepted; the transition is
// written inside the same transaction that accepts the proposal and creates the job.

type QuoteRequestStatus string

const (
	QuoteRequestStatusAberta  QuoteRequestStatus = "aberta"
	QuoteRequestStatusFechada QuoteRequestStatus = "fechada"
)

// QuoteRequest is the solicitação de orçamento a contratante opens against a
// professional.
//
// Storage model (DynamoDB):
//   - PK: id
type QuoteRequest struct {
	ID              string             `json:"id"`
	ContratanteID   string             `json:"contratante_id"`
	ProfissionalID  string             `json:"profissional_id"`
	Titulo          string             `json:"titulo"`
	Descricao       string             `json:"descricao"`
	Cidade          string             `json:"cidade,omitempty"`
	DataDesejadaIni *time.Time         `json:"data_desejada_ini,omitempty"`
	Status          QuoteRequestStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
