package request

import "time"

// QuoteRequestRequest is the payload a contratante sends to open a solicitação
// de orçamento against a professional.
type QuoteRequestRequest struct {
	ContratanteID   string     `json:"contratante_id" binding:"required"`
	ProfissionalID  string     `json:"profissional_id" binding:"required"`
	Titulo          string     `json:"titulo" binding:"required"`
	Descricao       string     `json:"descricao" binding:"required"`
	Cidade          string     `json:"cidade"`
	DataDesejadaIni *time.Time `json:"data_desejada_ini"`
}
