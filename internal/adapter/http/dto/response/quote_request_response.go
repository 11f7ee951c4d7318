package response

import (
	"time"

	"workbridge/internal/domain/entities"
)

type QuoteRequestResponse struct {
	ID              string     `json:"id"`
	ContratanteID   string     `json:"contratante_id"`
	ProfissionalID  string     `json:"profissional_id"`
	Titulo          string     `json:"titulo"`
	Descricao       string     `json:"descricao"`
	Cidade          string     `json:"cidade,omitempty"`
	DataDesejadaIni *time.Time `json:"data_desejada_ini,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromQuoteRequest(q entities.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:              q.ID,
		ContratanteID:   q.ContratanteID,
		ProfissionalID:  q.ProfissionalID,
		Titulo:          q.Titulo,
		Descricao:       q.Descricao,
		Cidade:          q.Cidade,
		DataDesejadaIni: q.DataDesejadaIni,
		Status:          string(q.Status),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

func FromQuoteRequests(list []entities.QuoteRequest) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(list))
	for _, q := range list {
		out = append(out, FromQuoteRequest(q))
	}
	return out
}
