package response

import (
	"time"

	"workbridge/internal/domain/entities"
)

type JobResponse struct {
	ID             string    `json:"id"`
	PropostaID     string    `json:"proposta_id"`
	SolicitacaoID  string    `json:"solicitacao_id"`
	ContratanteID  string    `json:"contratante_id"`
	ProfissionalID string    `json:"profissional_id"`
	Cidade         string    `json:"cidade,omitempty"`
	Titulo         string    `json:"titulo"`
	CriadoEm       time.Time `json:"criado_em"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:             j.ID,
		PropostaID:     j.PropostaID,
		SolicitacaoID:  j.SolicitacaoID,
		ContratanteID:  j.ContratanteID,
		ProfissionalID: j.ProfissionalID,
		Cidade:         j.Cidade,
		Titulo:         j.Titulo,
		CriadoEm:       j.CriadoEm,
	}
}

func FromJobs(list []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(list))
	for _, j := range list {
		out = append(out, FromJob(j))
	}
	return out
}
