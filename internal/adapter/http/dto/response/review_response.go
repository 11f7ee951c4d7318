package response

import (
	"time"

	"workbridge/internal/domain/entities"
)

type ReviewResponse struct {
	JobID       string    `json:"job_id"`
	Tipo        string    `json:"tipo"`
	AvaliadorID string    `json:"avaliador_id"`
	AvaliadoID  string    `json:"avaliado_id"`
	Nota        int       `json:"nota"`
	Comentario  string    `json:"comentario,omitempty"`
	CriadoEm    time.Time `json:"criado_em"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		JobID:       r.JobID,
		Tipo:        string(r.Tipo),
		AvaliadorID: r.AvaliadorID,
		AvaliadoID:  r.AvaliadoID,
		Nota:        r.Nota,
		Comentario:  r.Comentario,
		CriadoEm:    r.CriadoEm,
	}
}

func FromReviews(list []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromReview(r))
	}
	return out
}
