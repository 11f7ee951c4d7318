package response

import (
	"time"

	"workbridge/internal/domain/entities"
)

type PortfolioItemResponse struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao,omitempty"`
	ImagemURL string `json:"imagem_url"`
}

type ProfessionalResponse struct {
	ID                 string                  `json:"id"`
	Nome               string                  `json:"nome"`
	Especialidade      string                  `json:"especialidade"`
	Especialidades     []string                `json:"especialidades"`
	Cidade             string                  `json:"cidade"`
	Estado             string                  `json:"estado"`
	Nota               float64                 `json:"nota"`
	ServicosConcluidos int                     `json:"servicos_concluidos"`
	FotoURL            string                  `json:"foto_url,omitempty"`
	Descricao          string                  `json:"descricao,omitempty"`
	Portfolio          []PortfolioItemResponse `json:"portfolio,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// ProfileResponse is the professional detail view: catalog record plus the
// avaliações written about them.
type ProfileResponse struct {
	Profissional ProfessionalResponse `json:"profissional"`
	Avaliacoes   []ReviewResponse     `json:"avaliacoes"`
}

func FromProfessional(p entities.Professional) ProfessionalResponse {
	portfolio := make([]PortfolioItemResponse, 0, len(p.Portfolio))
	for _, item := range p.Portfolio {
		portfolio = append(portfolio, PortfolioItemResponse{
			Titulo:    item.Titulo,
			Descricao: item.Descricao,
			ImagemURL: item.ImagemURL,
		})
	}
	if len(portfolio) == 0 {
		portfolio = nil
	}

	return ProfessionalResponse{
		ID:                 p.ID,
		Nome:               p.Nome,
		Especialidade:      p.Especialidade,
		Especialidades:     p.Especialidades,
		Cidade:             p.Cidade,
		Estado:             p.Estado,
		Nota:               p.Nota,
		ServicosConcluidos: p.ServicosConcluidos,
		FotoURL:            p.FotoURL,
		Descricao:          p.Descricao,
		Portfolio:          portfolio,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromProfessionals(list []entities.Professional) []ProfessionalResponse {
	out := make([]ProfessionalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProfessional(p))
	}
	return out
}

func FromProfile(p entities.Professional, reviews []entities.Review) ProfileResponse {
	return ProfileResponse{
		Profissional: FromProfessional(p),
		Avaliacoes:   FromReviews(reviews),
	}
}
