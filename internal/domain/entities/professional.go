package entities

import "time"

// Professional is the service-provider catalog record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - Nota stays within [0,5]; review ingestion clamps the recomputed mean.
//   - Especialidades is non-empty and includes Especialidade, so the search
//     filter and the profile header never disagree.
type Professional struct {
	ID                 string          `json:"id"`
	Nome               string          `json:"nome"`
	Especialidade      string          `json:"especialidade"`
	Especialidades     []string        `json:"especialidades"`
	Cidade             string          `json:"cidade"`
	Estado             string          `json:"estado"`
	Nota               float64         `json:"nota"`
	ServicosConcluidos int             `json:"servicos_concluidos"`
	FotoURL            string          `json:"foto_url,omitempty"`
	Descricao          string          `json:"descricao,omitempty"`
	Portfolio          []PortfolioItem `json:"portfolio,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type PortfolioItem struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao,omitempty"`
	ImagemURL string `json:"imagem_url"`
}

// Location is the "cidade/estado" composite the location filter matches against.
func (p Professional) Location() string {
	return p.Cidade + "/" + p.Estado
}
