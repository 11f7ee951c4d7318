package request

import "time"

// ProposalRequest is the payload a professional sends against an open
// solicitação. Monetary values are integer cents.
type ProposalRequest struct {
	SolicitacaoID      string     `json:"solicitacao_id" binding:"required"`
	ProfissionalID     string     `json:"profissional_id" binding:"required"`
	ValorMaoObraCents  int64      `json:"valor_mao_obra_cents" binding:"required"`
	ValorMaterialCents int64      `json:"valor_material_cents"`
	DataInicioPrevista *time.Time `json:"data_inicio_prevista"`
	DataFimPrevista    *time.Time `json:"data_fim_prevista"`
	ValidadeAte        time.Time  `json:"validade_ate" binding:"required"`
	Mensagem           string     `json:"mensagem"`
}
