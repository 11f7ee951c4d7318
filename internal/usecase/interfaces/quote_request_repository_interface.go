package interfaces

import (
	"context"
	"workbridge/internal/domain/entities"
)

// QuoteRequestFilter narrows List results. Empty fields are ignored.
type QuoteRequestFilter struct {
	ContratanteID  string
	ProfissionalID string
	Status         entities.QuoteRequestStatus
}

// IQuoteRequestRepository abstracts DynamoDB persistence for solicitações de
// orçamento. The aberta→fechada transition is not exposed here: it happens
// inside the proposal repository's accept transaction.

type IQuoteRequestRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	List(ctx context.Context, f QuoteRequestFilter) ([]entities.QuoteRequest, error)
}
