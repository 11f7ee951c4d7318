package interfaces

import (
	"context"
	"workbridge/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for avaliações.
//
// Create performs a conditional put on the (job, tipo) composite key; a
// zero-value result means the job was already reviewed in that direction.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByAvaliadoID(ctx context.Context, avaliadoID string) ([]entities.Review, error)
}
