package interfaces

import (
	"context"
	"workbridge/internal/domain/entities"
)

// IProfessionalRepository abstracts DynamoDB persistence for the professional
// catalog.
//
// The matcher must be able to:
//   - list the full catalog (it re-filters per search call)
//   - resolve a single professional for the profile view
//   - refresh the stored nota when a new review arrives

type IProfessionalRepository interface {
	List(ctx context.Context) ([]entities.Professional, error)
	GetByID(ctx context.Context, id string) (entities.Professional, error)
	UpdateNota(ctx context.Context, id string, nota float64) (entities.Professional, error)
}
