package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteRequestNotFound     = errors.New("solicitacao not found")
	ErrInvalidQuoteRequestID    = errors.New("invalid solicitacao id")
	ErrInvalidQuoteRequestInput = errors.New("invalid solicitacao input")
)

// CreateQuoteRequestInput carries the fields required to open a solicitação.
type CreateQuoteRequestInput struct {
	ContratanteID   string
	ProfissionalID  string
	Titulo          string
	Descricao       string
	Cidade          string
	DataDesejadaIni *time.Time
}

// IQuoteRequestUseCase exposes solicitação de orçamento operations.

type IQuoteRequestUseCase interface {
	Create(ctx context.Context, in CreateQuoteRequestInput) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	List(ctx context.Context, f interfaces.QuoteRequestFilter) ([]entities.QuoteRequest, error)
}

type QuoteRequestUseCase struct {
	repo          interfaces.IQuoteRequestRepository
	professionals interfaces.IProfessionalRepository
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

func NewQuoteRequestUseCase(repo interfaces.IQuoteRequestRepository, professionals interfaces.IProfessionalRepository) *QuoteRequestUseCase {
	return &QuoteRequestUseCase{repo: repo, professionals: professionals}
}

func (u *QuoteRequestUseCase) Create(ctx context.Context, in CreateQuoteRequestInput) (entities.QuoteRequest, error) {
	in.ContratanteID = strings.TrimSpace(in.ContratanteID)
	in.ProfissionalID = strings.TrimSpace(in.ProfissionalID)
	in.Titulo = strings.TrimSpace(in.Titulo)
	in.Descricao = strings.TrimSpace(in.Descricao)
	if in.ContratanteID == "" || in.ProfissionalID == "" || in.Titulo == "" || in.Descricao == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestInput
	}

	// The target professional must exist in the catalog.
	p, err := u.professionals.GetByID(ctx, in.ProfissionalID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if p.ID == "" {
		return entities.QuoteRequest{}, ErrProfessionalNotFound
	}

	now := time.Now().UTC()
	q := entities.QuoteRequest{
		ID:              uuid.NewString(),
		ContratanteID:   in.ContratanteID,
		ProfissionalID:  in.ProfissionalID,
		Titulo:          in.Titulo,
		Descricao:       in.Descricao,
		Cidade:          strings.TrimSpace(in.Cidade),
		DataDesejadaIni: in.DataDesejadaIni,
		Status:          entities.QuoteRequestStatusAberta,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteRequestUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return q, nil
}

func (u *QuoteRequestUseCase) List(ctx context.Context, f interfaces.QuoteRequestFilter) ([]entities.QuoteRequest, error) {
	f.ContratanteID = strings.TrimSpace(f.ContratanteID)
	f.ProfissionalID = strings.TrimSpace(f.ProfissionalID)
	return u.repo.List(ctx, f)
}
