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
	ErrConversationNotFound   = errors.New("conversa not found")
	ErrInvalidConversationRef = errors.New("conversa requires a solicitacao or job reference")
	ErrInvalidConversationID  = errors.New("invalid conversa id")
	ErrInvalidMessageInput    = errors.New("invalid mensagem input")
)

// StartConversationInput ties a new conversa to a solicitação and/or a job.
type StartConversationInput struct {
	SolicitacaoID string
	JobID         string
}

// IConversationUseCase exposes message storage around an engagement. Delivery
// is plain request/response; there is no real-time transport here.

type IConversationUseCase interface {
	Start(ctx context.Context, in StartConversationInput) (entities.Conversation, error)
	PostMessage(ctx context.Context, conversaID, autorID, corpo string) (entities.Message, error)
	ListMessages(ctx context.Context, conversaID string) ([]entities.Message, error)
}

type ConversationUseCase struct {
	repo interfaces.IConversationRepository
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(repo interfaces.IConversationRepository) *ConversationUseCase {
	return &ConversationUseCase{repo: repo}
}

func (u *ConversationUseCase) Start(ctx context.Context, in StartConversationInput) (entities.Conversation, error) {
	in.SolicitacaoID = strings.TrimSpace(in.SolicitacaoID)
	in.JobID = strings.TrimSpace(in.JobID)
	if in.SolicitacaoID == "" && in.JobID == "" {
		return entities.Conversation{}, ErrInvalidConversationRef
	}

	c := entities.Conversation{
		ID:            uuid.NewString(),
		SolicitacaoID: in.SolicitacaoID,
		JobID:         in.JobID,
		CriadoEm:      time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *ConversationUseCase) PostMessage(ctx context.Context, conversaID, autorID, corpo string) (entities.Message, error) {
	conversaID = strings.TrimSpace(conversaID)
	autorID = strings.TrimSpace(autorID)
	corpo = strings.TrimSpace(corpo)
	if conversaID == "" {
		return entities.Message{}, ErrInvalidConversationID
	}
	if autorID == "" || corpo == "" {
		return entities.Message{}, ErrInvalidMessageInput
	}

	c, err := u.repo.GetByID(ctx, conversaID)
	if err != nil {
		return entities.Message{}, err
	}
	if c.ID == "" {
		return entities.Message{}, ErrConversationNotFound
	}

	m := entities.Message{
		ID:         uuid.NewString(),
		ConversaID: conversaID,
		AutorID:    autorID,
		Corpo:      corpo,
		CriadoEm:   time.Now().UTC(),
	}
	return u.repo.AppendMessage(ctx, m)
}

func (u *ConversationUseCase) ListMessages(ctx context.Context, conversaID string) ([]entities.Message, error) {
	conversaID = strings.TrimSpace(conversaID)
	if conversaID == "" {
		return nil, ErrInvalidConversationID
	}

	c, err := u.repo.GetByID(ctx, conversaID)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, ErrConversationNotFound
	}
	return u.repo.ListMessages(ctx, conversaID)
}
