package interfaces

import (
	"context"
	"workbridge/internal/domain/entities"
)

// IConversationRepository abstracts DynamoDB persistence for conversas and
// mensagens. Messages are keyed so that ListMessages returns chronological
// order without client-side sorting.

type IConversationRepository interface {
	Create(ctx context.Context, c entities.Conversation) (entities.Conversation, error)
	GetByID(ctx context.Context, id string) (entities.Conversation, error)
	AppendMessage(ctx context.Context, m entities.Message) (entities.Message, error)
	ListMessages(ctx context.Context, conversaID string) ([]entities.Message, error)
}
