package repository

import (
	"context"
	"time"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConversasTableName = "conversas"
	defaultMensagensTableName = "mensagens"
)

type conversationItem struct {
	ID            string `dynamodbav:"id"`
	SolicitacaoID string `dynamodbav:"solicitacao_id,omitempty"`
	JobID         string `dynamodbav:"job_id,omitempty"`
	CriadoEm      string `dynamodbav:"criado_em"`
}

type messageItem struct {
	ConversaID string `dynamodbav:"conversa_id"`
	SortKey    string `dynamodbav:"sort_key"`
	ID         string `dynamodbav:"id"`
	AutorID    string `dynamodbav:"autor_id"`
	Corpo      string `dynamodbav:"corpo"`
	CriadoEm   string `dynamodbav:"criado_em"`
}

// ConversationDynamoRepository persists conversas and mensagens in DynamoDB.
//
// Table requirements:
//   - conversas PK: id (string)
//   - mensagens PK: conversa_id (string), SK: sort_key (string)
//
// sort_key is "<criado_em RFC3339Nano>#<id>": RFC3339 timestamps sort
// lexicographically, so querying a conversation yields chronological order.

type ConversationDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	messagesTable string
}

var _ interfaces.IConversationRepository = (*ConversationDynamoRepository)(nil)

func NewConversationDynamoRepository(ddb *dynamodb.Client) *ConversationDynamoRepository {
	return &ConversationDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("CONVERSAS_TABLE", defaultConversasTableName),
		messagesTable: getenvDefault("MENSAGENS_TABLE", defaultMensagensTableName),
	}
}

func (r *ConversationDynamoRepository) Create(ctx context.Context, c entities.Conversation) (entities.Conversation, error) {
	av, err := attributevalue.MarshalMap(conversationItem{
		ID:            c.ID,
		SolicitacaoID: c.SolicitacaoID,
		JobID:         c.JobID,
		CriadoEm:      c.CriadoEm.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Conversation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Conversation{}, err
	}
	return c, nil
}

func (r *ConversationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Conversation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Conversation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Conversation{}, nil
	}

	var it conversationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Conversation{}, err
	}
	criadoEm, _ := time.Parse(time.RFC3339Nano, it.CriadoEm)
	return entities.Conversation{
		ID:            it.ID,
		SolicitacaoID: it.SolicitacaoID,
		JobID:         it.JobID,
		CriadoEm:      criadoEm,
	}, nil
}

func (r *ConversationDynamoRepository) AppendMessage(ctx context.Context, m entities.Message) (entities.Message, error) {
	criadoEm := m.CriadoEm.UTC().Format(time.RFC3339Nano)
	av, err := attributevalue.MarshalMap(messageItem{
		ConversaID: m.ConversaID,
		SortKey:    criadoEm + "#" + m.ID,
		ID:         m.ID,
		AutorID:    m.AutorID,
		Corpo:      m.Corpo,
		CriadoEm:   criadoEm,
	})
	if err != nil {
		return entities.Message{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.messagesTable),
		Item:      av,
	})
	if err != nil {
		return entities.Message{}, err
	}
	return m, nil
}

func (r *ConversationDynamoRepository) ListMessages(ctx context.Context, conversaID string) ([]entities.Message, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.messagesTable),
		KeyConditionExpression: aws.String("conversa_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: conversaID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Message, 0, len(out.Items))
	for _, raw := range out.Items {
		var it messageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		criadoEm, _ := time.Parse(time.RFC3339Nano, it.CriadoEm)
		items = append(items, entities.Message{
			ID:         it.ID,
			ConversaID: it.ConversaID,
			AutorID:    it.AutorID,
			Corpo:      it.Corpo,
			CriadoEm:   criadoEm,
		})
	}
	return items, nil
}
