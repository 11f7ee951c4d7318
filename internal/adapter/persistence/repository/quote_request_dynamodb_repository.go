package repository

import (
	"context"
	"strings"
	"time"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSolicitacoesTableName = "solicitacoes"

type quoteRequestItem struct {
	ID              string `dynamodbav:"id"`
	ContratanteID   string `dynamodbav:"contratante_id"`
	ProfissionalID  string `dynamodbav:"profissional_id"`
	Titulo          string `dynamodbav:"titulo"`
	Descricao       string `dynamodbav:"descricao"`
	Cidade          string `dynamodbav:"cidade,omitempty"`
	DataDesejadaIni string `dynamodbav:"data_desejada_ini,omitempty"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// QuoteRequestDynamoRepository persists solicitações de orçamento in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type QuoteRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb *dynamodb.Client) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SOLICITACOES_TABLE", defaultSolicitacoesTableName),
	}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	it := toQuoteRequestItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRequest{}, err
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
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func (r *QuoteRequestDynamoRepository) List(ctx context.Context, f interfaces.QuoteRequestFilter) ([]entities.QuoteRequest, error) {
	var (
		exprs  []string
		values = map[string]types.AttributeValue{}
		names  = map[string]string{}
	)
	if f.ContratanteID != "" {
		exprs = append(exprs, "#contratante_id = :contratante_id")
		names["#contratante_id"] = "contratante_id"
		values[":contratante_id"] = &types.AttributeValueMemberS{Value: f.ContratanteID}
	}
	if f.ProfissionalID != "" {
		exprs = append(exprs, "#profissional_id = :profissional_id")
		names["#profissional_id"] = "profissional_id"
		values[":profissional_id"] = &types.AttributeValueMemberS{Value: f.ProfissionalID}
	}
	if f.Status != "" {
		exprs = append(exprs, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var (
		items   []entities.QuoteRequest
		lastKey map[string]types.AttributeValue
	)
	for {
		input.ExclusiveStartKey = lastKey
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuoteRequestItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toQuoteRequestItem(q entities.QuoteRequest) quoteRequestItem {
	it := quoteRequestItem{
		ID:             q.ID,
		ContratanteID:  q.ContratanteID,
		ProfissionalID: q.ProfissionalID,
		Titulo:         q.Titulo,
		Descricao:      q.Descricao,
		Cidade:         q.Cidade,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.DataDesejadaIni != nil {
		it.DataDesejadaIni = q.DataDesejadaIni.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	q := entities.QuoteRequest{
		ID:             it.ID,
		ContratanteID:  it.ContratanteID,
		ProfissionalID: it.ProfissionalID,
		Titulo:         it.Titulo,
		Descricao:      it.Descricao,
		Cidade:         it.Cidade,
		Status:         entities.QuoteRequestStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.DataDesejadaIni != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.DataDesejadaIni); err == nil {
			q.DataDesejadaIni = &t
		}
	}
	return q
}
