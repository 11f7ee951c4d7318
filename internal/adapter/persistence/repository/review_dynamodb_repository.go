package repository

import (
	"context"
	"errors"
	"time"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAvaliacoesTableName = "avaliacoes"
	avaliacoesAvaliadoIndex    = "avaliado_id-index"
)

type reviewItem struct {
	JobID       string `dynamodbav:"job_id"`
	Tipo        string `dynamodbav:"tipo"`
	AvaliadorID string `dynamodbav:"avaliador_id"`
	AvaliadoID  string `dynamodbav:"avaliado_id"`
	Nota        int    `dynamodbav:"nota"`
	Comentario  string `dynamodbav:"comentario,omitempty"`
	CriadoEm    string `dynamodbav:"criado_em"`
}

// ReviewDynamoRepository persists avaliações in DynamoDB.
//
// Table requirements:
//   - PK: job_id (string), SK: tipo (string) — one rating per job per direction
//   - GSI: avaliado_id-index (PK: avaliado_id)

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AVALIACOES_TABLE", defaultAvaliacoesTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rev entities.Review) (entities.Review, error) {
	it := toReviewItem(rev)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#job_id) AND attribute_not_exists(#tipo)"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
			"#tipo":   "tipo",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Review{}, nil
		}
		return entities.Review{}, err
	}
	return rev, nil
}

func (r *ReviewDynamoRepository) ListByAvaliadoID(ctx context.Context, avaliadoID string) ([]entities.Review, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(avaliacoesAvaliadoIndex),
		KeyConditionExpression: aws.String("avaliado_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: avaliadoID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Review, 0, len(out.Items))
	for _, raw := range out.Items {
		var it reviewItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReviewItem(it))
	}
	return items, nil
}

func toReviewItem(rev entities.Review) reviewItem {
	return reviewItem{
		JobID:       rev.JobID,
		Tipo:        string(rev.Tipo),
		AvaliadorID: rev.AvaliadorID,
		AvaliadoID:  rev.AvaliadoID,
		Nota:        rev.Nota,
		Comentario:  rev.Comentario,
		CriadoEm:    rev.CriadoEm.UTC().Format(time.RFC3339Nano),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	criadoEm, _ := time.Parse(time.RFC3339Nano, it.CriadoEm)
	return entities.Review{
		JobID:       it.JobID,
		Tipo:        entities.ReviewTipo(it.Tipo),
		AvaliadorID: it.AvaliadorID,
		AvaliadoID:  it.AvaliadoID,
		Nota:        it.Nota,
		Comentario:  it.Comentario,
		CriadoEm:    criadoEm,
	}
}
