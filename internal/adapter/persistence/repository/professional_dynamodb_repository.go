package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"workbridge/internal/domain/entities"
	"workbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfessionalsTableName = "professionals"

type portfolioItemAttr struct {
	Titulo    string `dynamodbav:"titulo"`
	Descricao string `dynamodbav:"descricao,omitempty"`
	ImagemURL string `dynamodbav:"imagem_url"`
}

type professionalItem struct {
	ID                 string              `dynamodbav:"id"`
	Nome               string              `dynamodbav:"nome"`
	Especialidade      string              `dynamodbav:"especialidade"`
	Especialidades     []string            `dynamodbav:"especialidades"`
	Cidade             string              `dynamodbav:"cidade"`
	Estado             string              `dynamodbav:"estado"`
	Nota               string              `dynamodbav:"nota"`
	ServicosConcluidos int                 `dynamodbav:"servicos_concluidos"`
	FotoURL            string              `dynamodbav:"foto_url,omitempty"`
	Descricao          string              `dynamodbav:"descricao,omitempty"`
	Portfolio          []portfolioItemAttr `dynamodbav:"portfolio,omitempty"`
	CreatedAt          string              `dynamodbav:"created_at"`
	UpdatedAt          string              `dynamodbav:"updated_at"`
}

// ProfessionalDynamoRepository persists the professional catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The matcher pulls the whole catalog per search and filters in memory, so the
// table only needs key access plus a scan.

type ProfessionalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfessionalRepository = (*ProfessionalDynamoRepository)(nil)

func NewProfessionalDynamoRepository(ddb *dynamodb.Client) *ProfessionalDynamoRepository {
	return &ProfessionalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFESSIONALS_TABLE", defaultProfessionalsTableName),
	}
}

func (r *ProfessionalDynamoRepository) List(ctx context.Context) ([]entities.Professional, error) {
	var (
		items   []entities.Professional
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it professionalItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromProfessionalItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *ProfessionalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Professional, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Professional{}, err
	}
	if len(out.Item) == 0 {
		return entities.Professional{}, nil
	}

	var it professionalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Professional{}, err
	}
	return fromProfessionalItem(it), nil
}

func (r *ProfessionalDynamoRepository) UpdateNota(ctx context.Context, id string, nota float64) (entities.Professional, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #nota = :nota, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nota":       &types.AttributeValueMemberN{Value: floatToString(nota)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#nota":       "nota",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Professional{}, nil
		}
		return entities.Professional{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Professional{}, nil
	}

	var it professionalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Professional{}, err
	}
	return fromProfessionalItem(it), nil
}

func fromProfessionalItem(it professionalItem) entities.Professional {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	nota, _ := strconv.ParseFloat(it.Nota, 64)

	portfolio := make([]entities.PortfolioItem, 0, len(it.Portfolio))
	for _, p := range it.Portfolio {
		portfolio = append(portfolio, entities.PortfolioItem{
			Titulo:    p.Titulo,
			Descricao: p.Descricao,
			ImagemURL: p.ImagemURL,
		})
	}
	if len(portfolio) == 0 {
		portfolio = nil
	}

	return entities.Professional{
		ID:                 it.ID,
		Nome:               it.Nome,
		Especialidade:      it.Especialidade,
		Especialidades:     it.Especialidades,
		Cidade:             it.Cidade,
		Estado:             it.Estado,
		Nota:               nota,
		ServicosConcluidos: it.ServicosConcluidos,
		FotoURL:            it.FotoURL,
		Descricao:          it.Descricao,
		Portfolio:          portfolio,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
