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

const (
	defaultJobsTableName = "jobs"
	jobsIDIndex          = "id-index"
)

type jobItem struct {
	SolicitacaoID  string `dynamodbav:"solicitacao_id"`
	ID             string `dynamodbav:"id"`
	PropostaID     string `dynamodbav:"proposta_id"`
	ContratanteID  string `dynamodbav:"contratante_id"`
	ProfissionalID string `dynamodbav:"profissional_id"`
	Cidade         string `dynamodbav:"cidade,omitempty"`
	Titulo         string `dynamodbav:"titulo"`
	CriadoEm       string `dynamodbav:"criado_em"`
}

// JobDynamoRepository reads jobs from DynamoDB. Writes happen exclusively in
// the proposal accept transaction.
//
// Table requirements:
//   - PK: solicitacao_id (string) — one job per solicitação
//   - GSI: id-index (PK: id)

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Items) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) GetBySolicitacaoID(ctx context.Context, solicitacaoID string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"solicitacao_id": &types.AttributeValueMemberS{Value: solicitacaoID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) List(ctx context.Context, f interfaces.JobFilter) ([]entities.Job, error) {
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

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var (
		items   []entities.Job
		lastKey map[string]types.AttributeValue
	)
	for {
		input.ExclusiveStartKey = lastKey
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromJobItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		SolicitacaoID:  j.SolicitacaoID,
		ID:             j.ID,
		PropostaID:     j.PropostaID,
		ContratanteID:  j.ContratanteID,
		ProfissionalID: j.ProfissionalID,
		Cidade:         j.Cidade,
		Titulo:         j.Titulo,
		CriadoEm:       j.CriadoEm.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobItem(it jobItem) entities.Job {
	criadoEm, _ := time.Parse(time.RFC3339Nano, it.CriadoEm)
	return entities.Job{
		SolicitacaoID:  it.SolicitacaoID,
		ID:             it.ID,
		PropostaID:     it.PropostaID,
		ContratanteID:  it.ContratanteID,
		ProfissionalID: it.ProfissionalID,
		Cidade:         it.Cidade,
		Titulo:         it.Titulo,
		CriadoEm:       criadoEm,
	}
}
