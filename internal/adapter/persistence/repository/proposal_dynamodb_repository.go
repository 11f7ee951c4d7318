package repository

import (
	"context"
	"errors"
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
	defaultPropostasTableName = "propostas"
	propostasIDIndex          = "id-index"
)

type proposalItem struct {
	SolicitacaoID      string `dynamodbav:"solicitacao_id"`
	ProfissionalID     string `dynamodbav:"profissional_id"`
	ID                 string `dynamodbav:"id"`
	ValorMaoObraCents  int64  `dynamodbav:"valor_mao_obra_cents"`
	ValorMaterialCents int64  `dynamodbav:"valor_material_cents"`
	DataInicioPrevista string `dynamodbav:"data_inicio_prevista,omitempty"`
	DataFimPrevista    string `dynamodbav:"data_fim_prevista,omitempty"`
	ValidadeAte        string `dynamodbav:"validade_ate"`
	Mensagem           string `dynamodbav:"mensagem,omitempty"`
	Status             string `dynamodbav:"status"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists propostas in DynamoDB.
//
// Table requirements:
//   - PK: solicitacao_id (string), SK: profissional_id (string)
//   - GSI: id-index (PK: id)
//
// The composite primary key makes the "one proposta per (solicitação,
// profissional)" invariant a storage-level guarantee: the conditional put in
// Create cannot be raced into a duplicate.
//
// AcceptAndCreateJob also touches the jobs and solicitações tables, so this
// repository carries all three table names. Keeping the transaction in one
// place is what lets accept+job+close commit or fail as a unit.

type ProposalDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	jobsTableName     string
	solicitacoesTable string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("PROPOSTAS_TABLE", defaultPropostasTableName),
		jobsTableName:     getenvDefault("JOBS_TABLE", defaultJobsTableName),
		solicitacoesTable: getenvDefault("SOLICITACOES_TABLE", defaultSolicitacoesTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sid) AND attribute_not_exists(#pid)"),
		ExpressionAttributeNames: map[string]string{
			"#sid": "solicitacao_id",
			"#pid": "profissional_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(propostasIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Items) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) GetByPair(ctx context.Context, solicitacaoID, profissionalID string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            proposalKey(solicitacaoID, profissionalID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) List(ctx context.Context, f interfaces.ProposalFilter) ([]entities.Proposal, error) {
	// Listing by solicitação hits the primary key; everything else scans.
	if f.SolicitacaoID != "" {
		return r.listBySolicitacao(ctx, f)
	}
	return r.scan(ctx, f)
}

func (r *ProposalDynamoRepository) listBySolicitacao(ctx context.Context, f interfaces.ProposalFilter) ([]entities.Proposal, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("solicitacao_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: f.SolicitacaoID},
		},
	}
	if f.ProfissionalID != "" {
		input.KeyConditionExpression = aws.String("solicitacao_id = :sid AND profissional_id = :pid")
		input.ExpressionAttributeValues[":pid"] = &types.AttributeValueMemberS{Value: f.ProfissionalID}
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}
	return unmarshalProposals(out.Items)
}

func (r *ProposalDynamoRepository) scan(ctx context.Context, f interfaces.ProposalFilter) ([]entities.Proposal, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if f.ProfissionalID != "" {
		input.FilterExpression = aws.String("#pid = :pid")
		input.ExpressionAttributeNames = map[string]string{"#pid": "profissional_id"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: f.ProfissionalID},
		}
	}

	var (
		items   []entities.Proposal
		lastKey map[string]types.AttributeValue
	)
	for {
		input.ExclusiveStartKey = lastKey
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalProposals(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, solicitacaoID, profissionalID string, from, to entities.ProposalStatus) (entities.Proposal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 proposalKey(solicitacaoID, profissionalID),
		ConditionExpression: aws.String("#status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

// AcceptAndCreateJob commits three writes as one transaction:
//  1. proposta status pendente → aceita (condition: still pendente)
//  2. job put (condition: no job for this solicitação yet)
//  3. solicitação status → fechada
//
// Any failed condition cancels the whole transaction, which is how at most
// one job per solicitação survives concurrent accepts.
func (r *ProposalDynamoRepository) AcceptAndCreateJob(ctx context.Context, p entities.Proposal, job entities.Job) (entities.Proposal, error) {
	nowT := time.Now().UTC()
	now := nowT.Format(time.RFC3339Nano)

	jobAV, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 proposalKey(p.SolicitacaoID, p.ProfissionalID),
					ConditionExpression: aws.String("#status = :pendente"),
					UpdateExpression:    aws.String("SET #status = :aceita, #updated_at = :updated_at"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pendente":   &types.AttributeValueMemberS{Value: string(entities.ProposalStatusPendente)},
						":aceita":     &types.AttributeValueMemberS{Value: string(entities.ProposalStatusAceita)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
					ExpressionAttributeNames: map[string]string{
						"#status":     "status",
						"#updated_at": "updated_at",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.jobsTableName),
					Item:                jobAV,
					ConditionExpression: aws.String("attribute_not_exists(#sid)"),
					ExpressionAttributeNames: map[string]string{
						"#sid": "solicitacao_id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.solicitacoesTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: p.SolicitacaoID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression:    aws.String("SET #status = :fechada, #updated_at = :updated_at"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":fechada":    &types.AttributeValueMemberS{Value: string(entities.QuoteRequestStatusFechada)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
					ExpressionAttributeNames: mergeNames(map[string]string{"#id": "id"}, map[string]string{
						"#status":     "status",
						"#updated_at": "updated_at",
					}),
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Proposal{}, nil
				}
			}
		}
		return entities.Proposal{}, err
	}

	p.Status = entities.ProposalStatusAceita
	p.UpdatedAt = nowT
	return p, nil
}

func proposalKey(solicitacaoID, profissionalID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"solicitacao_id":  &types.AttributeValueMemberS{Value: solicitacaoID},
		"profissional_id": &types.AttributeValueMemberS{Value: profissionalID},
	}
}

func unmarshalProposals(raw []map[string]types.AttributeValue) ([]entities.Proposal, error) {
	items := make([]entities.Proposal, 0, len(raw))
	for _, m := range raw {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalItem(it))
	}
	return items, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	it := proposalItem{
		SolicitacaoID:      p.SolicitacaoID,
		ProfissionalID:     p.ProfissionalID,
		ID:                 p.ID,
		ValorMaoObraCents:  p.ValorMaoObraCents,
		ValorMaterialCents: p.ValorMaterialCents,
		ValidadeAte:        p.ValidadeAte.UTC().Format(time.RFC3339Nano),
		Mensagem:           p.Mensagem,
		Status:             string(p.Status),
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.DataInicioPrevista != nil {
		it.DataInicioPrevista = p.DataInicioPrevista.UTC().Format(time.RFC3339Nano)
	}
	if p.DataFimPrevista != nil {
		it.DataFimPrevista = p.DataFimPrevista.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromProposalItem(it proposalItem) entities.Proposal {
	validadeAte, _ := time.Parse(time.RFC3339Nano, it.ValidadeAte)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.Proposal{
		SolicitacaoID:      it.SolicitacaoID,
		ProfissionalID:     it.ProfissionalID,
		ID:                 it.ID,
		ValorMaoObraCents:  it.ValorMaoObraCents,
		ValorMaterialCents: it.ValorMaterialCents,
		ValidadeAte:        validadeAte,
		Mensagem:           strings.TrimSpace(it.Mensagem),
		Status:             entities.ProposalStatus(it.Status),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.DataInicioPrevista != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.DataInicioPrevista); err == nil {
			p.DataInicioPrevista = &t
		}
	}
	if it.DataFimPrevista != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.DataFimPrevista); err == nil {
			p.DataFimPrevista = &t
		}
	}
	return p
}
