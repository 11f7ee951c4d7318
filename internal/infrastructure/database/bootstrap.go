package database

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// tableSpec describes one marketplace table. GSIs project all attributes;
// table sizes here are small enough that projection tuning is not worth it.
type tableSpec struct {
	envName string
	defName string
	keys    []types.KeySchemaElement
	attrs   []types.AttributeDefinition
	gsis    []types.GlobalSecondaryIndex
}

func hashKey(name string) []types.KeySchemaElement {
	return []types.KeySchemaElement{{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}}
}

func hashRangeKey(hash, rng string) []types.KeySchemaElement {
	return []types.KeySchemaElement{
		{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash},
		{AttributeName: aws.String(rng), KeyType: types.KeyTypeRange},
	}
}

func stringAttrs(names ...string) []types.AttributeDefinition {
	out := make([]types.AttributeDefinition, 0, len(names))
	for _, n := range names {
		out = append(out, types.AttributeDefinition{AttributeName: aws.String(n), AttributeType: types.ScalarAttributeTypeS})
	}
	return out
}

func gsi(indexName, hash string) []types.GlobalSecondaryIndex {
	return []types.GlobalSecondaryIndex{{
		IndexName:  aws.String(indexName),
		KeySchema:  hashKey(hash),
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}
}

var marketplaceTables = []tableSpec{
	{envName: "PROFESSIONALS_TABLE", defName: "professionals", keys: hashKey("id"), attrs: stringAttrs("id")},
	{envName: "SOLICITACOES_TABLE", defName: "solicitacoes", keys: hashKey("id"), attrs: stringAttrs("id")},
	{
		envName: "PROPOSTAS_TABLE", defName: "propostas",
		keys:  hashRangeKey("solicitacao_id", "profissional_id"),
		attrs: stringAttrs("solicitacao_id", "profissional_id", "id"),
		gsis:  gsi("id-index", "id"),
	},
	{
		envName: "JOBS_TABLE", defName: "jobs",
		keys:  hashKey("solicitacao_id"),
		attrs: stringAttrs("solicitacao_id", "id"),
		gsis:  gsi("id-index", "id"),
	},
	{
		envName: "AVALIACOES_TABLE", defName: "avaliacoes",
		keys:  hashRangeKey("job_id", "tipo"),
		attrs: stringAttrs("job_id", "tipo", "avaliado_id"),
		gsis:  gsi("avaliado_id-index", "avaliado_id"),
	},
	{envName: "CONVERSAS_TABLE", defName: "conversas", keys: hashKey("id"), attrs: stringAttrs("id")},
	{envName: "MENSAGENS_TABLE", defName: "mensagens", keys: hashRangeKey("conversa_id", "sort_key"), attrs: stringAttrs("conversa_id", "sort_key")},
}

// BootstrapEnabled reports whether table creation at startup was requested via
// DYNAMODB_BOOTSTRAP. Meant for local DynamoDB; real environments provision
// tables out of band.
func BootstrapEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(getenvDefault("DYNAMODB_BOOTSTRAP", ""))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// EnsureTables creates every marketplace table that does not exist yet.
// Existing tables are left untouched.
func EnsureTables(ctx context.Context, client *dynamodb.Client) error {
	for _, spec := range marketplaceTables {
		name := getenvDefault(spec.envName, spec.defName)
		input := &dynamodb.CreateTableInput{
			TableName:            aws.String(name),
			KeySchema:            spec.keys,
			AttributeDefinitions: spec.attrs,
			BillingMode:          types.BillingModePayPerRequest,
		}
		if len(spec.gsis) > 0 {
			input.GlobalSecondaryIndexes = spec.gsis
		}

		if _, err := client.CreateTable(ctx, input); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return err
		}
		log.Printf("[database][bootstrap] created table %s", name)
	}
	return nil
}
