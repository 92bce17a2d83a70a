package adapter

import (
	"context"
	"fmt"

	"github.com/relaysms/vault/internal/dynamo"
)

// tableCreator is a narrow, consumer-defined interface for table creation.
// The *dynamodb.Client satisfies it.
type tableCreator interface {
	CreateTable(ctx context.Context, params *dynamo.CreateTableInput, optFns ...func(*dynamo.Options)) (*dynamo.CreateTableOutput, error)
}

// EnsureTables creates the entity and token tables when they do not exist.
// This is a development convenience for LocalStack; production tables are
// provisioned out of band. An existing table is not an error.
func EnsureTables(ctx context.Context, db tableCreator, entityTable, tokenTable string) error {
	entityInput := &dynamo.CreateTableInput{
		TableName:   dynamo.String(entityTable),
		BillingMode: dynamo.BillingModePayPerRequest,
		AttributeDefinitions: []dynamo.AttributeDefinition{
			{AttributeName: dynamo.String("eid"), AttributeType: dynamo.ScalarAttributeTypeS},
			{AttributeName: dynamo.String("phone_number_hash"), AttributeType: dynamo.ScalarAttributeTypeS},
			{AttributeName: dynamo.String("device_id"), AttributeType: dynamo.ScalarAttributeTypeS},
		},
		KeySchema: []dynamo.KeySchemaElement{
			{AttributeName: dynamo.String("eid"), KeyType: dynamo.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []dynamo.GlobalSecondaryIndex{
			{
				IndexName: dynamo.String("phone_number_hash-index"),
				KeySchema: []dynamo.KeySchemaElement{
					{AttributeName: dynamo.String("phone_number_hash"), KeyType: dynamo.KeyTypeHash},
				},
				Projection: &dynamo.Projection{ProjectionType: dynamo.ProjectionTypeKeysOnly},
			},
			{
				IndexName: dynamo.String("device_id-index"),
				KeySchema: []dynamo.KeySchemaElement{
					{AttributeName: dynamo.String("device_id"), KeyType: dynamo.KeyTypeHash},
				},
				Projection: &dynamo.Projection{ProjectionType: dynamo.ProjectionTypeKeysOnly},
			},
		},
	}
	if err := createTable(ctx, db, entityInput); err != nil {
		return fmt.Errorf("ensure table %s: %w", entityTable, err)
	}

	tokenInput := &dynamo.CreateTableInput{
		TableName:   dynamo.String(tokenTable),
		BillingMode: dynamo.BillingModePayPerRequest,
		AttributeDefinitions: []dynamo.AttributeDefinition{
			{AttributeName: dynamo.String("eid"), AttributeType: dynamo.ScalarAttributeTypeS},
			{AttributeName: dynamo.String("sk"), AttributeType: dynamo.ScalarAttributeTypeS},
		},
		KeySchema: []dynamo.KeySchemaElement{
			{AttributeName: dynamo.String("eid"), KeyType: dynamo.KeyTypeHash},
			{AttributeName: dynamo.String("sk"), KeyType: dynamo.KeyTypeRange},
		},
	}
	if err := createTable(ctx, db, tokenInput); err != nil {
		return fmt.Errorf("ensure table %s: %w", tokenTable, err)
	}

	return nil
}

func createTable(ctx context.Context, db tableCreator, input *dynamo.CreateTableInput) error {
	_, err := db.CreateTable(ctx, input)
	if err != nil && !dynamo.IsResourceInUse(err) {
		return err
	}
	return nil
}
