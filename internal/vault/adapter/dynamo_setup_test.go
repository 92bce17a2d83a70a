package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/dynamo"
)

type stubTableCreator struct {
	createFn func(ctx context.Context, params *dynamo.CreateTableInput, optFns ...func(*dynamo.Options)) (*dynamo.CreateTableOutput, error)
}

func (s *stubTableCreator) CreateTable(ctx context.Context, params *dynamo.CreateTableInput, optFns ...func(*dynamo.Options)) (*dynamo.CreateTableOutput, error) {
	return s.createFn(ctx, params, optFns...)
}

var _ tableCreator = (*stubTableCreator)(nil)

func TestEnsureTables(t *testing.T) {
	ctx := context.Background()

	t.Run("creates both tables with their schemas", func(t *testing.T) {
		var inputs []*dynamo.CreateTableInput
		stub := &stubTableCreator{
			createFn: func(_ context.Context, params *dynamo.CreateTableInput, _ ...func(*dynamo.Options)) (*dynamo.CreateTableOutput, error) {
				inputs = append(inputs, params)
				return &dynamo.CreateTableOutput{}, nil
			},
		}

		err := EnsureTables(ctx, stub, "entities", "entity_tokens")
		require.NoError(t, err)
		require.Len(t, inputs, 2)

		entity := inputs[0]
		assert.Equal(t, "entities", *entity.TableName)
		require.Len(t, entity.GlobalSecondaryIndexes, 2)
		assert.Equal(t, "phone_number_hash-index", *entity.GlobalSecondaryIndexes[0].IndexName)
		assert.Equal(t, "device_id-index", *entity.GlobalSecondaryIndexes[1].IndexName)

		token := inputs[1]
		assert.Equal(t, "entity_tokens", *token.TableName)
		require.Len(t, token.KeySchema, 2)
		assert.Equal(t, "eid", *token.KeySchema[0].AttributeName)
		assert.Equal(t, "sk", *token.KeySchema[1].AttributeName)
	})

	t.Run("existing tables are not an error", func(t *testing.T) {
		stub := &stubTableCreator{
			createFn: func(context.Context, *dynamo.CreateTableInput, ...func(*dynamo.Options)) (*dynamo.CreateTableOutput, error) {
				return nil, dynamo.ErrResourceInUse()
			},
		}

		err := EnsureTables(ctx, stub, "entities", "entity_tokens")
		assert.NoError(t, err)
	})

	t.Run("other failures surface", func(t *testing.T) {
		boom := errors.New("throttled")
		stub := &stubTableCreator{
			createFn: func(context.Context, *dynamo.CreateTableInput, ...func(*dynamo.Options)) (*dynamo.CreateTableOutput, error) {
				return nil, boom
			},
		}

		err := EnsureTables(ctx, stub, "entities", "entity_tokens")
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}
