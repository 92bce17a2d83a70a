package dynamo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/dynamo"
)

func TestNewClientWithEndpoint(t *testing.T) {
	ctx := context.Background()

	client, err := dynamo.NewClient(ctx, dynamo.Config{
		Endpoint: "http://localhost:4566",
		Region:   "us-east-1",
		Timeout:  5 * time.Second,
	})

	require.NoError(t, err)
	require.NotNil(t, client)
	require.NotNil(t, client.DB)
}

func TestNewClientWithDefaultEndpoint(t *testing.T) {
	ctx := context.Background()

	client, err := dynamo.NewClient(ctx, dynamo.Config{
		Region:  "us-east-1",
		Timeout: 5 * time.Second,
	})

	require.NoError(t, err)
	require.NotNil(t, client)
	require.NotNil(t, client.DB)
}

func TestBuildCondition(t *testing.T) {
	expr, err := dynamo.BuildCondition(dynamo.AttributeNotExists(dynamo.Name("eid")))

	require.NoError(t, err)
	require.NotNil(t, expr.Condition())
	assert.Contains(t, *expr.Condition(), "attribute_not_exists")
	assert.Equal(t, map[string]string{"#0": "eid"}, expr.Names())
	// No value placeholders for an existence check; a nil map keeps the
	// ExpressionAttributeValues field absent from the request.
	assert.Nil(t, expr.Values())
}

func TestBuildKeyCondition(t *testing.T) {
	expr, err := dynamo.BuildKeyCondition(
		dynamo.KeyEqual(dynamo.Key("device_id"), dynamo.Value("abc123")),
	)

	require.NoError(t, err)
	require.NotNil(t, expr.KeyCondition())
	assert.Equal(t, map[string]string{"#0": "device_id"}, expr.Names())

	val, ok := expr.Values()[":0"].(*dynamo.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "abc123", val.Value)
}
