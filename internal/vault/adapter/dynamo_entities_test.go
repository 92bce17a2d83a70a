package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/dynamo"
)

// ---------------------------------------------------------------------------
// Stub — implements entityDynamoDB for unit tests.
// ---------------------------------------------------------------------------

type stubEntityDynamo struct {
	getItemFn    func(ctx context.Context, params *dynamo.GetItemInput, optFns ...func(*dynamo.Options)) (*dynamo.GetItemOutput, error)
	putItemFn    func(ctx context.Context, params *dynamo.PutItemInput, optFns ...func(*dynamo.Options)) (*dynamo.PutItemOutput, error)
	queryFn      func(ctx context.Context, params *dynamo.QueryInput, optFns ...func(*dynamo.Options)) (*dynamo.QueryOutput, error)
	deleteItemFn func(ctx context.Context, params *dynamo.DeleteItemInput, optFns ...func(*dynamo.Options)) (*dynamo.DeleteItemOutput, error)
}

func (s *stubEntityDynamo) GetItem(ctx context.Context, params *dynamo.GetItemInput, optFns ...func(*dynamo.Options)) (*dynamo.GetItemOutput, error) {
	return s.getItemFn(ctx, params, optFns...)
}

func (s *stubEntityDynamo) PutItem(ctx context.Context, params *dynamo.PutItemInput, optFns ...func(*dynamo.Options)) (*dynamo.PutItemOutput, error) {
	return s.putItemFn(ctx, params, optFns...)
}

func (s *stubEntityDynamo) Query(ctx context.Context, params *dynamo.QueryInput, optFns ...func(*dynamo.Options)) (*dynamo.QueryOutput, error) {
	return s.queryFn(ctx, params, optFns...)
}

func (s *stubEntityDynamo) DeleteItem(ctx context.Context, params *dynamo.DeleteItemInput, optFns ...func(*dynamo.Options)) (*dynamo.DeleteItemOutput, error) {
	return s.deleteItemFn(ctx, params, optFns...)
}

var _ entityDynamoDB = (*stubEntityDynamo)(nil)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const entitiesTable = "entities"

func sampleEntity(t *testing.T) *domain.Entity {
	t.Helper()
	eid := domain.DeriveEID("11aa22bb33cc44dd55ee66ff77aa88bb11aa22bb33cc44dd55ee66ff77aa88bb")
	return &domain.Entity{
		EID:                   eid,
		PhoneNumberHash:       "11aa22bb33cc44dd55ee66ff77aa88bb11aa22bb33cc44dd55ee66ff77aa88bb",
		PasswordHash:          "ffeeddccbbaa99887766554433221100ffeeddccbbaa99887766554433221100",
		CountryCodeCiphertext: "Y2lwaGVy",
		DeviceID:              "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		ClientPublishPubKey:   "cHVibGlzaC1rZXktMzItYnl0ZXMtcGFkZGluZz0=",
		ClientDeviceIDPubKey:  "ZGV2aWNlLWtleS0zMi1ieXRlcy1wYWRkaW5nPT0=",
		PublishKeypair:        []byte{0x01, 0x02},
		DeviceIDKeypair:       []byte{0x03, 0x04},
		ServerState:           []byte{0x05},
		CreatedAt:             time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:             time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestEntityStore_Create(t *testing.T) {
	t.Run("puts with existence guard", func(t *testing.T) {
		var gotCond string
		var gotNames map[string]string
		stub := &stubEntityDynamo{
			putItemFn: func(_ context.Context, params *dynamo.PutItemInput, _ ...func(*dynamo.Options)) (*dynamo.PutItemOutput, error) {
				assert.Equal(t, entitiesTable, *params.TableName)
				gotCond = *params.ConditionExpression
				gotNames = params.ExpressionAttributeNames
				return &dynamo.PutItemOutput{}, nil
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		err := store.Create(context.Background(), sampleEntity(t))

		require.NoError(t, err)
		assert.Contains(t, gotCond, "attribute_not_exists")
		assert.Equal(t, map[string]string{"#0": "eid"}, gotNames)
	})

	t.Run("conditional failure maps to ErrAlreadyExists", func(t *testing.T) {
		stub := &stubEntityDynamo{
			putItemFn: func(_ context.Context, _ *dynamo.PutItemInput, _ ...func(*dynamo.Options)) (*dynamo.PutItemOutput, error) {
				return nil, dynamo.ErrConditionalCheckFailed()
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		err := store.Create(context.Background(), sampleEntity(t))

		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("other errors wrap with context", func(t *testing.T) {
		stub := &stubEntityDynamo{
			putItemFn: func(_ context.Context, _ *dynamo.PutItemInput, _ ...func(*dynamo.Options)) (*dynamo.PutItemOutput, error) {
				return nil, errors.New("connection refused")
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		err := store.Create(context.Background(), sampleEntity(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "entity store: create")
	})
}

func TestEntityStore_Update(t *testing.T) {
	t.Run("conditional failure maps to ErrNotFound", func(t *testing.T) {
		stub := &stubEntityDynamo{
			putItemFn: func(_ context.Context, params *dynamo.PutItemInput, _ ...func(*dynamo.Options)) (*dynamo.PutItemOutput, error) {
				assert.Contains(t, *params.ConditionExpression, "attribute_exists")
				assert.Equal(t, map[string]string{"#0": "eid"}, params.ExpressionAttributeNames)
				return nil, dynamo.ErrConditionalCheckFailed()
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		err := store.Update(context.Background(), sampleEntity(t))

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEntityStore_GetByEID(t *testing.T) {
	want := sampleEntity(t)

	t.Run("round trips through the item shape", func(t *testing.T) {
		stub := &stubEntityDynamo{
			getItemFn: func(_ context.Context, params *dynamo.GetItemInput, _ ...func(*dynamo.Options)) (*dynamo.GetItemOutput, error) {
				require.NotNil(t, params.ConsistentRead)
				assert.True(t, *params.ConsistentRead)

				av, err := dynamo.MarshalMap(toEntityItem(want))
				require.NoError(t, err)
				return &dynamo.GetItemOutput{Item: av}, nil
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		got, err := store.GetByEID(context.Background(), want.EID)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("nil item returns ErrNotFound", func(t *testing.T) {
		stub := &stubEntityDynamo{
			getItemFn: func(_ context.Context, _ *dynamo.GetItemInput, _ ...func(*dynamo.Options)) (*dynamo.GetItemOutput, error) {
				return &dynamo.GetItemOutput{Item: nil}, nil
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		_, err := store.GetByEID(context.Background(), want.EID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEntityStore_FindByPhoneHash(t *testing.T) {
	want := sampleEntity(t)

	t.Run("queries the GSI then fetches the full item", func(t *testing.T) {
		stub := &stubEntityDynamo{
			queryFn: func(_ context.Context, params *dynamo.QueryInput, _ ...func(*dynamo.Options)) (*dynamo.QueryOutput, error) {
				assert.Equal(t, "phone_number_hash-index", *params.IndexName)
				require.NotNil(t, params.KeyConditionExpression)
				assert.Equal(t, map[string]string{"#0": "phone_number_hash"}, params.ExpressionAttributeNames)
				hash, ok := params.ExpressionAttributeValues[":0"].(*dynamo.AttributeValueMemberS)
				require.True(t, ok)
				assert.Equal(t, want.PhoneNumberHash, hash.Value)
				av, err := dynamo.MarshalMap(map[string]string{"eid": want.EID.String()})
				require.NoError(t, err)
				return &dynamo.QueryOutput{Items: []map[string]dynamo.AttributeValue{av}}, nil
			},
			getItemFn: func(_ context.Context, _ *dynamo.GetItemInput, _ ...func(*dynamo.Options)) (*dynamo.GetItemOutput, error) {
				av, err := dynamo.MarshalMap(toEntityItem(want))
				require.NoError(t, err)
				return &dynamo.GetItemOutput{Item: av}, nil
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		got, err := store.FindByPhoneHash(context.Background(), want.PhoneNumberHash)

		require.NoError(t, err)
		assert.Equal(t, want.EID, got.EID)
	})

	t.Run("empty query result returns ErrNotFound", func(t *testing.T) {
		stub := &stubEntityDynamo{
			queryFn: func(_ context.Context, _ *dynamo.QueryInput, _ ...func(*dynamo.Options)) (*dynamo.QueryOutput, error) {
				return &dynamo.QueryOutput{}, nil
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		_, err := store.FindByPhoneHash(context.Background(), "no-such-hash")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("cancelled context stops before the GetItem step", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		stub := &stubEntityDynamo{
			queryFn: func(_ context.Context, _ *dynamo.QueryInput, _ ...func(*dynamo.Options)) (*dynamo.QueryOutput, error) {
				av, err := dynamo.MarshalMap(map[string]string{"eid": want.EID.String()})
				require.NoError(t, err)
				cancel()
				return &dynamo.QueryOutput{Items: []map[string]dynamo.AttributeValue{av}}, nil
			},
			getItemFn: func(_ context.Context, _ *dynamo.GetItemInput, _ ...func(*dynamo.Options)) (*dynamo.GetItemOutput, error) {
				t.Fatal("GetItem must not be called after cancellation")
				return nil, nil
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		_, err := store.FindByPhoneHash(ctx, want.PhoneNumberHash)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEntityStore_FindByDeviceID(t *testing.T) {
	want := sampleEntity(t)

	stub := &stubEntityDynamo{
		queryFn: func(_ context.Context, params *dynamo.QueryInput, _ ...func(*dynamo.Options)) (*dynamo.QueryOutput, error) {
			assert.Equal(t, "device_id-index", *params.IndexName)
			av, err := dynamo.MarshalMap(map[string]string{"eid": want.EID.String()})
			require.NoError(t, err)
			return &dynamo.QueryOutput{Items: []map[string]dynamo.AttributeValue{av}}, nil
		},
		getItemFn: func(_ context.Context, _ *dynamo.GetItemInput, _ ...func(*dynamo.Options)) (*dynamo.GetItemOutput, error) {
			av, err := dynamo.MarshalMap(toEntityItem(want))
			require.NoError(t, err)
			return &dynamo.GetItemOutput{Item: av}, nil
		},
	}
	store := NewEntityStore(stub, entitiesTable)

	got, err := store.FindByDeviceID(context.Background(), want.DeviceID)

	require.NoError(t, err)
	assert.Equal(t, want.DeviceID, got.DeviceID)
}

func TestEntityStore_Delete(t *testing.T) {
	eid := sampleEntity(t).EID

	t.Run("deletes with existence guard", func(t *testing.T) {
		stub := &stubEntityDynamo{
			deleteItemFn: func(_ context.Context, params *dynamo.DeleteItemInput, _ ...func(*dynamo.Options)) (*dynamo.DeleteItemOutput, error) {
				assert.Contains(t, *params.ConditionExpression, "attribute_exists")
				assert.Equal(t, map[string]string{"#0": "eid"}, params.ExpressionAttributeNames)
				return &dynamo.DeleteItemOutput{}, nil
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		assert.NoError(t, store.Delete(context.Background(), eid))
	})

	t.Run("absent entity maps to ErrNotFound", func(t *testing.T) {
		stub := &stubEntityDynamo{
			deleteItemFn: func(_ context.Context, _ *dynamo.DeleteItemInput, _ ...func(*dynamo.Options)) (*dynamo.DeleteItemOutput, error) {
				return nil, dynamo.ErrConditionalCheckFailed()
			},
		}
		store := NewEntityStore(stub, entitiesTable)

		assert.ErrorIs(t, store.Delete(context.Background(), eid), domain.ErrNotFound)
	})
}
