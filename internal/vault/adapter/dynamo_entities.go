// Package adapter implements the vault's outbound dependencies: DynamoDB
// stores for entities and tokens, the Redis-backed OTP gateway, SMS delivery
// via SNS, and the Secrets Manager salt loader.
package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/dynamo"
)

// entityDynamoDB is a narrow, consumer-defined interface for the DynamoDB
// operations the entity store needs. The *dynamodb.Client satisfies it.
type entityDynamoDB interface {
	GetItem(ctx context.Context, params *dynamo.GetItemInput, optFns ...func(*dynamo.Options)) (*dynamo.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamo.PutItemInput, optFns ...func(*dynamo.Options)) (*dynamo.PutItemOutput, error)
	Query(ctx context.Context, params *dynamo.QueryInput, optFns ...func(*dynamo.Options)) (*dynamo.QueryOutput, error)
	DeleteItem(ctx context.Context, params *dynamo.DeleteItemInput, optFns ...func(*dynamo.Options)) (*dynamo.DeleteItemOutput, error)
}

// entityItem is the DynamoDB item shape for the entities table.
type entityItem struct {
	EID                  string `dynamodbav:"eid"`
	PhoneNumberHash      string `dynamodbav:"phone_number_hash"`
	PasswordHash         string `dynamodbav:"password_hash"`
	CountryCode          string `dynamodbav:"country_code"`
	DeviceID             string `dynamodbav:"device_id"`
	ClientPublishPubKey  string `dynamodbav:"client_publish_pub_key"`
	ClientDeviceIDPubKey string `dynamodbav:"client_device_id_pub_key"`
	PublishKeypair       []byte `dynamodbav:"publish_keypair"`
	DeviceIDKeypair      []byte `dynamodbav:"device_id_keypair"`
	ServerState          []byte `dynamodbav:"server_state"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

func toEntityItem(e *domain.Entity) *entityItem {
	return &entityItem{
		EID:                  e.EID.String(),
		PhoneNumberHash:      e.PhoneNumberHash,
		PasswordHash:         e.PasswordHash,
		CountryCode:          e.CountryCodeCiphertext,
		DeviceID:             e.DeviceID,
		ClientPublishPubKey:  e.ClientPublishPubKey,
		ClientDeviceIDPubKey: e.ClientDeviceIDPubKey,
		PublishKeypair:       e.PublishKeypair,
		DeviceIDKeypair:      e.DeviceIDKeypair,
		ServerState:          e.ServerState,
		CreatedAt:            e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEntityItem(item *entityItem) (*domain.Entity, error) {
	eid, err := domain.NewEID(item.EID)
	if err != nil {
		return nil, fmt.Errorf("entity store: bad eid %q: %w", item.EID, err)
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, item.UpdatedAt)
	return &domain.Entity{
		EID:                   eid,
		PhoneNumberHash:       item.PhoneNumberHash,
		PasswordHash:          item.PasswordHash,
		CountryCodeCiphertext: item.CountryCode,
		DeviceID:              item.DeviceID,
		ClientPublishPubKey:   item.ClientPublishPubKey,
		ClientDeviceIDPubKey:  item.ClientDeviceIDPubKey,
		PublishKeypair:        item.PublishKeypair,
		DeviceIDKeypair:       item.DeviceIDKeypair,
		ServerState:           item.ServerState,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}, nil
}

// EntityStore persists entities in DynamoDB. The table is keyed on eid with
// GSIs phone_number_hash-index and device_id-index for the two lookups the
// vault performs.
type EntityStore struct {
	db         entityDynamoDB
	tableName  string
	phoneIndex string
	deviceIdx  string
}

// NewEntityStore creates an EntityStore backed by the given DynamoDB client.
func NewEntityStore(db entityDynamoDB, tableName string) *EntityStore {
	return &EntityStore{
		db:         db,
		tableName:  tableName,
		phoneIndex: "phone_number_hash-index",
		deviceIdx:  "device_id-index",
	}
}

// Create persists a new entity. The conditional expression makes creation
// first-writer-wins: a concurrent create for the same eid surfaces as
// domain.ErrAlreadyExists.
func (s *EntityStore) Create(ctx context.Context, e *domain.Entity) error {
	item, err := dynamo.MarshalMap(toEntityItem(e))
	if err != nil {
		return fmt.Errorf("entity store: marshal: %w", err)
	}

	expr, err := dynamo.BuildCondition(dynamo.AttributeNotExists(dynamo.Name("eid")))
	if err != nil {
		return fmt.Errorf("entity store: build condition: %w", err)
	}
	_, err = s.db.PutItem(ctx, &dynamo.PutItemInput{
		TableName:                &s.tableName,
		Item:                     item,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		if dynamo.IsConditionalCheckFailed(err) {
			return fmt.Errorf("entity store: create: %w", domain.ErrAlreadyExists)
		}
		return fmt.Errorf("entity store: create: %w", err)
	}
	return nil
}

// Update overwrites the entity item. The condition requires the item to
// exist so an update never resurrects a deleted entity.
func (s *EntityStore) Update(ctx context.Context, e *domain.Entity) error {
	item, err := dynamo.MarshalMap(toEntityItem(e))
	if err != nil {
		return fmt.Errorf("entity store: marshal: %w", err)
	}

	expr, err := dynamo.BuildCondition(dynamo.AttributeExists(dynamo.Name("eid")))
	if err != nil {
		return fmt.Errorf("entity store: build condition: %w", err)
	}
	_, err = s.db.PutItem(ctx, &dynamo.PutItemInput{
		TableName:                &s.tableName,
		Item:                     item,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		if dynamo.IsConditionalCheckFailed(err) {
			return fmt.Errorf("entity store: update: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("entity store: update: %w", err)
	}
	return nil
}

// GetByEID retrieves an entity with a strongly consistent read.
// Returns domain.ErrNotFound when no entity exists for the given eid.
func (s *EntityStore) GetByEID(ctx context.Context, eid domain.EID) (*domain.Entity, error) {
	out, err := s.db.GetItem(ctx, &dynamo.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]dynamo.AttributeValue{
			"eid": &dynamo.AttributeValueMemberS{Value: eid.String()},
		},
		ConsistentRead: dynamo.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("entity store: get by eid: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("entity store: get by eid: %w", domain.ErrNotFound)
	}

	var item entityItem
	if err := dynamo.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("entity store: unmarshal: %w", err)
	}
	return fromEntityItem(&item)
}

// FindByPhoneHash looks an entity up by phone number hash via the GSI, then
// fetches the full record with a consistent GetItem read. Returns
// domain.ErrNotFound when no entity matches.
func (s *EntityStore) FindByPhoneHash(ctx context.Context, phoneHash string) (*domain.Entity, error) {
	return s.findViaIndex(ctx, s.phoneIndex, "phone_number_hash", phoneHash)
}

// FindByDeviceID looks an entity up by its active device identifier.
// Returns domain.ErrNotFound when no entity holds the device id, which
// callers surface as an authentication failure.
func (s *EntityStore) FindByDeviceID(ctx context.Context, deviceID string) (*domain.Entity, error) {
	return s.findViaIndex(ctx, s.deviceIdx, "device_id", deviceID)
}

func (s *EntityStore) findViaIndex(ctx context.Context, index, attr, value string) (*domain.Entity, error) {
	expr, err := dynamo.BuildKeyCondition(dynamo.KeyEqual(dynamo.Key(attr), dynamo.Value(value)))
	if err != nil {
		return nil, fmt.Errorf("entity store: build key condition: %w", err)
	}

	queryOut, err := s.db.Query(ctx, &dynamo.QueryInput{
		TableName:                 &s.tableName,
		IndexName:                 &index,
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("entity store: query %s: %w", index, err)
	}
	if len(queryOut.Items) == 0 {
		return nil, fmt.Errorf("entity store: query %s: %w", index, domain.ErrNotFound)
	}

	var projected struct {
		EID string `dynamodbav:"eid"`
	}
	if err := dynamo.UnmarshalMap(queryOut.Items[0], &projected); err != nil {
		return nil, fmt.Errorf("entity store: unmarshal gsi projection: %w", err)
	}
	eid, err := domain.NewEID(projected.EID)
	if err != nil {
		return nil, fmt.Errorf("entity store: bad eid in index: %w", err)
	}

	// Check context between the multi-step Query and GetItem.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("entity store: query %s: %w", index, err)
	}

	return s.GetByEID(ctx, eid)
}

// Delete removes the entity item. Deleting an absent entity returns
// domain.ErrNotFound.
func (s *EntityStore) Delete(ctx context.Context, eid domain.EID) error {
	expr, err := dynamo.BuildCondition(dynamo.AttributeExists(dynamo.Name("eid")))
	if err != nil {
		return fmt.Errorf("entity store: build condition: %w", err)
	}
	_, err = s.db.DeleteItem(ctx, &dynamo.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]dynamo.AttributeValue{
			"eid": &dynamo.AttributeValueMemberS{Value: eid.String()},
		},
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		if dynamo.IsConditionalCheckFailed(err) {
			return fmt.Errorf("entity store: delete: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("entity store: delete: %w", err)
	}
	return nil
}
