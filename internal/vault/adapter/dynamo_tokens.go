package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/dynamo"
)

// tokenDynamoDB is a narrow, consumer-defined interface for the DynamoDB
// operations the token store needs.
type tokenDynamoDB interface {
	GetItem(ctx context.Context, params *dynamo.GetItemInput, optFns ...func(*dynamo.Options)) (*dynamo.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamo.PutItemInput, optFns ...func(*dynamo.Options)) (*dynamo.PutItemOutput, error)
	Query(ctx context.Context, params *dynamo.QueryInput, optFns ...func(*dynamo.Options)) (*dynamo.QueryOutput, error)
	DeleteItem(ctx context.Context, params *dynamo.DeleteItemInput, optFns ...func(*dynamo.Options)) (*dynamo.DeleteItemOutput, error)
}

// tokenItem is the DynamoDB item shape for the entity_tokens table.
// The sort key combines platform and account hash so one entity can hold one
// credential per (platform, account) pair.
type tokenItem struct {
	EID                   string `dynamodbav:"eid"`
	SK                    string `dynamodbav:"sk"`
	Platform              string `dynamodbav:"platform"`
	AccountIdentifierHash string `dynamodbav:"account_identifier_hash"`
	AccountIdentifier     string `dynamodbav:"account_identifier"`
	AccountTokens         string `dynamodbav:"account_tokens"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

func tokenSK(platform, accountHash string) string {
	return platform + "#" + accountHash
}

func toTokenItem(tok *domain.EntityToken) *tokenItem {
	return &tokenItem{
		EID:                   tok.EID.String(),
		SK:                    tokenSK(tok.Platform, tok.AccountIdentifierHash),
		Platform:              tok.Platform,
		AccountIdentifierHash: tok.AccountIdentifierHash,
		AccountIdentifier:     tok.AccountIdentifierCiphertext,
		AccountTokens:         tok.AccountTokensCiphertext,
		CreatedAt:             tok.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             tok.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTokenItem(item *tokenItem) (*domain.EntityToken, error) {
	eid, err := domain.NewEID(item.EID)
	if err != nil {
		return nil, fmt.Errorf("token store: bad eid %q: %w", item.EID, err)
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, item.UpdatedAt)
	return &domain.EntityToken{
		EID:                         eid,
		Platform:                    item.Platform,
		AccountIdentifierHash:       item.AccountIdentifierHash,
		AccountIdentifierCiphertext: item.AccountIdentifier,
		AccountTokensCiphertext:     item.AccountTokens,
		CreatedAt:                   createdAt,
		UpdatedAt:                   updatedAt,
	}, nil
}

// TokenStore persists stored platform credentials in DynamoDB, keyed on
// (eid, platform#account_identifier_hash).
type TokenStore struct {
	db        tokenDynamoDB
	tableName string
}

// NewTokenStore creates a TokenStore backed by the given DynamoDB client.
func NewTokenStore(db tokenDynamoDB, tableName string) *TokenStore {
	return &TokenStore{db: db, tableName: tableName}
}

// Put stores or replaces a credential. Storing twice for the same
// (platform, account) pair overwrites in place.
func (s *TokenStore) Put(ctx context.Context, tok *domain.EntityToken) error {
	item, err := dynamo.MarshalMap(toTokenItem(tok))
	if err != nil {
		return fmt.Errorf("token store: marshal: %w", err)
	}

	_, err = s.db.PutItem(ctx, &dynamo.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("token store: put: %w", err)
	}
	return nil
}

// Get retrieves one credential. Returns domain.ErrNotFound when the entity
// holds no credential for the (platform, account) pair.
func (s *TokenStore) Get(ctx context.Context, eid domain.EID, platform, accountHash string) (*domain.EntityToken, error) {
	out, err := s.db.GetItem(ctx, &dynamo.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]dynamo.AttributeValue{
			"eid": &dynamo.AttributeValueMemberS{Value: eid.String()},
			"sk":  &dynamo.AttributeValueMemberS{Value: tokenSK(platform, accountHash)},
		},
		ConsistentRead: dynamo.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("token store: get: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("token store: get: %w", domain.ErrNotFound)
	}

	var item tokenItem
	if err := dynamo.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("token store: unmarshal: %w", err)
	}
	return fromTokenItem(&item)
}

// ListByEID returns every credential the entity holds, in sort key order.
func (s *TokenStore) ListByEID(ctx context.Context, eid domain.EID) ([]*domain.EntityToken, error) {
	expr, err := dynamo.BuildKeyCondition(dynamo.KeyEqual(dynamo.Key("eid"), dynamo.Value(eid.String())))
	if err != nil {
		return nil, fmt.Errorf("token store: build key condition: %w", err)
	}

	out, err := s.db.Query(ctx, &dynamo.QueryInput{
		TableName:                 &s.tableName,
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConsistentRead:            dynamo.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("token store: list: %w", err)
	}

	var items []tokenItem
	if err := dynamo.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("token store: unmarshal: %w", err)
	}

	tokens := make([]*domain.EntityToken, 0, len(items))
	for i := range items {
		tok, err := fromTokenItem(&items[i])
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Delete removes one credential. Returns domain.ErrNotFound when no such
// credential is stored.
func (s *TokenStore) Delete(ctx context.Context, eid domain.EID, platform, accountHash string) error {
	expr, err := dynamo.BuildCondition(dynamo.AttributeExists(dynamo.Name("eid")))
	if err != nil {
		return fmt.Errorf("token store: build condition: %w", err)
	}
	_, err = s.db.DeleteItem(ctx, &dynamo.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]dynamo.AttributeValue{
			"eid": &dynamo.AttributeValueMemberS{Value: eid.String()},
			"sk":  &dynamo.AttributeValueMemberS{Value: tokenSK(platform, accountHash)},
		},
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		if dynamo.IsConditionalCheckFailed(err) {
			return fmt.Errorf("token store: delete: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("token store: delete: %w", err)
	}
	return nil
}
