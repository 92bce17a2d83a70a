// Package dynamo provides a shared DynamoDB client factory.
// Only this package may import the DynamoDB SDK; adapters in other packages
// use the re-exported types and helpers defined here.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Config holds DynamoDB connection parameters.
type Config struct {
	// Endpoint overrides the default AWS endpoint.
	// Set to a LocalStack URL (e.g. "http://localhost:4566") for local
	// development. When empty, the default AWS endpoint resolver is used.
	Endpoint string

	// Region is the AWS region for the DynamoDB client.
	Region string

	// Timeout is the HTTP client timeout for DynamoDB requests.
	Timeout time.Duration
}

// Client wraps the AWS DynamoDB SDK client.
// Adapters access the underlying SDK client via the DB field.
type Client struct {
	// DB is the underlying AWS DynamoDB SDK client.
	DB *dynamodb.Client
}

// NewClient creates a DynamoDB client configured from cfg.
// When cfg.Endpoint is non-empty, BaseEndpoint is set on the service client
// for LocalStack compatibility.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.Endpoint != "" {
		opts = append(opts,
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider("test", "test", ""),
			),
		)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	if cfg.Timeout > 0 {
		awsCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	var dbOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		dbOpts = append(dbOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = &endpoint
		})
	}

	return &Client{
		DB: dynamodb.NewFromConfig(awsCfg, dbOpts...),
	}, nil
}

// ---------------------------------------------------------------------------
// Type aliases — adapters import dynamo.GetItemInput instead of the SDK.
// ---------------------------------------------------------------------------

// Core CRUD operation types.
type (
	GetItemInput     = dynamodb.GetItemInput
	GetItemOutput    = dynamodb.GetItemOutput
	PutItemInput     = dynamodb.PutItemInput
	PutItemOutput    = dynamodb.PutItemOutput
	QueryInput       = dynamodb.QueryInput
	QueryOutput      = dynamodb.QueryOutput
	DeleteItemInput  = dynamodb.DeleteItemInput
	DeleteItemOutput = dynamodb.DeleteItemOutput
)

// Table administration types, used by the development table bootstrap.
type (
	CreateTableInput     = dynamodb.CreateTableInput
	CreateTableOutput    = dynamodb.CreateTableOutput
	AttributeDefinition  = types.AttributeDefinition
	KeySchemaElement     = types.KeySchemaElement
	GlobalSecondaryIndex = types.GlobalSecondaryIndex
	Projection           = types.Projection
	ScalarAttributeType  = types.ScalarAttributeType
	KeyType              = types.KeyType
	ProjectionType       = types.ProjectionType
	BillingMode          = types.BillingMode
)

// Table administration enum values.
const (
	ScalarAttributeTypeS     = types.ScalarAttributeTypeS
	KeyTypeHash              = types.KeyTypeHash
	KeyTypeRange             = types.KeyTypeRange
	ProjectionTypeAll        = types.ProjectionTypeAll
	ProjectionTypeKeysOnly   = types.ProjectionTypeKeysOnly
	BillingModePayPerRequest = types.BillingModePayPerRequest
)

// Attribute value types.
type (
	AttributeValue        = types.AttributeValue
	AttributeValueMemberS = types.AttributeValueMemberS
)

// Expression builder types. Adapters compile conditions and key conditions
// through these instead of hand-writing expression strings.
type (
	Expression          = expression.Expression
	ConditionBuilder    = expression.ConditionBuilder
	KeyConditionBuilder = expression.KeyConditionBuilder
)

// Options is the DynamoDB client options type.
// Re-exported so adapter-defined interfaces can reference optFns variadic params.
type Options = dynamodb.Options

// ---------------------------------------------------------------------------
// AWS helper re-exports — so adapters avoid importing the aws top-level package.
// ---------------------------------------------------------------------------

// Bool returns a pointer to a bool value.
var Bool = aws.Bool

// String returns a pointer to a string value.
var String = aws.String

// MarshalMap serializes a Go value into a DynamoDB attribute value map.
var MarshalMap = attributevalue.MarshalMap

// UnmarshalMap deserializes a DynamoDB attribute value map into a Go value.
var UnmarshalMap = attributevalue.UnmarshalMap

// UnmarshalListOfMaps deserializes query results into a slice of Go values.
var UnmarshalListOfMaps = attributevalue.UnmarshalListOfMaps

// Name creates a NameBuilder for an attribute name.
var Name = expression.Name

// Value creates a ValueBuilder for an attribute value.
var Value = expression.Value

// Key creates a KeyBuilder for a key attribute.
var Key = expression.Key

// KeyEqual builds a key equality condition.
var KeyEqual = expression.KeyEqual

// AttributeExists builds an existence condition on an attribute.
var AttributeExists = expression.AttributeExists

// AttributeNotExists builds a non-existence condition on an attribute.
var AttributeNotExists = expression.AttributeNotExists

// BuildCondition compiles a single condition into a wire expression.
func BuildCondition(cond ConditionBuilder) (Expression, error) {
	return expression.NewBuilder().WithCondition(cond).Build()
}

// BuildKeyCondition compiles a single key condition into a wire expression.
func BuildKeyCondition(kc KeyConditionBuilder) (Expression, error) {
	return expression.NewBuilder().WithKeyCondition(kc).Build()
}

// ---------------------------------------------------------------------------
// Error classification helpers — adapters check error types without SDK import.
// ---------------------------------------------------------------------------

// IsConditionalCheckFailed reports whether err is a DynamoDB
// ConditionalCheckFailedException. Adapters use this to detect condition
// expression violations (e.g., item already exists).
func IsConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// ErrConditionalCheckFailed returns a ConditionalCheckFailedException suitable
// for testing. Production code should never construct this error — DynamoDB
// returns it.
func ErrConditionalCheckFailed() error {
	return &types.ConditionalCheckFailedException{
		Message: aws.String("The conditional request failed"),
	}
}

// IsResourceNotFound reports whether err is a DynamoDB
// ResourceNotFoundException (missing table).
func IsResourceNotFound(err error) bool {
	var rnf *types.ResourceNotFoundException
	return errors.As(err, &rnf)
}

// IsResourceInUse reports whether err is a DynamoDB ResourceInUseException
// (table already exists). The table bootstrap treats it as success.
func IsResourceInUse(err error) bool {
	var riu *types.ResourceInUseException
	return errors.As(err, &riu)
}

// ErrResourceInUse returns a ResourceInUseException suitable for testing.
func ErrResourceInUse() error {
	return &types.ResourceInUseException{
		Message: aws.String("Table already exists"),
	}
}
