// Package main is the entrypoint for the vault service.
// The vault is the custodian for mobile-originated identities and their
// stored platform credentials, exposed over gRPC.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscredentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/relaysms/vault/internal/config"
	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/dynamo"
	"github.com/relaysms/vault/internal/keystore"
	"github.com/relaysms/vault/internal/observability"
	redisclient "github.com/relaysms/vault/internal/redis"
	"github.com/relaysms/vault/internal/server"
	"github.com/relaysms/vault/internal/vault/adapter"
	"github.com/relaysms/vault/internal/vault/app"
	"github.com/relaysms/vault/internal/vault/port"
)

const (
	serviceName    = "vault"
	serviceVersion = "0.1.0"
)

// devSalt stands in for the real salts in development mode so the service
// starts without Secrets Manager. Production refuses to run without salts.
const devSalt = "vault-dev-insecure-salt"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: serviceName,
		Mode:        cfg.Mode,
	})

	tracerProvider, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Mode:           cfg.Mode,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("initialize tracer: %w", err)
	}

	metricsProvider, err := observability.InitMetrics(ctx, observability.MetricsConfig{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Mode:           cfg.Mode,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("initialize metrics: %w", err)
	}

	vaultMetrics, err := observability.NewVaultMetrics(observability.Meter(serviceName))
	if err != nil {
		return fmt.Errorf("create metrics instruments: %w", err)
	}

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}

	hashingSalt, encryptionSalt, err := resolveSalts(ctx, cfg, awsCfg, logger)
	if err != nil {
		return err
	}

	hashingKey, err := crypto.DeriveKey(hashingSalt.Expose(), "hashing", domain.HashingKeySize)
	if err != nil {
		return fmt.Errorf("derive hashing key: %w", err)
	}
	encryptionKey, err := crypto.DeriveKey(encryptionSalt.Expose(), "encryption", domain.EncryptionKeySize)
	if err != nil {
		return fmt.Errorf("derive encryption key: %w", err)
	}
	encryptor, err := crypto.NewEncryptor(encryptionKey)
	if err != nil {
		return fmt.Errorf("create encryptor: %w", err)
	}

	keys, err := keystore.New(cfg.Keystore.Path)
	if err != nil {
		return fmt.Errorf("open keystore: %w", err)
	}

	dynamoClient, err := dynamo.NewClient(ctx, dynamo.Config{
		Endpoint: cfg.DynamoDB.Endpoint,
		Region:   cfg.AWS.Region,
		Timeout:  cfg.DynamoDB.Timeout,
	})
	if err != nil {
		return fmt.Errorf("create DynamoDB client: %w", err)
	}
	if cfg.DynamoDB.CreateTables {
		if err := adapter.EnsureTables(ctx, dynamoClient.DB, cfg.DynamoDB.EntityTable, cfg.DynamoDB.TokenTable); err != nil {
			return fmt.Errorf("bootstrap tables: %w", err)
		}
		logger.Info("tables ensured",
			slog.String("entity_table", cfg.DynamoDB.EntityTable),
			slog.String("token_table", cfg.DynamoDB.TokenTable),
		)
	}

	redisClient := redisclient.NewClient(redisclient.Config{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password.Expose(),
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	var sms adapter.SMSProvider
	if cfg.OTP.UseSNS {
		snsClient := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
			if cfg.AWS.Endpoint != "" {
				endpoint := cfg.AWS.Endpoint
				o.BaseEndpoint = &endpoint
			}
		})
		sms = adapter.NewSNSSMSProvider(snsClient, cfg.OTP.SenderID)
	} else {
		logger.Warn("SNS delivery disabled, one-time codes go to the log")
		sms = adapter.NewLogSMSProvider(logger)
	}

	clock := domain.RealClock{}

	vault := app.New(
		adapter.NewEntityStore(dynamoClient.DB, cfg.DynamoDB.EntityTable),
		adapter.NewTokenStore(dynamoClient.DB, cfg.DynamoDB.TokenTable),
		adapter.NewOTPGateway(redisClient.RDB, sms, hashingKey, clock, adapter.OTPConfig{
			Validity:      cfg.OTP.Validity,
			ResendBackoff: cfg.OTP.ResendBackoff,
			MaxAttempts:   cfg.OTP.MaxAttempts,
		}),
		keys,
		encryptor,
		app.Config{HashingKey: domain.SecretBytes(hashingKey)},
		clock,
		logger,
		vaultMetrics,
	)

	return server.Run(ctx, server.Params{
		Cfg:     cfg,
		Logger:  logger,
		Handler: port.NewHandler(vault),
		ShutdownFuncs: []func(context.Context) error{
			func(context.Context) error { return redisClient.Close() },
			metricsProvider.Shutdown,
			tracerProvider.Shutdown,
		},
	})
}

// loadAWSConfig builds the shared AWS configuration for SNS and Secrets
// Manager. The DynamoDB client carries its own, as its endpoint and timeout
// differ under LocalStack.
func loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.AWS.Endpoint != "" {
		opts = append(opts,
			awsconfig.WithCredentialsProvider(
				awscredentials.NewStaticCredentialsProvider("test", "test", ""),
			),
		)
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// resolveSalts returns the key-derivation salts, preferring Secrets Manager
// when a secret ID is configured. Development mode falls back to a fixed
// insecure salt so local runs need no secret material.
func resolveSalts(ctx context.Context, cfg *config.Config, awsCfg aws.Config, logger *slog.Logger) (hashing, encryption domain.SecretBytes, err error) {
	if cfg.Secrets.SecretID != "" {
		smClient := secretsmanager.NewFromConfig(awsCfg, func(o *secretsmanager.Options) {
			if cfg.AWS.Endpoint != "" {
				endpoint := cfg.AWS.Endpoint
				o.BaseEndpoint = &endpoint
			}
		})
		salts, loadErr := adapter.NewSaltLoader(smClient, cfg.Secrets.SecretID).Load(ctx)
		if loadErr != nil {
			return nil, nil, fmt.Errorf("load salts: %w", loadErr)
		}
		logger.Info("salts loaded from Secrets Manager", slog.String("secret_id", cfg.Secrets.SecretID))
		return domain.SecretBytes(salts.HashingSalt.Expose()), domain.SecretBytes(salts.EncryptionSalt.Expose()), nil
	}

	hashing = domain.SecretBytes(cfg.Secrets.HashingSalt.Expose())
	encryption = domain.SecretBytes(cfg.Secrets.EncryptionSalt.Expose())

	if !cfg.IsProd() {
		if hashing.IsEmpty() {
			logger.Warn("no hashing salt configured, using the development salt")
			hashing = domain.SecretBytes(devSalt)
		}
		if encryption.IsEmpty() {
			logger.Warn("no encryption salt configured, using the development salt")
			encryption = domain.SecretBytes(devSalt)
		}
	}
	return hashing, encryption, nil
}
