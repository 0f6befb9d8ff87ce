package database

import (
	"context"
	"os"

	"efectivio/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the client used by the DynamoDB audit store.
//
// With an endpoint (DynamoDB Local) static credentials are used:
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
func ConnectDynamoDB(ctx context.Context, cfg config.AuditConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg.Region, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// NewAWSConfig loads the shared AWS configuration. A custom endpoint means a
// local emulator, which does not validate credentials but still needs some.
func NewAWSConfig(ctx context.Context, region, endpoint string) (aws.Config, error) {
	if region == "" {
		region = getenvDefault("AWS_REGION", "us-east-1")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if endpoint != "" {
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(creds))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
