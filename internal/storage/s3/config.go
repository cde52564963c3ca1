package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"

	"qrinv/internal/storage"
)

// DefaultConfig provides default configuration values
var DefaultConfig = storage.Config{
	BucketName:     "qrinv-artifacts",
	Region:         "us-east-1",
	QRPrefix:       "qr/",
	MetadataPrefix: "metadata/",
}

// NewClient creates a Store for bucket after checking that the bucket is
// reachable with the given credentials.
func NewClient(ctx context.Context, cfg aws.Config, bucket string, logger zerolog.Logger, opts ...storage.Option) (*Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	client := s3.NewFromConfig(cfg)

	// Verify bucket exists and is accessible
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to access bucket %s: %w", bucket, err)
	}

	logCallerIdentity(ctx, sts.NewFromConfig(cfg), logger)

	config := DefaultConfig
	config.BucketName = bucket
	config.Region = cfg.Region
	for _, opt := range opts {
		opt(&config)
	}

	return New(client, config), nil
}

type identityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

func logCallerIdentity(ctx context.Context, client identityAPI, logger zerolog.Logger) {
	identity, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		logger.Warn().Err(err).Msg("unable to get caller identity")
		return
	}
	logger.Debug().
		Str("account", aws.ToString(identity.Account)).
		Str("arn", aws.ToString(identity.Arn)).
		Msg("aws caller identity")
}
