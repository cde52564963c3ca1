package main

import (
	"context"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"qrinv/internal/config"
	"qrinv/internal/pkg/logger"
	s3store "qrinv/internal/storage/s3"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Error().Err(err).Msg("unable to load configuration")
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	// Use default AWS configuration (from ~/.aws/credentials)
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Error().Err(err).Msg("unable to load SDK config")
		os.Exit(1)
	}

	bucketName := cfg.S3.Bucket
	if bucketName == "" {
		bucketName = s3store.DefaultConfig.BucketName
	}

	client := s3.NewFromConfig(awsCfg)

	_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: &bucketName,
	})
	if err != nil {
		log.Info().Str("bucket", bucketName).Msg("creating bucket")
		input := &s3.CreateBucketInput{
			Bucket: &bucketName,
		}

		// us-east-1 rejects an explicit location constraint
		if awsCfg.Region != "us-east-1" {
			input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(awsCfg.Region),
			}
		}

		if _, err = client.CreateBucket(ctx, input); err != nil {
			log.Error().Err(err).Msg("unable to create bucket")
			os.Exit(1)
		}
	} else {
		log.Info().Str("bucket", bucketName).Msg("bucket already exists")
	}

	folders := []string{
		cfg.S3.QRPrefix,
		cfg.S3.MetadataPrefix,
	}

	for _, folder := range folders {
		_, err = client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: &bucketName,
			Key:    &folder,
		})
		if err != nil {
			log.Warn().Err(err).Str("folder", folder).Msg("unable to create folder")
			continue
		}
		log.Info().Str("folder", folder).Msg("created folder")
	}

	log.Info().
		Str("bucket", bucketName).
		Str("region", awsCfg.Region).
		Strs("folders", folders).
		Msg("setup completed")
}
