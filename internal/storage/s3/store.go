package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"qrinv/internal/storage"
)

// API is the subset of the S3 client used by Store.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var _ storage.Store = (*Store)(nil)

type Store struct {
	client API
	config storage.Config
}

func New(client API, config storage.Config) *Store {
	return &Store{
		client: client,
		config: config,
	}
}

// StoreArtifact uploads the artifact and its JSON metadata. A new id is
// assigned when the metadata has none.
func (s *Store) StoreArtifact(ctx context.Context, artifact storage.Artifact) (string, error) {
	metadata := artifact.Metadata
	if metadata.ID == "" {
		metadata.ID = uuid.NewString()
	}
	if metadata.CreatedAt.IsZero() {
		metadata.CreatedAt = time.Now().UTC()
	}
	metadata.Size = int64(len(artifact.Data))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(s.artifactKey(metadata.ID, metadata.ContentType)),
		Body:        bytes.NewReader(artifact.Data),
		ContentType: aws.String(metadata.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store artifact: %w", err)
	}

	metadataBytes, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(s.metadataKey(metadata.ID)),
		Body:        bytes.NewReader(metadataBytes),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store metadata: %w", err)
	}

	return metadata.ID, nil
}

func (s *Store) GetMetadata(ctx context.Context, id string) (storage.ArtifactMetadata, error) {
	data, err := s.getObject(ctx, s.metadataKey(id))
	if err != nil {
		return storage.ArtifactMetadata{}, fmt.Errorf("failed to get metadata: %w", err)
	}

	var metadata storage.ArtifactMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return storage.ArtifactMetadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return metadata, nil
}

func (s *Store) GetArtifact(ctx context.Context, id string) ([]byte, storage.ArtifactMetadata, error) {
	// Metadata first: it holds the content type, which decides the key.
	metadata, err := s.GetMetadata(ctx, id)
	if err != nil {
		return nil, storage.ArtifactMetadata{}, err
	}

	data, err := s.getObject(ctx, s.artifactKey(id, metadata.ContentType))
	if err != nil {
		return nil, metadata, fmt.Errorf("failed to get artifact: %w", err)
	}
	return data, metadata, nil
}

// GetConfig returns the store configuration
func (s *Store) GetConfig() storage.Config {
	return s.config
}

func (s *Store) getObject(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
		}
		return nil, err
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

func (s *Store) artifactKey(id, contentType string) string {
	return path.Join(s.config.QRPrefix, id+storage.Extension(contentType))
}

func (s *Store) metadataKey(id string) string {
	return path.Join(s.config.MetadataPrefix, id+".json")
}
