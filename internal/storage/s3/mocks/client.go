package mocks

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// MockClient keeps objects in memory. The Func fields override the
// default behaviour when set.
type MockClient struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Types   map[string]string

	PutObjectFunc func(ctx context.Context, params *s3.PutObjectInput) (*s3.PutObjectOutput, error)
	GetObjectFunc func(ctx context.Context, params *s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

func NewMockClient() *MockClient {
	return &MockClient{
		Objects: make(map[string][]byte),
		Types:   make(map[string]string),
	}
}

func (m *MockClient) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, params)
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := aws.ToString(params.Bucket) + "/" + aws.ToString(params.Key)
	m.Objects[key] = data
	m.Types[key] = aws.ToString(params.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (m *MockClient) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, params)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("not found")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}
