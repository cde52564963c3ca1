package s3

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrinv/internal/storage"
	"qrinv/internal/storage/s3/mocks"
)

const testRecord = "AB123456781120101123400000064000000691234567887654321bLYI0pOJSEfTByuslOJW2w=="

func newTestStore(client API, opts ...storage.Option) *Store {
	cfg := DefaultConfig
	cfg.BucketName = "invoices"
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(client, cfg)
}

func TestStore_StoreArtifact(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		id          string
	}{
		{name: "PNG with new id", contentType: "image/png"},
		{name: "PDF with given id", contentType: "application/pdf", id: "fixed-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockClient()
			store := newTestStore(client)

			id, err := store.StoreArtifact(context.Background(), storage.Artifact{
				Data: []byte("png-bytes"),
				Metadata: storage.ArtifactMetadata{
					ID:            tt.id,
					InvoiceNumber: "AB12345678",
					Record:        testRecord,
					ContentType:   tt.contentType,
				},
			})
			require.NoError(t, err)
			if tt.id != "" {
				assert.Equal(t, tt.id, id)
			} else {
				assert.Len(t, id, 36)
			}

			key := "invoices/qr/" + id + storage.Extension(tt.contentType)
			assert.Equal(t, []byte("png-bytes"), client.Objects[key])
			assert.Equal(t, tt.contentType, client.Types[key])
			assert.Contains(t, client.Objects, "invoices/metadata/"+id+".json")
		})
	}
}

func TestStore_GetArtifact(t *testing.T) {
	client := mocks.NewMockClient()
	store := newTestStore(client, storage.WithPrefixes("codes/", "meta/"))

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	id, err := store.StoreArtifact(context.Background(), storage.Artifact{
		Data: []byte{0x89, 'P', 'N', 'G'},
		Metadata: storage.ArtifactMetadata{
			InvoiceNumber: "AB12345678",
			Record:        testRecord,
			ContentType:   "image/png",
			TerminalID:    "terminal-1",
			CreatedAt:     created,
		},
	})
	require.NoError(t, err)
	assert.Contains(t, client.Objects, "invoices/codes/"+id+".png")
	assert.Contains(t, client.Objects, "invoices/meta/"+id+".json")

	data, metadata, err := store.GetArtifact(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
	assert.Equal(t, id, metadata.ID)
	assert.Equal(t, "AB12345678", metadata.InvoiceNumber)
	assert.Equal(t, testRecord, metadata.Record)
	assert.Equal(t, "terminal-1", metadata.TerminalID)
	assert.Equal(t, int64(4), metadata.Size)
	assert.True(t, created.Equal(metadata.CreatedAt))
}

func TestStore_GetArtifactNotFound(t *testing.T) {
	store := newTestStore(mocks.NewMockClient())

	_, _, err := store.GetArtifact(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_StoreArtifactErrors(t *testing.T) {
	client := mocks.NewMockClient()
	calls := 0
	client.PutObjectFunc = func(ctx context.Context, params *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("access denied")
		}
		return &s3.PutObjectOutput{}, nil
	}
	store := newTestStore(client)

	_, err := store.StoreArtifact(context.Background(), storage.Artifact{
		Data:     []byte("x"),
		Metadata: storage.ArtifactMetadata{ContentType: "image/png"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store metadata")
}

type fakeIdentity struct {
	out *sts.GetCallerIdentityOutput
	err error
}

func (f fakeIdentity) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return f.out, f.err
}

func TestLogCallerIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	logCallerIdentity(context.Background(), fakeIdentity{out: &sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:user/issuer"),
	}}, logger)
	assert.Contains(t, buf.String(), `"account":"123456789012"`)

	buf.Reset()
	logCallerIdentity(context.Background(), fakeIdentity{err: errors.New("no credentials")}, logger)
	assert.Contains(t, buf.String(), "unable to get caller identity")
}

func TestNewClient_RequiresBucket(t *testing.T) {
	_, err := NewClient(context.Background(), aws.Config{}, "", zerolog.Nop())
	assert.Error(t, err)
}
