package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("artifact not found")

// ArtifactMetadata describes a stored rendering of a record. It never
// carries key material.
type ArtifactMetadata struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	Record        string    `json:"record"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	TerminalID    string    `json:"terminal_id"`
	Checksum      string    `json:"ciphertext_checksum"`
	CreatedAt     time.Time `json:"created_at"`
}

// Artifact is a rendered QR image or sheet ready for archiving.
type Artifact struct {
	Data     []byte
	Metadata ArtifactMetadata
}

// Sink archives artifacts and returns their id.
type Sink interface {
	StoreArtifact(ctx context.Context, artifact Artifact) (string, error)
}

// Store is a Sink that can also read artifacts back.
type Store interface {
	Sink
	GetArtifact(ctx context.Context, id string) ([]byte, ArtifactMetadata, error)
	GetMetadata(ctx context.Context, id string) (ArtifactMetadata, error)
}

// Config holds configuration for storage services
type Config struct {
	BucketName     string
	Region         string
	QRPrefix       string
	MetadataPrefix string
}

type Option func(*Config)

// WithPrefixes sets custom prefixes. Empty values keep the current ones.
func WithPrefixes(qr, metadata string) Option {
	return func(c *Config) {
		if qr != "" {
			c.QRPrefix = qr
		}
		if metadata != "" {
			c.MetadataPrefix = metadata
		}
	}
}

func WithRegion(region string) Option {
	return func(c *Config) {
		c.Region = region
	}
}

// Extension maps an artifact content type to its object suffix.
func Extension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
