// Package config loads qrinv settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"qrinv/internal/encryption/chunking"
)

const envPrefix = "QRINV"

type Config struct {
	App        AppConfig
	Encryption EncryptionConfig
	Render     RenderConfig
	S3         S3Config
}

type AppConfig struct {
	Env      string // development, production
	LogLevel string
}

type EncryptionConfig struct {
	ChunkSize int
}

type RenderConfig struct {
	QRSize int // pixels per side of the PNG
}

// S3Config is only used when artifacts are uploaded. An empty Bucket
// disables the sink.
type S3Config struct {
	Bucket         string
	QRPrefix       string
	MetadataPrefix string
}

// Load reads the configuration. Variables already set in the environment
// win over the .env files, which are optional.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Encryption: EncryptionConfig{
			ChunkSize: v.GetInt("CHUNK_SIZE"),
		},
		Render: RenderConfig{
			QRSize: v.GetInt("QR_SIZE"),
		},
		S3: S3Config{
			Bucket:         v.GetString("S3_BUCKET"),
			QRPrefix:       v.GetString("S3_QR_PREFIX"),
			MetadataPrefix: v.GetString("S3_METADATA_PREFIX"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CHUNK_SIZE", chunking.DefaultChunkSize)
	v.SetDefault("QR_SIZE", 256)
	v.SetDefault("S3_QR_PREFIX", "qr/")
	v.SetDefault("S3_METADATA_PREFIX", "metadata/")
}

func (c *Config) Validate() error {
	if err := chunking.ValidateChunkSize(c.Encryption.ChunkSize); err != nil {
		return err
	}
	return validation.ValidateStruct(&c.Render,
		validation.Field(&c.Render.QRSize,
			validation.Required,
			validation.Min(64),
			validation.Max(4096),
		),
	)
}

// UploadEnabled reports whether an S3 bucket is configured.
func (c *Config) UploadEnabled() bool {
	return c.S3.Bucket != ""
}
