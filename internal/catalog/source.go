package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// maxDocumentBytes bounds the size of a catalog document fetched from object storage
const maxDocumentBytes = 8 << 20

// SourceBackend defines where the catalog document is read from
type SourceBackend string

const (
	SourceEmbedded SourceBackend = "embedded"
	SourceLocal    SourceBackend = "local"
	SourceS3       SourceBackend = "s3"
	SourceMinIO    SourceBackend = "minio"
)

// SourceConfig holds configuration for loading the catalog
type SourceConfig struct {
	Backend SourceBackend

	// Local file path
	Path string

	// S3/MinIO config
	Endpoint        string
	Region          string
	Bucket          string
	Key             string
	AccessKeyID     string
	SecretAccessKey string
}

// DefaultSourceConfig returns a configuration that uses the embedded catalog
func DefaultSourceConfig() *SourceConfig {
	return &SourceConfig{
		Backend: SourceEmbedded,
		Region:  "us-east-1",
		Bucket:  "gamepulse-catalog",
		Key:     "catalog/catalog.yaml",
	}
}

// Load reads and validates the catalog from the configured backend
func Load(ctx context.Context, cfg *SourceConfig) (*Catalog, error) {
	if cfg == nil {
		cfg = DefaultSourceConfig()
	}

	switch cfg.Backend {
	case SourceEmbedded, "":
		c := Default()
		slog.Info("Loaded embedded catalog", "version", c.Version())
		return c, nil

	case SourceLocal:
		c, err := LoadFromFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		slog.Info("Loaded catalog from file", "path", cfg.Path, "version", c.Version())
		return c, nil

	case SourceS3, SourceMinIO:
		client, err := newS3Client(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 client: %w", err)
		}
		data, err := fetchS3(ctx, client, cfg.Bucket, cfg.Key)
		if err != nil {
			return nil, err
		}
		c, err := Parse(data)
		if err != nil {
			return nil, err
		}
		slog.Info("Loaded catalog from object storage",
			"endpoint", cfg.Endpoint,
			"bucket", cfg.Bucket,
			"key", cfg.Key,
			"version", c.Version(),
		)
		return c, nil

	default:
		return nil, fmt.Errorf("unsupported catalog backend: %s", cfg.Backend)
	}
}

// newS3Client creates an S3 client for S3 or MinIO
func newS3Client(ctx context.Context, cfg *SourceConfig) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error

	opts = append(opts, config.WithRegion(cfg.Region))

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var clientOpts []func(*s3.Options)
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // MinIO
		})
	}

	return s3.NewFromConfig(awsCfg, clientOpts...), nil
}

func fetchS3(ctx context.Context, client *s3.Client, bucket, key string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog from S3: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog object: %w", err)
	}
	if len(data) > maxDocumentBytes {
		return nil, fmt.Errorf("catalog object exceeds %d bytes", maxDocumentBytes)
	}
	return data, nil
}
