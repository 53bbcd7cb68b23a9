package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	pkglogger "github.com/foodandtravelmag/mag-backend/pkg/logger"
)

// S3Client wraps the AWS S3 client for S3/R2/MinIO compatible storage
type S3Client struct {
	client    *s3.Client
	bucket    string
	publicURL string // base URL files are served from (CDN or bucket endpoint)
	basePath  string // prefix for all objects (e.g. "uploads/")
}

// S3Config holds S3-compatible storage configuration
type S3Config struct {
	Endpoint        string `yaml:"endpoint"` // e.g. https://xxx.r2.cloudflarestorage.com
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	PublicURL       string `yaml:"public_url"`
	BasePath        string `yaml:"base_path"`
	ForcePathStyle  bool   `yaml:"force_path_style"` // true for MinIO/R2
}

// NewS3Client creates a new S3-compatible storage client
func NewS3Client(cfg S3Config) (*S3Client, error) {
	opts := func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	}

	client := s3.New(s3.Options{}, opts)

	pkglogger.GetLogger().Info().
		Str("bucket", cfg.Bucket).
		Str("endpoint", cfg.Endpoint).
		Msg("S3 storage client initialized")

	return &S3Client{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		basePath:  cfg.BasePath,
	}, nil
}

// Upload stores the file and returns its public URL
func (c *S3Client) Upload(ctx context.Context, subdir, filename string, body io.Reader, contentType string, size int64) (string, error) {
	key := c.basePath + filename
	if subdir != "" {
		key = c.basePath + subdir + "/" + filename
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}

	if c.publicURL != "" {
		return c.publicURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, key), nil
}
