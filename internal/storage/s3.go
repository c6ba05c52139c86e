package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"ontox/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client builds an S3 client from the AWS_* environment. Returns
// nil when the config cannot be assembled; callers treat that as "no S3
// sources available".
func NewS3Client(ctx context.Context) *s3.Client {
	region := util.GetEnv("AWS_REGION")
	endpoint := util.GetEnv("AWS_ENDPOINT")
	accessKey := util.GetEnv("AWS_ACCESS_KEY")
	secretKey := util.GetEnv("AWS_SECRET_KEY")

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithBaseEndpoint(endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)),
	)
	if err != nil {
		return nil
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
}

// ObjectSource is a loader source backed by a single S3 object.
type ObjectSource struct {
	client *s3.Client
	bucket string
	key    string
}

// NewObjectSource creates a source for an s3://bucket/key URL.
func NewObjectSource(client *s3.Client, rawURL string) (*ObjectSource, error) {
	bucket, key, err := parseObjectURL(rawURL)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("S3 source %s configured but no S3 client available", rawURL)
	}
	return &ObjectSource{client: client, bucket: bucket, key: key}, nil
}

// Name returns the s3:// URL of the object.
func (s *ObjectSource) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

// Fetch downloads the object content.
func (s *ObjectSource) Fetch(ctx context.Context) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.Name(), err)
	}
	defer result.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, result.Body); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Name(), err)
	}
	return buf.Bytes(), nil
}

// IsObjectURL reports whether a configured source names an S3 object.
func IsObjectURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, "s3://")
}

func parseObjectURL(rawURL string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(rawURL, "s3://")
	if trimmed == rawURL {
		return "", "", fmt.Errorf("not an s3:// URL: %s", rawURL)
	}
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid S3 URL, want s3://bucket/key: %s", rawURL)
	}
	return parts[0], parts[1], nil
}
