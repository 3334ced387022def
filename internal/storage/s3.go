package storage

import (
	"alcyxob/wellness-app/internal/config"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config" // Alias config to avoid clash
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// s3Storage implements the BackupStorage interface using an S3-compatible backend.
type s3Storage struct {
	client        *s3.Client        // Regular client for object operations
	presignClient *s3.PresignClient // Special client for generating presigned URLs
	bucketName    string
	logger        *zap.Logger
}

// NewS3Storage creates a new S3 backup storage instance.
func NewS3Storage(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (BackupStorage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled() {
		return nil, errors.New("s3 bucket name is not configured")
	}

	opts := []func(*awsCfg.LoadOptions) error{awsCfg.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		logger.Error("Failed to load AWS SDK config for S3", zap.Error(err))
		return nil, err
	}

	endpoint := endpointURL(cfg.Endpoint, cfg.UseSSL)
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			// Path-style addressing is required by most S3-compatible services (MinIO etc.)
			o.UsePathStyle = true
		}
	})

	logger.Info("S3 backup storage initialized",
		zap.String("endpoint", endpoint),
		zap.String("bucket", cfg.BucketName))

	return &s3Storage{
		client:        s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    cfg.BucketName,
		logger:        logger,
	}, nil
}

// endpointURL adds a scheme to bare host:port endpoints.
func endpointURL(endpoint string, useSSL bool) string {
	if endpoint == "" || strings.Contains(endpoint, "://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// Upload stores data with its checksum in the object metadata.
func (s *s3Storage) Upload(ctx context.Context, objectKey string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/json"),
		Metadata:      map[string]string{ChecksumMetadataKey: Checksum(data)},
	})
	if err != nil {
		s.logger.Error("Failed to upload object", zap.String("key", objectKey), zap.Error(err))
		return err
	}
	s.logger.Info("Uploaded object", zap.String("key", objectKey), zap.Int("bytes", len(data)))
	return nil
}

// Download fetches the object and verifies it against the stored checksum.
// Objects without a checksum are returned unverified.
func (s *s3Storage) Download(ctx context.Context, objectKey string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", objectKey, err)
	}
	if want, ok := out.Metadata[ChecksumMetadataKey]; ok {
		if err := VerifyChecksum(data, want); err != nil {
			s.logger.Warn("Backup failed checksum verification", zap.String("key", objectKey), zap.Error(err))
			return nil, err
		}
	} else {
		s.logger.Warn("Backup has no checksum, skipping verification", zap.String("key", objectKey))
	}
	return data, nil
}

// GeneratePresignedDownloadURL creates a temporary URL for downloading (GET).
func (s *s3Storage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		s.logger.Error("Failed to generate presigned GET URL", zap.String("key", objectKey), zap.Error(err))
		return "", err
	}

	return req.URL, nil
}

// DeleteObject removes an object from the S3 bucket.
func (s *s3Storage) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		s.logger.Error("Failed to delete object",
			zap.String("key", objectKey),
			zap.String("bucket", s.bucketName),
			zap.Error(err))
		return err
	}

	s.logger.Info("Deleted object", zap.String("key", objectKey), zap.String("bucket", s.bucketName))
	return nil
}
