package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"movies-api/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// FileStorage hands out temporary download links for stored filmwork files.
type FileStorage interface {
	PresignedURL(ctx context.Context, filePath string) (string, error)
	URLExpiry() time.Duration
}

type MinIOService struct {
	client *minio.Client
	bucket string
	expiry time.Duration
	logger *logrus.Logger
}

func NewMinIOService(cfg *config.StorageConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	return &MinIOService{
		client: minioClient,
		bucket: cfg.BucketName,
		expiry: cfg.URLExpiry,
		logger: logger,
	}, nil
}

// HealthCheck verifies that the configured bucket is reachable.
func (s *MinIOService) HealthCheck(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

func (s *MinIOService) URLExpiry() time.Duration {
	return s.expiry
}

// PresignedURL signs a GET for the object referenced by filePath. Signing is
// local, so no request reaches the storage server.
func (s *MinIOService) PresignedURL(ctx context.Context, filePath string) (string, error) {
	objectPath := objectKey(s.bucket, filePath)
	if objectPath == "" {
		return "", fmt.Errorf("empty object path for %q", filePath)
	}

	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", path.Base(objectPath)))

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucket, objectPath, s.expiry, params)
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to generate presigned URL")
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"objectPath": objectPath,
		"expiry":     s.expiry,
	}).Debug("Generated presigned URL")

	return presignedURL.String(), nil
}

// objectKey turns a stored file reference (a bucket-relative key, or a full URL
// into the bucket) into an object key.
func objectKey(bucket, filePath string) string {
	key := strings.TrimSpace(filePath)
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		if u, err := url.Parse(key); err == nil {
			key = u.Path
		}
	}
	key = strings.TrimPrefix(key, "/")
	key = strings.TrimPrefix(key, bucket+"/")
	return key
}
