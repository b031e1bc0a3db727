package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"booking-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ErrUnsupportedImage is returned when an upload is requested for a file that
// is not an image.
var ErrUnsupportedImage = errors.New("only jpg, jpeg, png, gif and webp images can be uploaded")

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageStore hands out upload URLs for image links and removes images that
// are no longer referenced.
type ImageStore interface {
	PresignUpload(ctx context.Context, filename string) (*UploadTicket, error)
	Owns(link string) bool
	DeleteFile(ctx context.Context, link string) error
}

// UploadTicket tells the client where to PUT the image and which link to
// submit in the form afterwards.
type UploadTicket struct {
	UploadURL   string `json:"upload_url"`
	ImageLink   string `json:"image_link"`
	ObjectName  string `json:"object_name"`
	ContentType string `json:"content_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type MinIOService struct {
	client     *minio.Client
	bucket     string
	objectBase string
	expiry     time.Duration
	logger     *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
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

	service := &MinIOService{
		client:     minioClient,
		bucket:     cfg.BucketName,
		objectBase: objectBaseURL(cfg.PublicURL, cfg.BucketName),
		expiry:     cfg.PresignExpiry,
		logger:     logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := service.ensureBucket(ctx, cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

// objectBaseURL is the prefix of every public object link, e.g.
// http://localhost:9000/booking-images/.
func objectBaseURL(publicURL, bucket string) string {
	protocol := "http://"
	if strings.HasPrefix(publicURL, "https://") {
		protocol = "https://"
	}

	host := strings.TrimPrefix(publicURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}

	return fmt.Sprintf("%s%s/%s/", protocol, host, bucket)
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

func (s *MinIOService) PresignUpload(ctx context.Context, filename string) (*UploadTicket, error) {
	objectName, contentType, err := uniqueObjectName(filename)
	if err != nil {
		return nil, err
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectName, s.expiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectName": objectName,
		"expiry":     s.expiry,
	}).Info("Generated presigned URL")

	return &UploadTicket{
		UploadURL:   presignedURL.String(),
		ImageLink:   s.objectBase + objectName,
		ObjectName:  objectName,
		ContentType: contentType,
		ExpiresIn:   int(s.expiry.Seconds()),
	}, nil
}

// Owns reports whether link points at an object in this store's bucket.
func (s *MinIOService) Owns(link string) bool {
	return link != "" && strings.HasPrefix(link, s.objectBase) && len(link) > len(s.objectBase)
}

func (s *MinIOService) DeleteFile(ctx context.Context, link string) error {
	objectName := strings.TrimPrefix(link, s.objectBase)
	if idx := strings.Index(objectName, "?"); idx != -1 {
		objectName = objectName[:idx]
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("objectName", objectName).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectName", objectName).Info("File deleted successfully from MinIO")
	return nil
}

// uniqueObjectName keeps the original name readable and appends a short
// random suffix so uploads never overwrite each other.
func uniqueObjectName(filename string) (string, string, error) {
	base := filepath.Base(strings.TrimSpace(filename))
	ext := strings.ToLower(filepath.Ext(base))
	contentType, ok := imageExtensions[ext]
	if !ok {
		return "", "", ErrUnsupportedImage
	}

	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' || r == '\\' || r == '?' || r == '#' {
			return '-'
		}
		return r
	}, name)
	if name == "" || name == "." {
		name = "image"
	}

	return fmt.Sprintf("%s_%s%s", name, uuid.New().String()[:8], ext), contentType, nil
}
