package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"skillswap_server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const avatarPrefix = "avatars/"

// Presigner is the subset of the S3 presign client MediaService uses.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// MediaService hands out presigned S3 URLs for profile avatars.
type MediaService struct {
	presigner Presigner
	bucket    string
	expiry    time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

func NewMediaService(presigner Presigner, cfg config.MediaConfig, logger *slog.Logger) *MediaService {
	return &MediaService{
		presigner: presigner,
		bucket:    cfg.Bucket,
		expiry:    cfg.PresignExpiry(),
		now:       time.Now,
		logger:    logger.With("component", "media_service"),
	}
}

// NewS3Presigner builds a presign client for region from the default AWS
// credential chain.
func NewS3Presigner(ctx context.Context, region string) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewPresignClient(s3.NewFromConfig(cfg)), nil
}

// UploadURL returns a presigned PUT URL and the object key the file will be
// stored under. The key can be saved to the profile as avatar_key.
func (ms *MediaService) UploadURL(ctx context.Context, email, fileName, fileType string) (string, string, error) {
	key := avatarPrefix + email + "/" + ms.now().UTC().Format("20060102150405") + "-" + path.Base(fileName)

	req, err := ms.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ms.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(ms.expiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}

	ms.logger.Debug("presigned avatar upload", "key", key)
	return req.URL, key, nil
}

// ReadURL returns a presigned GET URL for key.
func (ms *MediaService) ReadURL(ctx context.Context, key string) (string, error) {
	req, err := ms.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ms.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ms.expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return req.URL, nil
}
