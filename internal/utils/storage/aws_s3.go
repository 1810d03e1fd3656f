package storage

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/internal/utils"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

const MaxUploadSize = 5 << 20

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
		GetPublicLinkKey(objectKey string) string
	}

	objectPutter interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	}

	awsS3 struct {
		client objectPutter
		bucket string
		region string
	}

	disabledS3 struct{}
)

// NewAwsS3 connects to the configured bucket. Without a bucket every upload
// fails with domain.ErrStorageDisabled.
func NewAwsS3(ctx context.Context, config *utils.Config) (AwsS3, error) {
	if !config.StorageEnabled() {
		return disabledS3{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(config.AWSS3Region)}
	if config.AWSAccessKey != "" && config.AWSSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AWSAccessKey, config.AWSSecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: config.AWSS3Bucket,
		region: config.AWSS3Region,
	}, nil
}

func (a *awsS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	if file == nil {
		return "", domain.ErrInvalidImage
	}
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("%w: file larger than %d bytes", domain.ErrInvalidImage, MaxUploadSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mime, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	if len(allowedTypes) > 0 && !mimetype.EqualsAny(mime.String(), allowedTypes...) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidImage, mime.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	objectKey := path.Join(folder, fileName+mime.Extension())
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(objectKey),
		Body:          src,
		ContentType:   aws.String(mime.String()),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return objectKey, nil
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, strings.TrimPrefix(objectKey, "/"))
}

func (disabledS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	return "", domain.ErrStorageDisabled
}

func (disabledS3) GetPublicLinkKey(objectKey string) string {
	return ""
}
