package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-sphere-pathtracer/pkg/config"
	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 30 * time.Second

var contentTypes = map[string]string{
	".ppm":  "image/x-portable-pixmap",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Uploader copies rendered artifacts to an S3 bucket
type Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// NewS3Uploader creates an uploader from static credentials.
// A custom endpoint selects path-style addressing for S3-compatible stores.
func NewS3Uploader(cfg config.S3Config, logger core.Logger) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, errors.New("no S3 bucket configured")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewUploader(s3.New(sess), cfg.Bucket, cfg.Prefix, logger), nil
}

// NewUploader creates an uploader over an existing client
func NewUploader(client s3iface.S3API, bucket, prefix string, logger core.Logger) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Key returns the object key used for a file name
func (u *Uploader) Key(name string) string {
	return path.Join(u.prefix, name)
}

// Upload stores data under the prefixed key and returns that key
func (u *Uploader) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.Key(name)
	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, u.bucket, size)
	return key, nil
}

// UploadFile uploads a local file under its base name
func (u *Uploader) UploadFile(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return u.Upload(ctx, filepath.Base(filePath), data, ContentType(filePath))
}

// ContentType guesses the MIME type of a rendered artifact from its extension
func ContentType(filePath string) string {
	if contentType, ok := contentTypes[strings.ToLower(filepath.Ext(filePath))]; ok {
		return contentType
	}
	return "application/octet-stream"
}
