package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/noah-isme/lostfound-api/pkg/config"
)

// s3API is the subset of *s3.Client used by S3Uploader.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Uploader stores media in an S3-compatible bucket (AWS, Cloudflare R2, MinIO).
type S3Uploader struct {
	client    s3API
	bucket    string
	publicURL string
}

// NewS3Uploader builds an uploader from media configuration.
func NewS3Uploader(cfg config.MediaConfig) (*S3Uploader, error) {
	if cfg.S3.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	opts := s3.Options{
		Region:      cfg.S3.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
	}
	if cfg.S3.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		opts.UsePathStyle = true
	}
	return newS3Uploader(s3.New(opts), cfg.S3.Bucket, cfg.PublicURL), nil
}

func newS3Uploader(client s3API, bucket, publicURL string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}
}

// Upload puts the object and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, obj Object) (string, error) {
	// The SigV4 signer needs a seekable body; photos are small enough to buffer.
	body, err := io.ReadAll(obj.Body)
	if err != nil {
		return "", fmt.Errorf("read object %s: %w", obj.Key, err)
	}
	input := &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(obj.Key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(obj.ContentType),
	}
	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", obj.Key, err)
	}
	return u.publicURL + "/" + obj.Key, nil
}

// Delete removes the object behind url. URLs outside the bucket are ignored.
func (u *S3Uploader) Delete(ctx context.Context, url string) error {
	key, ok := keyFromURL(u.publicURL, url)
	if !ok {
		return nil
	}
	if _, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
