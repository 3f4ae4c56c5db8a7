package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Objects are grouped the way the site groups media.
const (
	imageFolder = "makeup-artist/images"
	videoFolder = "makeup-artist/videos"
)

// S3Config holds the credentials and addressing for the media bucket.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, for S3-compatible hosts
	AccessKey string
	SecretKey string
	PublicURL string // optional CDN/base URL override
}

// S3Store implements MediaStore on an S3-compatible bucket.
type S3Store struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("media store requires a bucket name")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("media store requires access credentials")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, file io.Reader, mediaType, filename string) (*UploadResult, error) {
	folder := imageFolder
	if mediaType == "video" {
		folder = videoFolder
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	counted := &countingReader{r: file}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        counted,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("[Storage] ✅ Uploaded %s (%d bytes)", key, counted.n)
	return &UploadResult{
		URL:      s.objectURL(key),
		PublicID: key,
		Format:   strings.TrimPrefix(ext, "."),
		Size:     counted.n,
	}, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (s *S3Store) Delete(ctx context.Context, publicID, mediaType string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", publicID, err)
	}
	log.Printf("[Storage] Deleted %s (%s)", publicID, mediaType)
	return nil
}

func (s *S3Store) objectURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
