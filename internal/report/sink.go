package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/payledger/internal/filex"
	"github.com/google/uuid"
)

// Artifact is a rendered report ready to be stored.
type Artifact struct {
	Owner       string
	Name        string
	ContentType string
	Body        []byte
}

// Sink stores an artifact and returns where it ended up.
type Sink interface {
	Put(ctx context.Context, a Artifact) (string, error)
}

// FileSink writes artifacts into Dir, creating it when needed.
type FileSink struct {
	Dir string
}

func (s *FileSink) Put(_ context.Context, a Artifact) (string, error) {
	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filepath.Base(a.Name))
	if err := os.WriteFile(path, a.Body, 0o640); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// S3Config addresses an S3-compatible bucket.
type S3Config struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	Bucket       string
	UsePathStyle bool
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// seams for tests
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) putObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Sink uploads artifacts with PutObject.
type S3Sink struct {
	bucket string
	client putObjectAPI
	now    func() time.Time
	newID  func() uuid.UUID
}

func NewS3Sink(ctx context.Context, c S3Config) (*S3Sink, error) {
	if c.Bucket == "" {
		return nil, fmt.Errorf("s3 sink: bucket is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if c.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")))
	}
	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.UsePathStyle
	})

	return &S3Sink{bucket: c.Bucket, client: client, now: time.Now, newID: uuid.New}, nil
}

// ObjectKey builds reports/<owner>/<yyyy>/<mm>/<uuid>-<name>.
func (s *S3Sink) ObjectKey(owner, name string) string {
	t := s.now()
	return fmt.Sprintf("reports/%s/%04d/%02d/%s-%s", owner, t.Year(), int(t.Month()), s.newID(), name)
}

func (s *S3Sink) Put(ctx context.Context, a Artifact) (string, error) {
	key := s.ObjectKey(a.Owner, a.Name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(a.Body),
		ContentType: aws.String(a.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
