package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/yukta0302/rentwala/util/httpx"
)

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS proper, set for S3-compatible services
	AccessKey string
	SecretKey string
}

type s3Store struct {
	cfg    S3Config
	client *s3.S3
}

func NewS3(cfg S3Config) (Store, error) {
	awsCfg := &aws.Config{
		Region:     aws.String(cfg.Region),
		HTTPClient: httpx.Client(),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey, cfg.SecretKey, "",
		),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}
	return &s3Store{cfg: cfg, client: s3.New(sess)}, nil
}

func (s *s3Store) Save(ctx context.Context, origName string, content []byte, contentType string) (string, error) {
	key := "uploads/" + objectName(origName)

	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}

	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.cfg.Endpoint, s.cfg.Bucket, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key), nil
}
