package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type CloudflareR2SnapshotConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	ObjectKey       string
}

type cloudflareR2SnapshotStore struct {
	s3Client   *s3.Client
	bucketName string
	objectKey  string
}

// NewCloudflareR2SnapshotStore mirrors the snapshot to a Cloudflare R2
// bucket so a fresh deployment can rehydrate without a database.
func NewCloudflareR2SnapshotStore(cfg CloudflareR2SnapshotConfig) (SnapshotStore, error) {
	if cfg.AccountID == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.BucketName == "" || cfg.ObjectKey == "" {
		return nil, errors.New("invalid Cloudflare R2 configuration: all fields are required")
	}

	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		r2Endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
		return aws.Endpoint{
			URL:           r2Endpoint,
			SigningRegion: "auto",
		}, nil
	})

	sdkCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config for R2: %w", err)
	}

	return &cloudflareR2SnapshotStore{
		s3Client:   s3.NewFromConfig(sdkCfg),
		bucketName: cfg.BucketName,
		objectKey:  cfg.ObjectKey,
	}, nil
}

func (s *cloudflareR2SnapshotStore) Save(ctx context.Context, data []byte) error {
	putObjectInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(s.objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	}

	_, err := s.s3Client.PutObject(ctx, putObjectInput)
	if err != nil {
		return fmt.Errorf("failed to upload snapshot to R2 (key: %s): %w", s.objectKey, err)
	}
	return nil
}

func (s *cloudflareR2SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	getObjectInput := &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey),
	}

	result, err := s.s3Client.GetObject(ctx, getObjectInput)
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to download snapshot from R2 (key: %s): %w", s.objectKey, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot body from R2: %w", err)
	}
	return data, nil
}
