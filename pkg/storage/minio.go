package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const minioTimeout = 5 * time.Second

// MinioBackend stores one object per key in a MinIO/S3 compatible bucket.
type MinioBackend struct {
	client *minio.Client
	bucket string
	prefix string
}

// MinioConfig describes the object storage connection.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// NewMinioBackend connects to MinIO and ensures the bucket exists.
func NewMinioBackend(cfg MinioConfig) (*MinioBackend, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" || strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("minio endpoint and bucket are required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), minioTimeout)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioBackend{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Get downloads the object for key.
func (m *MinioBackend) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), minioTimeout)
	defer cancel()
	obj, err := m.client.GetObject(ctx, m.bucket, objectName(m.prefix, key), minio.GetObjectOptions{})
	if err != nil {
		return "", false, fmt.Errorf("get object: %w", err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read object: %w", err)
	}
	return string(data), true, nil
}

// Set uploads value as the object for key.
func (m *MinioBackend) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), minioTimeout)
	defer cancel()
	_, err := m.client.PutObject(ctx, m.bucket, objectName(m.prefix, key), strings.NewReader(value), int64(len(value)), minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

// Remove deletes the object for key.
func (m *MinioBackend) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), minioTimeout)
	defer cancel()
	if err := m.client.RemoveObject(ctx, m.bucket, objectName(m.prefix, key), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// Available checks that the bucket is reachable.
func (m *MinioBackend) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), minioTimeout)
	defer cancel()
	ok, err := m.client.BucketExists(ctx, m.bucket)
	return err == nil && ok
}

func objectName(prefix, key string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return key + ".json"
	}
	return path.Join(prefix, key+".json")
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
