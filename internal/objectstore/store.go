package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// Store is the object storage gateway. Each call translates into a single
// remote operation against the backing S3-compatible store; URLFor is pure
// string construction and never touches the network.
type Store interface {
	UploadFromMemory(ctx context.Context, data []byte, key, contentType string) (string, error)
	UploadFromPath(ctx context.Context, localPath, key string) (string, error)
	Download(ctx context.Context, key, localPath string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
	URLFor(key string) string
}

// MinIOStore implements Store on top of a MinIO client and a single bucket.
type MinIOStore struct {
	client   *minio.Client
	endpoint string
	bucket   string
}

// NewMinIOStore constructs a gateway bound to one bucket.
func NewMinIOStore(client *minio.Client, endpoint, bucket string) *MinIOStore {
	return &MinIOStore{client: client, endpoint: endpoint, bucket: bucket}
}

// UploadFromMemory stores an in-memory payload under key and returns its URL.
func (s *MinIOStore) UploadFromMemory(ctx context.Context, data []byte, key, contentType string) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	return s.URLFor(key), nil
}

// UploadFromPath stores a local file under key, defaulting key to the file's
// base name when empty, and returns the object URL.
func (s *MinIOStore) UploadFromPath(ctx context.Context, localPath, key string) (string, error) {
	if key == "" {
		key = filepath.Base(localPath)
	}
	if _, err := s.client.FPutObject(ctx, s.bucket, key, localPath, minio.PutObjectOptions{}); err != nil {
		return "", fmt.Errorf("put object %q from %q: %w", key, localPath, err)
	}
	return s.URLFor(key), nil
}

// Download fetches an object to a local path.
func (s *MinIOStore) Download(ctx context.Context, key, localPath string) error {
	if err := s.client.FGetObject(ctx, s.bucket, key, localPath, minio.GetObjectOptions{}); err != nil {
		return fmt.Errorf("get object %q: %w", key, err)
	}
	return nil
}

// Delete removes an object by key.
func (s *MinIOStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

// List returns the keys under the given prefix.
func (s *MinIOStore) List(ctx context.Context, prefix string) ([]string, error) {
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// URLFor returns the public URL for a key, whether or not the object exists.
func (s *MinIOStore) URLFor(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
}
