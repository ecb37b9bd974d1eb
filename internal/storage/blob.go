package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	blob "gocloud.dev/blob"
	s3blob "gocloud.dev/blob/s3blob"

	// Drivers
	_ "gocloud.dev/blob/fileblob" // file:// URLs
	_ "gocloud.dev/blob/memblob"  // mem:// URLs

	"consigna/internal/model"
)

// S3Options configures the S3-compatible store. Endpoint is optional; when
// set the client uses path-style addressing against it (MinIO, Backblaze B2
// and friends).
type S3Options struct {
	Endpoint  string
	Region    string
	KeyID     string
	KeySecret string
	Bucket    string
}

type blobStore struct {
	bucket *blob.Bucket
}

var _ ObjectStore = (*blobStore)(nil)

// NewBlobStore opens an object store from a gocloud URL such as
// "mem://bucket" or "file:///path/to/dir". Used by tests and local runs.
func NewBlobStore(ctx context.Context, url string) (ObjectStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open bucket %q: %w", url, err)
	}
	return &blobStore{bucket: bucket}, nil
}

// NewS3Store opens the configured bucket on an S3-compatible endpoint using
// static credentials.
func NewS3Store(ctx context.Context, opts S3Options) (ObjectStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.KeyID, opts.KeySecret, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	bucket, err := s3blob.OpenBucket(ctx, client, opts.Bucket, nil)
	if err != nil {
		return nil, fmt.Errorf("open bucket %q: %w", opts.Bucket, err)
	}
	return &blobStore{bucket: bucket}, nil
}

func (s *blobStore) Close() error {
	return s.bucket.Close()
}

func (s *blobStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (model.StoredFile, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return model.StoredFile{}, fmt.Errorf("upload %q: %w", key, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		_ = s.bucket.Delete(ctx, key)
		return model.StoredFile{}, fmt.Errorf("upload %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		_ = s.bucket.Delete(ctx, key)
		return model.StoredFile{}, fmt.Errorf("upload %q: %w", key, err)
	}

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		// The write went through but the metadata read did not. Return the
		// identity we have rather than forcing a retry that would rewrite
		// the object.
		return model.StoredFile{FileID: uuid.NewString(), FileName: key}, nil
	}
	return model.StoredFile{
		FileID:     fileID(attrs.ETag),
		FileName:   key,
		Size:       attrs.Size,
		UploadedAt: attrs.ModTime,
	}, nil
}

func (s *blobStore) List(ctx context.Context, prefix string, limit int) ([]model.StoredFile, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	var files []model.StoredFile
	for limit <= 0 || len(files) < limit {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("list %q: %w", prefix, err)
		}
		f := model.StoredFile{
			FileName:   obj.Key,
			Size:       obj.Size,
			UploadedAt: obj.ModTime,
		}
		if len(obj.MD5) > 0 {
			f.FileID = fmt.Sprintf("%x", obj.MD5)
		}
		files = append(files, f)
	}
	return files, nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *blobStore) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: expiry})
	if err != nil {
		return "", fmt.Errorf("sign %q: %w", key, err)
	}
	return url, nil
}

// fileID normalizes a store ETag into a file id, falling back to a random
// id for stores that return none.
func fileID(etag string) string {
	if id := strings.Trim(etag, `"`); id != "" {
		return id
	}
	return uuid.NewString()
}
