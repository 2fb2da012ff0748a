// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package freeze

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"
)

// ObjectPutter is the part of *s3.Client the publisher uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads a frozen site to a bucket.
type S3Publisher struct {
	Client ObjectPutter
	Bucket string
	Prefix string
}

// NewS3Publisher builds a publisher from the default AWS credential chain
// (environment, shared config, instance role).
func NewS3Publisher(ctx context.Context, bucket string) (*S3Publisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Publisher{Client: s3.NewFromConfig(cfg), Bucket: bucket}, nil
}

// Publish uploads files (relative to dir) under the configured prefix.
func (p *S3Publisher) Publish(ctx context.Context, dir string, files []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(copyConcurrency)

	for _, rel := range files {
		g.Go(func() error {
			return p.put(ctx, dir, rel)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("site published", "bucket", p.Bucket, "prefix", p.Prefix, "files", len(files))
	return nil
}

func (p *S3Publisher) put(ctx context.Context, dir, rel string) error {
	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", rel, err)
	}
	defer f.Close()

	contentType := mime.TypeByExtension(path.Ext(rel))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = p.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.Bucket),
		Key:         aws.String(path.Join(p.Prefix, rel)),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", rel, err)
	}
	return nil
}
