// Package archive stores copies of produced report exports in object storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
)

// objectPutter is the subset of the S3 client used by the archive.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive implements adapter.ExportArchive on an S3 bucket.
// Objects are stored under <prefix>/<yyyy>/<mm>/<filename>.
type S3Archive struct {
	client objectPutter
	bucket string
	region string
	prefix string
}

// NewS3Archive loads the default AWS configuration for region and creates the archive.
func NewS3Archive(ctx context.Context, bucket, region, prefix string) (*S3Archive, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newS3Archive(s3.NewFromConfig(cfg), bucket, region, prefix), nil
}

func newS3Archive(client objectPutter, bucket, region, prefix string) *S3Archive {
	return &S3Archive{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
	}
}

// Store uploads the export and returns its object URL.
func (a *S3Archive) Store(ctx context.Context, filename, contentType string, content []byte, producedAt time.Time) (string, error) {
	key := a.objectKey(filename, producedAt)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to s3: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key), nil
}

func (a *S3Archive) objectKey(filename string, producedAt time.Time) string {
	producedAt = producedAt.UTC()
	return path.Join(a.prefix, producedAt.Format("2006"), producedAt.Format("01"), filename)
}

var _ adapter.ExportArchive = (*S3Archive)(nil)
