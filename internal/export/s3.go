package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/tips/internal/errors"
)

// ObjectPutter is the subset of *s3.Client used for publishing.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher writes artifacts to an S3 bucket.
type S3Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewS3Publisher creates a publisher for bucket. Keys are stored under prefix.
//
// Example usage:
//
//	client := export.NewS3Client(export.S3Config{Region: "us-east-1"})
//	pub := export.NewS3Publisher(client, "my-bucket", "tips/")
//	keys, err := export.Export(ctx, pub, s, export.Options{})
func NewS3Publisher(client ObjectPutter, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Put uploads body with the Cache-Control value Export attached to ctx.
func (p *S3Publisher) Put(ctx context.Context, key, contentType string, body []byte) error {
	clean, err := CleanKey(path.Join(p.prefix, key))
	if err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(clean),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}
	if cc := CacheControlFromContext(ctx); cc != "" {
		input.CacheControl = aws.String(cc)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return errors.New("E120").
			WithDetail(fmt.Sprintf("s3://%s/%s", p.bucket, clean)).
			Wrap(err)
	}
	return nil
}

// S3Config configures the S3 client.
type S3Config struct {
	Region string

	// Endpoint overrides the service endpoint for S3-compatible stores.
	Endpoint string
}

// NewS3Client builds an S3 client from cfg. Credentials are read from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.CredentialsProviderFunc(envCredentials),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		// S3-compatible stores rarely support virtual-hosted buckets
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, errors.New("E122").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}
