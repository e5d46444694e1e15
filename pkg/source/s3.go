package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used by S3.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3 serves schemas from objects under a bucket prefix.
//
// Example usage:
//
//	client := source.NewS3Client(source.S3ClientConfig{Region: "eu-west-1"})
//	forms := source.NewS3(client, "my-bucket", "forms/")
type S3 struct {
	client S3API
	bucket string
	prefix string
}

// NewS3 creates an S3 source. A non-empty prefix is treated as a directory.
func NewS3(client S3API, bucket, prefix string) *S3 {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

// Bucket returns the bucket name.
func (s *S3) Bucket() string { return s.bucket }

// Prefix returns the key prefix, ending in "/" unless empty.
func (s *S3) Prefix() string { return s.prefix }

// Load fetches the object stored under ref.
func (s *S3) Load(ctx context.Context, ref string) ([]byte, error) {
	clean, err := cleanRef(ref)
	if err != nil {
		return nil, err
	}
	for _, name := range candidates(clean) {
		out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(s.prefix + name),
		})
		if err != nil {
			if isNoSuchKey(err) {
				continue
			}
			return nil, fmt.Errorf("s3 get %s/%s: %w", s.bucket, s.prefix+name, err)
		}
		data, err := io.ReadAll(out.Body)
		out.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("s3 read %s/%s: %w", s.bucket, s.prefix+name, err)
		}
		return data, nil
	}
	return nil, errNotFound(ref)
}

// List returns the keys of every schema object under the prefix, relative
// to it and sorted.
func (s *S3) List(ctx context.Context) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	var refs []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list %s/%s: %w", s.bucket, s.prefix, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			rel := strings.TrimPrefix(key, s.prefix)
			if rel == "" || !hasSchemaExt(rel) {
				continue
			}
			refs = append(refs, rel)
		}
	}
	sort.Strings(refs)
	return refs, nil
}

func isNoSuchKey(err error) bool {
	var noKey *types.NoSuchKey
	var notFound *types.NotFound
	return errors.As(err, &noKey) || errors.As(err, &notFound)
}

// S3ClientConfig configures NewS3Client.
type S3ClientConfig struct {
	Region string

	// Endpoint overrides the S3 endpoint, for S3-compatible stores. Setting
	// it switches to path-style addressing.
	Endpoint string
}

// NewS3Client builds an S3 client. Credentials come from the standard
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN variables;
// without them requests are sent unsigned.
func NewS3Client(cfg S3ClientConfig) *s3.Client {
	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}

	opts := s3.Options{
		Region:      region,
		Credentials: envCredentials(),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials() aws.CredentialsProvider {
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" {
		return aws.AnonymousCredentials{}
	}
	return aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, errors.New("AWS credentials are not set in the environment")
		}
		return creds, nil
	}))
}
