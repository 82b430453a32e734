package s3

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
	Prefix    string
	NoSSL     bool
}

// Uploader publishes staged thumbnails to an S3-compatible bucket served
// through PublicURL.
type Uploader struct {
	client    *s3.Client
	bucket    string
	prefix    string
	publicURL string
}

func New(ctx context.Context, cfg Config) (*Uploader, error) {
	const op = "assets.s3.New"

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	endpointURL := ""
	if cfg.Endpoint != "" {
		endpointURL = normalizeEndpoint(cfg.Endpoint, cfg.NoSSL)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		if endpointURL != "" {
			publicURL = endpointURL + "/" + cfg.Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &Uploader{
		client:    client,
		bucket:    cfg.Bucket,
		prefix:    strings.Trim(cfg.Prefix, "/"),
		publicURL: publicURL,
	}, nil
}

// normalizeEndpoint accepts host[:port] with or without a scheme.
func normalizeEndpoint(endpoint string, noSSL bool) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}

	if noSSL {
		return "http://" + endpoint
	}

	return "https://" + endpoint
}

// Upload stores the file at filePath as an image object and returns its
// public URL.
func (u *Uploader) Upload(ctx context.Context, filePath string) (string, error) {
	const op = "assets.s3.Upload"

	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	key := path.Join(u.prefix, filepath.Base(filePath))

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(contentType(filePath)),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.publicURL + "/" + key, nil
}

func contentType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
