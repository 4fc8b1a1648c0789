package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"jobdeck/internal/config"
	"jobdeck/internal/logging"
)

// SpacesStore stores documents in a DigitalOcean Spaces bucket through the
// S3-compatible API
type SpacesStore struct {
	client     *s3.S3
	bucketName string
	bucketURL  string
	cdnURL     string
	logger     logging.Logger
}

// NewSpacesStore creates a new Spaces-backed blob store
func NewSpacesStore(cfg *config.Config) (*SpacesStore, error) {
	logger := logging.GetGlobalLogger()

	if cfg.Spaces.AccessKeyID == "" || cfg.Spaces.AccessKeySecret == "" {
		return nil, fmt.Errorf("spaces credentials are required")
	}

	endpoint := fmt.Sprintf("https://%s.digitaloceanspaces.com", cfg.Spaces.Region)

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			cfg.Spaces.AccessKeyID,
			cfg.Spaces.AccessKeySecret,
			"",
		),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(cfg.Spaces.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spaces session: %w", err)
	}

	logger.Info("Spaces blob store initialized", map[string]interface{}{
		"bucket_name": cfg.Spaces.BucketName,
		"region":      cfg.Spaces.Region,
	})

	return &SpacesStore{
		client:     s3.New(sess),
		bucketName: cfg.Spaces.BucketName,
		bucketURL:  cfg.Spaces.BucketURL,
		cdnURL:     cfg.Spaces.CDNEndpoint,
		logger:     logger,
	}, nil
}

// Put uploads an object and returns its public URL
func (s *SpacesStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(body, size))
	if err != nil {
		return "", fmt.Errorf("failed to read upload body: %w", err)
	}

	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		s.logger.Error("Failed to upload object to spaces", map[string]interface{}{
			"object_key": key,
			"error":      err.Error(),
		})
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.objectURL(key), nil
}

// Delete removes the object referenced by blobURL
func (s *SpacesStore) Delete(ctx context.Context, blobURL string) error {
	key, err := s.objectKey(blobURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *SpacesStore) objectURL(key string) string {
	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.cdnURL, "/"), key)
	}
	if s.bucketURL != "" {
		base := strings.TrimRight(s.bucketURL, "/")
		if !strings.HasPrefix(base, "https://") {
			base = "https://" + base
		}
		return fmt.Sprintf("%s/%s", base, key)
	}
	region := ""
	if s.client.Config.Region != nil {
		region = *s.client.Config.Region
	}
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucketName, region, key)
}

func (s *SpacesStore) objectKey(blobURL string) (string, error) {
	parsed, err := url.Parse(blobURL)
	if err != nil {
		return "", fmt.Errorf("invalid blob URL %q: %w", blobURL, err)
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", fmt.Errorf("blob URL %q has no object key", blobURL)
	}
	return key, nil
}
