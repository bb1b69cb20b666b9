package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"nicehomes_backend/pkg/utils/validation"
)

// S3 stores uploads in an S3 bucket and records the public object URL as
// the file reference.
type S3 struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3(bucket, region string) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &S3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (s *S3) Save(file *multipart.FileHeader) (string, error) {
	if err := validation.ValidateImage(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := uuid.New().String() + filepath.Ext(strings.ToLower(file.Filename))

	_, err = s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func (s *S3) Remove(ref string) error {
	if ref == "" {
		return nil
	}

	parts := strings.SplitN(ref, ".amazonaws.com/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("unrecognized S3 reference: %s", ref)
	}

	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(parts[1]),
	})

	return err
}
