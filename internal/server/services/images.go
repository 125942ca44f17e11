package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/whattowear/internal/server/apperr"
	sc "github.com/dmitrijs2005/whattowear/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadURLValidity is how long a presigned PUT stays usable.
const UploadURLValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// ImageUpload tells the client where to PUT the file and which URL to store
// on the item afterwards.
type ImageUpload struct {
	UploadURL string `json:"uploadUrl"`
	ImageURL  string `json:"imageUrl"`
	Key       string `json:"key"`
}

type ImageService struct {
	config *sc.Config
}

func NewImageService(config *sc.Config) *ImageService {
	return &ImageService{config: config}
}

// GetRandomStorageKey returns a fresh object key under the user's prefix.
func GetRandomStorageKey(userID string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("items/%s/%d/%02d/%v", userID, d.Year(), d.Month(), uuid.New())
}

func (s *ImageService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignUpload creates a presigned PUT for a new image owned by userID.
func (s *ImageService) PresignUpload(ctx context.Context, userID string) (*ImageUpload, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("error creating presign client: %w", err))
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey(userID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(UploadURLValidity))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("error presigning upload: %w", err))
	}

	return &ImageUpload{UploadURL: req.URL, ImageURL: s.publicURL(key), Key: key}, nil
}

// publicURL is S3PublicBaseURL/key, or endpoint/bucket/key when no public
// base is configured.
func (s *ImageService) publicURL(key string) string {
	base := strings.TrimRight(s.config.S3PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(s.config.S3BaseEndpoint, "/") + "/" + s.config.S3Bucket
	}
	return base + "/" + key
}
