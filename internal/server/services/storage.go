package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
	"github.com/ooakt0/fyi-bolt-sub000/internal/logging"
	sc "github.com/ooakt0/fyi-bolt-sub000/internal/server/config"
	"github.com/ooakt0/fyi-bolt-sub000/internal/storagepath"
)

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
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in)
	}
)

// StorageService mints time-limited upload and download URLs against the
// object-storage backend. Both operations are side-effect-free against
// application state; they mint credentials, not data.
type StorageService struct {
	config *sc.Config
	logger logging.Logger
}

func NewStorageService(cfg *sc.Config, logger logging.Logger) *StorageService {
	return &StorageService{
		config: cfg,
		logger: logger.With("module", "storage_service"),
	}
}

// UploadTarget is the result of minting an upload URL: the presigned PUT
// URL the bytes go to, the stable object URL stored in metadata, and the
// raw storage key.
type UploadTarget struct {
	UploadURL  string
	ObjectURL  string
	StorageKey string
}

func (s *StorageService) getClients() (*s3.Client, *s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKeyID,
			s.config.S3SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return client, newS3PresignClient(client), nil
}

// IssueUploadURL mints a presigned PUT URL for the exact key. The object is
// written with a private canned ACL so unsigned access is refused regardless
// of the application-level privacy flag. The key is validated before any
// network call; a bad key short-circuits with a ValidationError.
func (s *StorageService) IssueUploadURL(ctx context.Context, key, contentType string) (*UploadTarget, error) {
	if !storagepath.IsValid(key) {
		return nil, &common.ValidationError{Path: key, Reason: "must start with " + storagepath.Prefix + " and contain no '..'"}
	}

	_, presignClient, err := s.getClients()
	if err != nil {
		return nil, &common.SigningError{Op: "presign-put", Path: key, Err: err}
	}

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.S3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPrivate,
	}, s3.WithPresignExpires(s.config.UploadURLExpiry))
	if err != nil {
		return nil, &common.SigningError{Op: "presign-put", Path: key, Err: err}
	}

	s.logger.Info(ctx, "issued upload url", "key", key, "content_type", contentType)

	return &UploadTarget{
		UploadURL:  req.URL,
		ObjectURL:  s.objectURL(key),
		StorageKey: key,
	}, nil
}

// IssueDownloadURL mints a presigned GET URL for an existing key. The key is
// resolved with a HEAD first so a missing object surfaces as
// common.ErrorNotFound instead of a signed URL that 404s later.
func (s *StorageService) IssueDownloadURL(ctx context.Context, key string) (string, error) {
	client, presignClient, err := s.getClients()
	if err != nil {
		return "", &common.SigningError{Op: "presign-get", Path: key, Err: err}
	}

	if _, err := headObject(client, ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}); err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return "", fmt.Errorf("object %s: %w", key, common.ErrorNotFound)
		}
		return "", &common.SigningError{Op: "head", Path: key, Err: err}
	}

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.config.DownloadURLExpiry))
	if err != nil {
		return "", &common.SigningError{Op: "presign-get", Path: key, Err: err}
	}

	return req.URL, nil
}

// objectURL builds the stable (unsigned) URL persisted in metadata records.
func (s *StorageService) objectURL(key string) string {
	if s.config.S3BaseEndpoint != "" {
		return strings.TrimSuffix(s.config.S3BaseEndpoint, "/") + "/" + s.config.S3Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.S3Bucket, s.config.S3Region, key)
}
