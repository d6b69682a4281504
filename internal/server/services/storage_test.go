package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"

	"github.com/ooakt0/fyi-bolt-sub000/internal/common"
	"github.com/ooakt0/fyi-bolt-sub000/internal/logging"
	sc "github.com/ooakt0/fyi-bolt-sub000/internal/server/config"
)

func testStorageConfig() *sc.Config {
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	cfg.S3AccessKeyID = "AKIATEST"
	cfg.S3SecretAccessKey = "secret"
	cfg.S3Bucket = "idea-vault"
	cfg.S3Region = "us-east-1"
	return cfg
}

func newStorageForTest(t *testing.T) *StorageService {
	t.Helper()
	return NewStorageService(testStorageConfig(), logging.NewJSONLogger())
}

// stubAWS replaces every AWS seam for the duration of one test.
func stubAWS(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	origHead := headObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
		headObject = origHead
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return &s3.HeadObjectOutput{}, nil
	}
}

func presignExpiry(optFns []func(*s3.PresignOptions)) time.Duration {
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts.Expires
}

func TestIssueUploadURLInvalidPathShortCircuits(t *testing.T) {
	svc := newStorageForTest(t)
	stubAWS(t)

	presignCalled := false
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		presignCalled = true
		return &v4.PresignedHTTPRequest{}, nil
	}

	for _, key := range []string{"idea-files/1-a/../../etc", "not-idea-files/x.pdf"} {
		_, err := svc.IssueUploadURL(context.Background(), key, "application/pdf")

		var ve *common.ValidationError
		assert.ErrorAs(t, err, &ve, "key %q", key)
	}
	assert.False(t, presignCalled, "validation failures must never reach the network layer")
}

func TestIssueUploadURLSuccess(t *testing.T) {
	svc := newStorageForTest(t)
	stubAWS(t)

	var captured *s3.PutObjectInput
	var capturedExpiry time.Duration
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		captured = in
		capturedExpiry = presignExpiry(optFns)
		return &v4.PresignedHTTPRequest{URL: "https://signed.example/put"}, nil
	}

	key := "idea-files/42-my-awesome-idea/pitch_deck/report_1000.pdf"
	target, err := svc.IssueUploadURL(context.Background(), key, "application/pdf")
	assert.NoError(t, err)

	assert.Equal(t, "https://signed.example/put", target.UploadURL)
	assert.Equal(t, key, target.StorageKey)
	assert.Equal(t, "https://idea-vault.s3.us-east-1.amazonaws.com/"+key, target.ObjectURL)

	assert.Equal(t, "idea-vault", aws.ToString(captured.Bucket))
	assert.Equal(t, key, aws.ToString(captured.Key))
	assert.Equal(t, "application/pdf", aws.ToString(captured.ContentType))
	assert.Equal(t, types.ObjectCannedACLPrivate, captured.ACL)
	assert.Equal(t, time.Hour, capturedExpiry)
}

func TestIssueUploadURLSigningError(t *testing.T) {
	svc := newStorageForTest(t)
	stubAWS(t)

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("backend refused")
	}

	_, err := svc.IssueUploadURL(context.Background(), "idea-files/1-a/video/x_1.mp4", "video/mp4")

	var se *common.SigningError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "presign-put", se.Op)
}

func TestIssueDownloadURLSuccess(t *testing.T) {
	svc := newStorageForTest(t)
	stubAWS(t)

	var capturedExpiry time.Duration
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		capturedExpiry = presignExpiry(optFns)
		return &v4.PresignedHTTPRequest{URL: "https://signed.example/get"}, nil
	}

	url, err := svc.IssueDownloadURL(context.Background(), "idea-files/1-a/pitch_deck/x_1.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example/get", url)
	assert.Equal(t, 5*time.Minute, capturedExpiry)
}

func TestIssueDownloadURLMissingObject(t *testing.T) {
	svc := newStorageForTest(t)
	stubAWS(t)

	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return nil, &types.NotFound{}
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		t.Fatal("presign must not run for a missing object")
		return nil, nil
	}

	_, err := svc.IssueDownloadURL(context.Background(), "idea-files/1-a/pitch_deck/gone.pdf")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetClientsLoadFailure(t *testing.T) {
	svc := newStorageForTest(t)
	stubAWS(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := svc.IssueUploadURL(context.Background(), "idea-files/1-a/video/x_1.mp4", "video/mp4")
	var se *common.SigningError
	assert.ErrorAs(t, err, &se)
}

func TestObjectURLCustomEndpoint(t *testing.T) {
	cfg := testStorageConfig()
	cfg.S3BaseEndpoint = "http://127.0.0.1:9000/"
	svc := NewStorageService(cfg, logging.NewJSONLogger())

	assert.Equal(t,
		"http://127.0.0.1:9000/idea-vault/idea-files/1-a/x.pdf",
		svc.objectURL("idea-files/1-a/x.pdf"))
}
