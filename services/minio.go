package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// MinIOService stores uploaded analysis clips. Optional: when MINIO_ENDPOINT
// is unset the service stays disabled and the pipeline works from the raw
// video reference instead of an object key.
type MinIOService struct {
	appContext.DefaultService
	client     *minio.Client
	bucketName string
	endpoint   string
	accessKey  string
	secretKey  string
	useSSL     bool
}

const MINIO_SVC = "minio_svc"

func (svc MinIOService) Id() string {
	return MINIO_SVC
}

func (svc *MinIOService) Configure(ctx *appContext.Context) error {
	svc.endpoint = os.Getenv("MINIO_ENDPOINT")

	svc.accessKey = os.Getenv("MINIO_ACCESS_KEY")
	if svc.accessKey == "" {
		svc.accessKey = "admin"
	}

	svc.secretKey = os.Getenv("MINIO_SECRET_KEY")
	if svc.secretKey == "" {
		svc.secretKey = "password123"
	}

	svc.useSSL = os.Getenv("MINIO_USE_SSL") == "true"

	svc.bucketName = os.Getenv("MINIO_BUCKET_NAME")
	if svc.bucketName == "" {
		svc.bucketName = "deepfind-clips"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MinIOService) Start() error {
	if !svc.Enabled() {
		log.Println("MinIO disabled (MINIO_ENDPOINT not set), analysis uploads stay in-memory")
		return nil
	}

	client, err := minio.New(svc.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(svc.accessKey, svc.secretKey, ""),
		Secure: svc.useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %v", err)
	}

	svc.client = client

	if err := svc.ensureBucket(); err != nil {
		return fmt.Errorf("failed to ensure bucket exists: %v", err)
	}

	log.Printf("MinIO service started successfully with endpoint: %s", svc.endpoint)
	return nil
}

func (svc *MinIOService) Enabled() bool {
	return svc.endpoint != ""
}

func (svc *MinIOService) ensureBucket() error {
	ctx := context.Background()

	exists, err := svc.client.BucketExists(ctx, svc.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		if err = svc.client.MakeBucket(ctx, svc.bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("Created MinIO bucket: %s", svc.bucketName)
	}

	return nil
}

// UploadClip stores one uploaded video and returns its object name, used as
// the pipeline's source reference.
func (svc *MinIOService) UploadClip(objectName string, reader io.Reader, objectSize int64, contentType string) (string, error) {
	ctx := context.Background()

	_, err := svc.client.PutObject(ctx, svc.bucketName, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload clip to MinIO: %v", err)
	}

	return objectName, nil
}

func (svc *MinIOService) GetClipURL(objectName string, expiry time.Duration) (string, error) {
	ctx := context.Background()

	presignedURL, err := svc.client.PresignedGetObject(ctx, svc.bucketName, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %v", err)
	}

	return presignedURL.String(), nil
}

func (svc *MinIOService) DeleteClip(objectName string) error {
	ctx := context.Background()

	if err := svc.client.RemoveObject(ctx, svc.bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete clip from MinIO: %v", err)
	}

	return nil
}

func (svc *MinIOService) GetBucketName() string {
	return svc.bucketName
}
