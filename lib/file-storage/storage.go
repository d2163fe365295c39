package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"ai-interview-backend/config"
	"ai-interview-backend/lib/utils/helpers"
	"ai-interview-backend/models"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	// UploadContentVideo сохраняет загруженное видео сегмента, возвращает публичную ссылку
	UploadContentVideo(ctx context.Context, interviewID string, kind models.ContentKind, fileName, contentType string, data []byte) (url string, err error)
	// UploadAnswerVideo сохраняет видео ответа кандидата, возвращает публичную ссылку
	UploadAnswerVideo(ctx context.Context, interviewID string, orderNo int, fileName, contentType string, data []byte) (url string, err error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client *minio.Client
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

func (i impl) UploadContentVideo(ctx context.Context, interviewID string, kind models.ContentKind, fileName, contentType string, data []byte) (string, error) {
	objectName := fmt.Sprintf("%s/%s-%d-%s", interviewID, kind, time.Now().UnixMilli(), helpers.SanitizeFileName(fileName))
	return i.putObject(ctx, objectName, contentType, data)
}

func (i impl) UploadAnswerVideo(ctx context.Context, interviewID string, orderNo int, fileName, contentType string, data []byte) (string, error) {
	objectName := fmt.Sprintf("%s/responses/%d-%d-%s", interviewID, orderNo, time.Now().UnixMilli(), helpers.SanitizeFileName(fileName))
	return i.putObject(ctx, objectName, contentType, data)
}

func (i impl) putObject(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	return i.publicUrl(objectName), nil
}

// publicUrl собирает постоянную ссылку на объект в публичном бакете
func (i impl) publicUrl(objectName string) string {
	host := config.Conf.S3.PublicHost
	if host == "" {
		scheme := "http"
		if *config.Conf.S3.UseSSL {
			scheme = "https"
		}
		host = fmt.Sprintf("%s://%s", scheme, config.Conf.S3.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", host, config.Conf.S3.BucketName, objectName)
}

func (i impl) MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}
