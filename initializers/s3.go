package initializers

import (
	"context"

	"ai-interview-backend/config"
	filestorage "ai-interview-backend/lib/file-storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(ctx)
	if err != nil {
		log.WithError(err).Error("Ошибка соединения с S3, ListBuckets вернул ошибку")
	}

	filestorage.NewInstance(minioClient)
	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка создания бакета для видео интервью")
	}
	log.Info("S3 клиент успешно инициализирован")
}
