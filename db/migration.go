package db

import (
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewContent{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewContent")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewResponse{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewResponse")
	}
	if err := DB.AutoMigrate(&dbmodels.VideoGenJob{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры VideoGenJob")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
