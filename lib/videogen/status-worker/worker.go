package statusworker

import (
	"context"
	"time"

	"ai-interview-backend/db"
	contentstore "ai-interview-backend/lib/interview/content-store"
	baseworker "ai-interview-backend/lib/utils/base-worker"
	"ai-interview-backend/lib/utils/helpers"
	"ai-interview-backend/lib/videogen"
	"ai-interview-backend/models"
)

// StartWorker запускает фоновую проверку статуса генерации видео:
// сегменты с запрошенной генерацией, но без готовой ссылки, опрашиваются
// по одному разу за проход, готовые ссылки кешируются в базе.
func StartWorker(ctx context.Context, firstRunDelay time.Duration) {
	w := worker{
		BaseImpl:     *baseworker.NewInstance("VideoGenStatusWorker", firstRunDelay, time.Minute),
		contentStore: contentstore.NewInstance(db.DB),
		videoGen:     videogen.Instance,
	}
	go w.Run(ctx, w.checkStatuses)
}

type worker struct {
	baseworker.BaseImpl
	contentStore contentstore.Provider
	videoGen     videogen.Provider
}

func (i worker) checkStatuses(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.contentStore.GetUnresolved()
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка получения сегментов с незавершенной генерацией")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		recLogger := logger.
			WithField("content_id", rec.ID).
			WithField("video_id", rec.VideoID)
		status, url, err := i.videoGen.CheckStatus(ctx, rec.VideoID)
		if err != nil {
			recLogger.
				WithError(err).
				Warn("ошибка проверки статуса генерации видео")
			continue
		}
		switch status {
		case models.VideoGenStatusCompleted:
			if err = i.contentStore.SetVideoUrl(rec.ID, url); err != nil {
				recLogger.
					WithError(err).
					Error("ошибка сохранения ссылки на готовое видео")
				continue
			}
			recLogger.Info("ссылка на сгенерированное видео закеширована")
		case models.VideoGenStatusFailed:
			recLogger.Warn("генерация видео завершилась ошибкой")
		}
	}
}
