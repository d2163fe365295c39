package videogen

import (
	"context"
	"time"

	"ai-interview-backend/config"
	"ai-interview-backend/db"
	heygenclient "ai-interview-backend/lib/heygen/client"
	videogenstore "ai-interview-backend/lib/videogen/store"
	"ai-interview-backend/models"
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// генерация завершилась ошибкой на стороне провайдера
	ErrGenerationFailed = errors.New("генерация видео завершилась ошибкой")
	// генерация не достигла терминального статуса за отведенное время
	ErrGenerationTimeout = errors.New("превышено время ожидания генерации видео")
)

type Provider interface {
	// RequestGeneration отправляет текст на генерацию, возвращает идентификатор задания
	RequestGeneration(ctx context.Context, contentID, text, avatarID, voiceID string) (videoID string, err error)
	// ResolveVideoURL опрашивает статус задания до готовности и возвращает ссылку на видео
	ResolveVideoURL(ctx context.Context, videoID string) (url string, err error)
	// CheckStatus выполняет разовый опрос статуса задания
	CheckStatus(ctx context.Context, videoID string) (status models.VideoGenStatus, url string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client:       heygenclient.Instance,
		jobStore:     videogenstore.NewInstance(db.DB),
		pollInterval: time.Duration(config.Conf.HeyGen.PollIntervalSec) * time.Second,
		pollTimeout:  time.Duration(config.Conf.HeyGen.PollTimeoutSec) * time.Second,
	}
}

type impl struct {
	client       heygenclient.Provider
	jobStore     videogenstore.Provider
	pollInterval time.Duration
	pollTimeout  time.Duration
}

func (i impl) RequestGeneration(ctx context.Context, contentID, text, avatarID, voiceID string) (videoID string, err error) {
	videoID, err = i.client.Generate(ctx, text, avatarID, voiceID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.VideoGenJob{
		VideoID:    videoID,
		ContentID:  contentID,
		SourceText: text,
		Status:     models.VideoGenStatusPending,
	}
	if _, err := i.jobStore.Save(rec); err != nil {
		// задание уже принято провайдером, учетная запись вторична
		log.WithError(err).
			WithField("video_id", videoID).
			Warn("ошибка сохранения задания генерации в бд")
	}
	return videoID, nil
}

func (i impl) CheckStatus(ctx context.Context, videoID string) (status models.VideoGenStatus, url string, err error) {
	return i.client.Status(ctx, videoID)
}

func (i impl) ResolveVideoURL(ctx context.Context, videoID string) (url string, err error) {
	logger := log.WithField("video_id", videoID)
	deadline := time.Now().Add(i.pollTimeout)
	attempts := 0
	for {
		attempts++
		status, resultUrl, err := i.client.Status(ctx, videoID)
		if err != nil {
			// сетевая ошибка отдельного опроса не прерывает ожидание, но учитывается в общем бюджете
			logger.WithError(err).Warn("ошибка опроса статуса генерации")
		} else {
			switch status {
			case models.VideoGenStatusCompleted:
				i.saveJobState(videoID, status, resultUrl, attempts, "")
				return resultUrl, nil
			case models.VideoGenStatusFailed:
				i.saveJobState(videoID, status, "", attempts, ErrGenerationFailed.Error())
				return "", ErrGenerationFailed
			}
		}
		if time.Now().Add(i.pollInterval).After(deadline) {
			i.saveJobState(videoID, models.VideoGenStatusProcessing, "", attempts, ErrGenerationTimeout.Error())
			return "", ErrGenerationTimeout
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(i.pollInterval):
		}
	}
}

func (i impl) saveJobState(videoID string, status models.VideoGenStatus, resultUrl string, attempts int, lastError string) {
	rec, err := i.jobStore.GetByVideoID(videoID)
	if err != nil {
		log.WithError(err).
			WithField("video_id", videoID).
			Warn("ошибка получения задания генерации из бд")
		return
	}
	if rec == nil {
		// генерация могла быть запрошена до появления учета заданий
		rec = &dbmodels.VideoGenJob{VideoID: videoID}
	}
	rec.Status = status
	rec.ResultUrl = resultUrl
	rec.Attempts = rec.Attempts + attempts
	rec.LastError = lastError
	if _, err = i.jobStore.Save(*rec); err != nil {
		log.WithError(err).
			WithField("video_id", videoID).
			Warn("ошибка обновления задания генерации в бд")
	}
}
