package publicapi

import (
	"context"
	"time"

	"ai-interview-backend/config"
	"ai-interview-backend/lib/videogen"
	"ai-interview-backend/models"
	interviewapimodels "ai-interview-backend/models/api/interview"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func InitPublicVideoStatusRouters(app *fiber.App) {
	app.Get("/video/:id/status", websocket.New(videoStatusHandler))
}

// @Summary Статус генерации видео
// @Tags Websocket Генерация видео
// @Description Канал статуса генерации видео аватара, сообщения до терминального статуса
// @Param   id          		path    string  true         "Идентификатор задания генерации"
// @Success 200 {object} interviewapimodels.VideoStatusMessage
// @Failure 400
// @Failure 500
// @router /api/v1/public/video/{id}/status [get]
func videoStatusHandler(c *websocket.Conn) {
	videoID := c.Params("id")
	logger := log.WithField("video_id", videoID)
	interval := time.Duration(config.Conf.HeyGen.PollIntervalSec) * time.Second
	deadline := time.Now().Add(time.Duration(config.Conf.HeyGen.PollTimeoutSec) * time.Second)
	for {
		status, url, err := videogen.Instance.CheckStatus(context.Background(), videoID)
		msg := interviewapimodels.VideoStatusMessage{
			VideoID:  videoID,
			Status:   string(status),
			VideoUrl: url,
		}
		if err != nil {
			logger.WithError(err).Warn("ошибка проверки статуса генерации видео")
			msg.Status = ""
			msg.Error = "ошибка проверки статуса генерации"
		}
		switch status {
		case models.VideoGenStatusCompleted, models.VideoGenStatusFailed:
			msg.Done = true
		}
		if time.Now().Add(interval).After(deadline) && !msg.Done {
			msg.Done = true
			msg.Error = "превышено время ожидания генерации"
		}
		if err = c.WriteJSON(msg); err != nil {
			logger.WithError(err).Info("канал статуса генерации закрыт клиентом")
			return
		}
		if msg.Done {
			return
		}
		time.Sleep(interval)
	}
}
