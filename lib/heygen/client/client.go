package heygenclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"ai-interview-backend/config"
	"ai-interview-backend/models"
	heygenapimodels "ai-interview-backend/models/api/heygen"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	//https://docs.heygen.com/reference/create-an-avatar-video-v2
	Generate(ctx context.Context, text, avatarID, voiceID string) (videoID string, err error)

	//https://docs.heygen.com/reference/video-status
	Status(ctx context.Context, videoID string) (status models.VideoGenStatus, videoUrl string, err error)
}

var Instance Provider

const (
	generatePath = "/v2/video/generate"
	statusPath   = "/v1/video_status.get"
)

func NewProvider() {
	Instance = &impl{
		host:   config.Conf.HeyGen.Host,
		apiKey: config.Conf.HeyGen.ApiKey,
	}
}

type impl struct {
	host   string
	apiKey string
}

func (i impl) Generate(ctx context.Context, text, avatarID, voiceID string) (videoID string, err error) {
	if avatarID == "" {
		avatarID = config.Conf.HeyGen.DefaultAvatarID
	}
	if voiceID == "" {
		voiceID = config.Conf.HeyGen.DefaultVoiceID
	}
	request := heygenapimodels.GenerateRequest{
		Caption:   false,
		Title:     "AI Interview",
		Dimension: heygenapimodels.Dimension{Width: 1280, Height: 720},
		VideoInputs: []heygenapimodels.VideoInput{
			{
				Character: heygenapimodels.Character{
					Type:         "avatar",
					AvatarID:     avatarID,
					Scale:        1,
					AvatarStyle:  "normal",
					TalkingStyle: "stable",
					Expression:   "default",
				},
				Voice: heygenapimodels.Voice{
					Type:      "text",
					VoiceID:   voiceID,
					InputText: text,
					Speed:     1,
					Pitch:     1,
					Emotion:   "Excited",
					Locale:    "en_us",
				},
				Background: heygenapimodels.Background{Type: "color", Value: "#ffffff"},
			},
		},
	}

	uri := i.host + generatePath
	body, err := json.Marshal(request)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сериализации запроса")
	}
	r, _ := http.NewRequestWithContext(ctx, "POST", uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")

	logger := log.
		WithField("external_request", uri)

	resp := heygenapimodels.GenerateResponse{}
	err = i.sendRequest(logger, r, &resp)
	if err != nil {
		return "", err
	}
	if resp.Data.VideoID == "" {
		return "", errors.New("провайдер не вернул video_id")
	}
	return resp.Data.VideoID, nil
}

func (i impl) Status(ctx context.Context, videoID string) (status models.VideoGenStatus, videoUrl string, err error) {
	uri := fmt.Sprintf("%s%s?video_id=%s", i.host, statusPath, url.QueryEscape(videoID))
	r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)

	logger := log.
		WithField("video_id", videoID).
		WithField("external_request", uri)

	resp := heygenapimodels.StatusResponse{}
	err = i.sendRequest(logger, r, &resp)
	if err != nil {
		return "", "", err
	}
	return models.VideoGenStatus(resp.Data.Status), resp.Data.VideoUrl, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}) error {
	r.Header.Add("accept", "application/json")
	r.Header.Add("x-api-key", i.apiKey)
	client := &http.Client{}
	response, err := client.Do(r)
	if err != nil {
		return errors.Wrap(err, "ошибка отправки запроса в HeyGen")
	}
	defer response.Body.Close()
	responseBody, _ := io.ReadAll(response.Body)
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil {
			err = json.Unmarshal(responseBody, resp)
			if err != nil {
				return errors.Wrap(err, "ошибка сериализации ответа")
			}
		}
		return nil
	}

	logger = logger.WithField("response_body", string(responseBody))
	errorResp := struct {
		Error   *heygenapimodels.ErrorData `json:"error"`
		Message string                     `json:"message"`
	}{}
	if err = json.Unmarshal(responseBody, &errorResp); err != nil {
		logger.WithError(err).Error("ошибка сериализации ответа")
	}
	logger.Error("ошибка отправки запроса в HeyGen")
	// сообщение провайдера отдаем как есть
	if errorResp.Error != nil && errorResp.Error.Message != "" {
		return errors.New(errorResp.Error.Message)
	}
	if errorResp.Message != "" {
		return errors.New(errorResp.Message)
	}
	return errors.Errorf("HeyGen API error: %v", response.StatusCode)
}
