package interviewapimodels

import (
	"strings"
	"time"

	"ai-interview-backend/models"

	"github.com/pkg/errors"
)

type InterviewData struct {
	PositionTitle string `json:"position_title"` // Название позиции
}

func (r InterviewData) Validate() error {
	if strings.TrimSpace(r.PositionTitle) == "" {
		return errors.New("не указано название позиции")
	}
	return nil
}

// ContentData принимается и как json, и как поля multipart формы вместе с файлом видео
type ContentData struct {
	Kind    models.ContentKind  `json:"kind" form:"kind"`         // introduction/question/farewell
	Title   string              `json:"title" form:"title"`       // Заголовок сегмента
	Text    string              `json:"text" form:"text"`         // Текст сценария
	Mode    models.DeliveryMode `json:"mode" form:"mode"`         // human/bot
	OrderNo int                 `json:"order_no" form:"order_no"` // Порядок показа, с 1
	VideoID string              `json:"video_id" form:"video_id"` // Идентификатор задания генерации (для bot, если генерация уже запрошена)
}

func (r ContentData) Validate() error {
	if !r.Kind.IsValid() {
		return errors.New("не указан тип сегмента")
	}
	if !r.Mode.IsValid() {
		return errors.New("не указан режим сегмента (human/bot)")
	}
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("не указан текст сценария")
	}
	if r.OrderNo < 1 {
		return errors.New("порядковый номер сегмента должен быть больше нуля")
	}
	return nil
}

type ContentView struct {
	ID       string              `json:"id"`
	Kind     models.ContentKind  `json:"kind"`
	Title    string              `json:"title,omitempty"`
	Text     string              `json:"text"`
	Mode     models.DeliveryMode `json:"mode"`
	OrderNo  int                 `json:"order_no"`
	VideoID  string              `json:"video_id,omitempty"`
	VideoUrl string              `json:"video_url,omitempty"`
}

type InterviewView struct {
	ID            string        `json:"id"`
	PositionTitle string        `json:"position_title"`
	CreatedAt     time.Time     `json:"created_at"`
	Contents      []ContentView `json:"contents"`
}

// FileData - загруженный файл видео из multipart запроса
type FileData struct {
	Name        string
	ContentType string
	Data        []byte
}

type InviteData struct {
	Email string `json:"email"` // Почта кандидата для отправки ссылки
}

func (r InviteData) Validate() error {
	if !models.EmailRegexp.MatchString(r.Email) {
		return errors.New("указана некорректная почта")
	}
	return nil
}

type GenerateVideoData struct {
	Text     string `json:"text"`      // Текст сценария для озвучки аватаром
	AvatarID string `json:"avatar_id"` // Аватар, по умолчанию из настроек
	VoiceID  string `json:"voice_id"`  // Голос, по умолчанию из настроек
}

func (r GenerateVideoData) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("не указан текст для генерации")
	}
	return nil
}

type GenerateVideoView struct {
	VideoID string `json:"video_id"` // Идентификатор задания генерации
}

type ResolveVideoView struct {
	VideoID  string `json:"video_id"`
	VideoUrl string `json:"video_url"` // Ссылка на готовое видео
}

// VideoStatusMessage - сообщение websocket канала статуса генерации
type VideoStatusMessage struct {
	VideoID  string `json:"video_id"`
	Status   string `json:"status"`
	VideoUrl string `json:"video_url,omitempty"`
	Done     bool   `json:"done"` // Терминальный статус, канал закрывается
	Error    string `json:"error,omitempty"`
}
