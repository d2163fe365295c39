package dbmodels

import (
	"ai-interview-backend/models"
	interviewapimodels "ai-interview-backend/models/api/interview"
)

// InterviewContent - сегмент сценария интервью (приветствие, вопрос, прощание)
type InterviewContent struct {
	BaseModel
	InterviewID string              `gorm:"type:varchar(36);index"`
	Kind        models.ContentKind  `gorm:"type:varchar(20)"` // introduction/question/farewell
	Title       string              `gorm:"type:varchar(255)"`
	Text        string              // Текст сценария сегмента
	Mode        models.DeliveryMode `gorm:"type:varchar(10)"` // human/bot
	OrderNo     int                 `gorm:"index"`            // Порядок показа, с 1
	VideoID     string              `gorm:"type:varchar(64)"` // Идентификатор задания генерации в HeyGen (для bot)
	VideoUrl    string              // Ссылка на готовое видео (загруженное или с закешированным результатом генерации)
}

func (c InterviewContent) ToModel() interviewapimodels.ContentView {
	return interviewapimodels.ContentView{
		ID:       c.ID,
		Kind:     c.Kind,
		Title:    c.Title,
		Text:     c.Text,
		Mode:     c.Mode,
		OrderNo:  c.OrderNo,
		VideoID:  c.VideoID,
		VideoUrl: c.VideoUrl,
	}
}
