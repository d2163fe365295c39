package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"ai-interview-backend/models"
	responseapimodels "ai-interview-backend/models/api/response"
)

// InterviewResponse - сохраненный результат прохождения интервью кандидатом
type InterviewResponse struct {
	BaseModel
	InterviewID    string                  `gorm:"type:varchar(36);index"`
	ApplicantName  string                  `gorm:"type:varchar(255)"`
	ApplicantEmail string                  `gorm:"type:varchar(255)"`
	Answers        ResponseAnswers         `gorm:"type:jsonb"`
	Progress       models.ResponseProgress `gorm:"type:varchar(20)"`
	Status         models.Verdict          `gorm:"type:varchar(20)"` // Вердикт по интервью в целом
}

func (j ResponseAnswers) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ResponseAnswers) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type ResponseAnswers struct {
	Answers []ResponseAnswer `json:"answers"`
}

type ResponseAnswer struct {
	AnswerID       string         `json:"answer_id"`                  // Идентификатор ответа
	OrderNo        int            `json:"order_no"`                   // Порядок вопроса в интервью
	QuestionText   string         `json:"question_text"`              // Текст вопроса
	AnswerVideoUrl string         `json:"answer_video_url,omitempty"` // Ссылка на видео ответа, пустая если кандидат пропустил запись
	Verdict        models.Verdict `json:"verdict"`                    // Вердикт ревьюера по ответу
}

func (r InterviewResponse) ToModel() responseapimodels.ResponseView {
	view := responseapimodels.ResponseView{
		ID:             r.ID,
		InterviewID:    r.InterviewID,
		ApplicantName:  r.ApplicantName,
		ApplicantEmail: r.ApplicantEmail,
		Progress:       r.Progress,
		Status:         r.Status,
		Started:        r.CreatedAt,
		Ended:          r.UpdatedAt,
		Answers:        make([]responseapimodels.AnswerView, 0, len(r.Answers.Answers)),
	}
	for _, answer := range r.Answers.Answers {
		view.Answers = append(view.Answers, responseapimodels.AnswerView{
			AnswerID:       answer.AnswerID,
			OrderNo:        answer.OrderNo,
			QuestionText:   answer.QuestionText,
			AnswerVideoUrl: answer.AnswerVideoUrl,
			Verdict:        answer.Verdict,
		})
	}
	return view
}
