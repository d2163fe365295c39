package wizardapimodels

import (
	"strings"

	"ai-interview-backend/models"

	"github.com/pkg/errors"
)

type StartData struct {
	InterviewID string `json:"interview_id"`
}

func (r StartData) Validate() error {
	if strings.TrimSpace(r.InterviewID) == "" {
		return errors.New("не указан идентификатор интервью")
	}
	return nil
}

type DetailsData struct {
	ApplicantName  string `json:"applicant_name"`  // Имя кандидата
	ApplicantEmail string `json:"applicant_email"` // Почта кандидата
}

func (r DetailsData) Validate() error {
	if strings.TrimSpace(r.ApplicantName) == "" {
		return errors.New("не указано имя кандидата")
	}
	if !models.EmailRegexp.MatchString(r.ApplicantEmail) {
		return errors.New("указана некорректная почта")
	}
	return nil
}

// SessionView - текущее состояние сессии прохождения интервью
type SessionView struct {
	SessionID     string `json:"session_id"`
	InterviewID   string `json:"interview_id"`
	PositionTitle string `json:"position_title"`
	Step          string `json:"step"`                     // intro/details/media_check/question/answer/farewell/submitted
	QuestionNo    int    `json:"question_no,omitempty"`    // Номер текущего вопроса, с 1
	QuestionCount int    `json:"question_count"`           // Всего вопросов в интервью
	Text          string `json:"text,omitempty"`           // Текст текущего сегмента
	VideoUrl      string `json:"video_url,omitempty"`      // Видео текущего сегмента
	HasCapture    bool   `json:"has_capture,omitempty"`    // Есть записанный ответ на текущий вопрос
	ThumbnailUrl  string `json:"thumbnail_url,omitempty"`  // Превью аватара для стартовой карточки
}

type StopRecordData struct {
	FileName    string `json:"file_name"`    // Имя файла записи
	ContentType string `json:"content_type"` // MIME тип записи, по умолчанию video/webm
}

type SubmitView struct {
	ResponseID string `json:"response_id"` // Идентификатор сохраненного результата
}
