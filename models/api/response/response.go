package responseapimodels

import (
	"time"

	"ai-interview-backend/models"
	apimodels "ai-interview-backend/models/api"

	"github.com/pkg/errors"
)

type AnswerView struct {
	AnswerID       string         `json:"answer_id"`
	OrderNo        int            `json:"order_no"`
	QuestionText   string         `json:"question_text"`
	AnswerVideoUrl string         `json:"answer_video_url,omitempty"`
	Verdict        models.Verdict `json:"verdict"`
}

type ResponseView struct {
	ID             string                  `json:"id"`
	InterviewID    string                  `json:"interview_id"`
	ApplicantName  string                  `json:"applicant_name"`
	ApplicantEmail string                  `json:"applicant_email"`
	Progress       models.ResponseProgress `json:"progress"`
	Status         models.Verdict          `json:"status"`
	Started        time.Time               `json:"started"`
	Ended          time.Time               `json:"ended"`
	Answers        []AnswerView            `json:"answers"`
}

type ListFilter struct {
	apimodels.Pagination
	Search string `json:"search"` // Поиск по имени/почте кандидата
}

type VerdictData struct {
	Verdict models.Verdict `json:"verdict"` // Pass/Fail/Not Scored
}

func (r VerdictData) Validate() error {
	if !r.Verdict.IsValid() {
		return errors.New("указан некорректный вердикт")
	}
	return nil
}
