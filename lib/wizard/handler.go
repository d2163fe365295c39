package wizard

import (
	"context"
	"fmt"
	"time"

	"ai-interview-backend/config"
	filestorage "ai-interview-backend/lib/file-storage"
	interviewhandler "ai-interview-backend/lib/interview"
	responsehandler "ai-interview-backend/lib/response"
	"ai-interview-backend/models"
	interviewapimodels "ai-interview-backend/models/api/interview"
	wizardapimodels "ai-interview-backend/models/api/wizard"
	dbmodels "ai-interview-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// StartSession создает сессию прохождения по опубликованному интервью
	StartSession(ctx context.Context, interviewID string) (view *wizardapimodels.SessionView, hMsg string, err error)
	GetSession(sessionID string) (view *wizardapimodels.SessionView, hMsg string, err error)
	// Begin переводит сессию с приветственного экрана к анкете
	Begin(sessionID string) (view *wizardapimodels.SessionView, hMsg string, err error)
	SetDetails(sessionID string, data wizardapimodels.DetailsData) (view *wizardapimodels.SessionView, hMsg string, err error)
	FinishMediaCheck(sessionID string) (view *wizardapimodels.SessionView, hMsg string, err error)
	// BeginAnswer переводит от просмотра вопроса к записи ответа
	BeginAnswer(sessionID string) (view *wizardapimodels.SessionView, hMsg string, err error)
	StartRecording(ctx context.Context, sessionID string) (hMsg string, err error)
	AppendChunk(sessionID string, chunk []byte) (hMsg string, err error)
	StopRecording(sessionID string, fileName, contentType string) (view *wizardapimodels.SessionView, hMsg string, err error)
	// UploadAnswer принимает ответ, записанный на стороне кандидата одним файлом
	UploadAnswer(sessionID string, file interviewapimodels.FileData) (view *wizardapimodels.SessionView, hMsg string, err error)
	// CommitAnswer фиксирует ответ (или пропуск вопроса) и идет дальше
	CommitAnswer(sessionID string) (view *wizardapimodels.SessionView, hMsg string, err error)
	Submit(ctx context.Context, sessionID string) (view *wizardapimodels.SubmitView, hMsg string, err error)
}

var Instance Provider

type interviewGetter interface {
	GetByID(ctx context.Context, id string) (*interviewapimodels.InterviewView, error)
}

type answerUploader interface {
	UploadAnswerVideo(ctx context.Context, interviewID string, orderNo int, fileName, contentType string, data []byte) (url string, err error)
}

type responseSaver interface {
	Add(rec dbmodels.InterviewResponse) (id string, err error)
}

type impl struct {
	interviews interviewGetter
	storage    answerUploader
	responses  responseSaver
	device     CaptureDevice
	store      *sessionStore
}

func NewHandler(ctx context.Context) {
	i := &impl{
		interviews: interviewhandler.Instance,
		storage:    filestorage.Instance,
		responses:  responsehandler.Instance,
		device:     RemoteCaptureDevice{},
		store:      newSessionStore(time.Duration(config.Conf.Wizard.SessionTTLMin) * time.Minute),
	}
	go i.store.janitor(ctx)
	Instance = i
}

func (i impl) getLogger(sessionID string) *log.Entry {
	return log.WithField("session_id", sessionID)
}

func (i impl) StartSession(ctx context.Context, interviewID string) (*wizardapimodels.SessionView, string, error) {
	view, err := i.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения интервью")
	}
	if view == nil {
		return nil, "интервью не найдено", nil
	}
	intro := Segment{}
	farewell := Segment{}
	questions := []Question{}
	for _, content := range view.Contents {
		switch content.Kind {
		case models.ContentKindIntroduction:
			intro = Segment{Text: content.Text, VideoUrl: content.VideoUrl}
		case models.ContentKindFarewell:
			farewell = Segment{Text: content.Text, VideoUrl: content.VideoUrl}
		case models.ContentKindQuestion:
			questions = append(questions, Question{
				OrderNo:  content.OrderNo,
				Text:     content.Text,
				VideoUrl: content.VideoUrl,
			})
		}
	}
	sess := NewSession(view.ID, view.PositionTitle, intro, farewell, questions, i.device)
	i.store.Add(sess)
	i.getLogger(sess.ID).
		WithField("interview_id", view.ID).
		Info("создана сессия прохождения интервью")
	return i.buildView(sess), "", nil
}

func (i impl) GetSession(sessionID string) (*wizardapimodels.SessionView, string, error) {
	sess, ok := i.store.Get(sessionID)
	if !ok {
		return nil, "сессия не найдена или истекла", nil
	}
	return i.buildView(sess), "", nil
}

func (i impl) Begin(sessionID string) (*wizardapimodels.SessionView, string, error) {
	return i.mutate(sessionID, func(sess *Session) error {
		return sess.Begin()
	})
}

func (i impl) SetDetails(sessionID string, data wizardapimodels.DetailsData) (*wizardapimodels.SessionView, string, error) {
	return i.mutate(sessionID, func(sess *Session) error {
		return sess.SetDetails(data.ApplicantName, data.ApplicantEmail)
	})
}

func (i impl) FinishMediaCheck(sessionID string) (*wizardapimodels.SessionView, string, error) {
	return i.mutate(sessionID, func(sess *Session) error {
		return sess.FinishMediaCheck()
	})
}

func (i impl) BeginAnswer(sessionID string) (*wizardapimodels.SessionView, string, error) {
	return i.mutate(sessionID, func(sess *Session) error {
		return sess.BeginAnswer()
	})
}

func (i impl) StartRecording(ctx context.Context, sessionID string) (string, error) {
	sess, ok := i.store.Get(sessionID)
	if !ok {
		return "сессия не найдена или истекла", nil
	}
	if err := sess.StartRecording(ctx); err != nil {
		return err.Error(), nil
	}
	return "", nil
}

func (i impl) AppendChunk(sessionID string, chunk []byte) (string, error) {
	sess, ok := i.store.Get(sessionID)
	if !ok {
		return "сессия не найдена или истекла", nil
	}
	if err := sess.AppendChunk(chunk); err != nil {
		return err.Error(), nil
	}
	return "", nil
}

func (i impl) StopRecording(sessionID string, fileName, contentType string) (*wizardapimodels.SessionView, string, error) {
	return i.mutate(sessionID, func(sess *Session) error {
		return sess.StopRecording(fileName, contentType)
	})
}

func (i impl) UploadAnswer(sessionID string, file interviewapimodels.FileData) (*wizardapimodels.SessionView, string, error) {
	return i.mutate(sessionID, func(sess *Session) error {
		return sess.SetCapture(&Media{
			FileName:    file.Name,
			ContentType: file.ContentType,
			Data:        file.Data,
		})
	})
}

func (i impl) CommitAnswer(sessionID string) (*wizardapimodels.SessionView, string, error) {
	return i.mutate(sessionID, func(sess *Session) error {
		return sess.CommitAnswer()
	})
}

func (i impl) Submit(ctx context.Context, sessionID string) (*wizardapimodels.SubmitView, string, error) {
	sess, ok := i.store.Get(sessionID)
	if !ok {
		return nil, "сессия не найдена или истекла", nil
	}
	hMsg, ok := sess.BeginSubmit()
	if !ok {
		return nil, hMsg, nil
	}
	logger := i.getLogger(sessionID)
	answers := sess.Answers()
	respAnswers := make([]dbmodels.ResponseAnswer, 0, len(answers))
	for _, answer := range answers {
		url := ""
		if answer.Media != nil {
			fileName := answer.Media.FileName
			if fileName == "" {
				fileName = fmt.Sprintf("answer-%v.webm", answer.OrderNo)
			}
			var err error
			url, err = i.storage.UploadAnswerVideo(ctx, sess.InterviewID, answer.OrderNo,
				fileName, answer.Media.ContentType, answer.Media.Data)
			if err != nil {
				sess.FinishSubmit(false)
				return nil, "", errors.Wrap(err, "ошибка сохранения видео ответа")
			}
		}
		respAnswers = append(respAnswers, dbmodels.ResponseAnswer{
			AnswerID:       uuid.NewString(),
			OrderNo:        answer.OrderNo,
			QuestionText:   answer.Text,
			AnswerVideoUrl: url,
			Verdict:        models.VerdictNotScored,
		})
	}
	name, email := sess.Details()
	id, err := i.responses.Add(dbmodels.InterviewResponse{
		InterviewID:    sess.InterviewID,
		ApplicantName:  name,
		ApplicantEmail: email,
		Answers:        dbmodels.ResponseAnswers{Answers: respAnswers},
		Progress:       models.ProgressCompleted,
		Status:         models.VerdictNotScored,
	})
	if err != nil {
		sess.FinishSubmit(false)
		return nil, "", errors.Wrap(err, "ошибка сохранения результата интервью")
	}
	sess.FinishSubmit(true)
	i.store.Delete(sessionID)
	logger.
		WithField("interview_id", sess.InterviewID).
		WithField("response_id", id).
		Info("результат прохождения интервью сохранен")
	return &wizardapimodels.SubmitView{ResponseID: id}, "", nil
}

func (i impl) mutate(sessionID string, op func(sess *Session) error) (*wizardapimodels.SessionView, string, error) {
	sess, ok := i.store.Get(sessionID)
	if !ok {
		return nil, "сессия не найдена или истекла", nil
	}
	if err := op(sess); err != nil {
		return i.buildView(sess), err.Error(), nil
	}
	return i.buildView(sess), "", nil
}

func (i impl) buildView(sess *Session) *wizardapimodels.SessionView {
	snap := sess.Snapshot()
	view := wizardapimodels.SessionView{
		SessionID:     sess.ID,
		InterviewID:   sess.InterviewID,
		PositionTitle: sess.PositionTitle,
		Step:          string(snap.state.Kind),
		QuestionCount: snap.questionCount,
		Text:          snap.text,
		VideoUrl:      snap.videoUrl,
	}
	switch snap.state.Kind {
	case StepIntro:
		view.ThumbnailUrl = models.DefaultAvatarPreviewUrl
	case StepQuestion, StepAnswer:
		view.QuestionNo = snap.state.Index + 1
		view.HasCapture = snap.hasCapture
	}
	return &view
}
