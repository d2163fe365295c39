package interview

import (
	"context"
	"fmt"

	"ai-interview-backend/config"
	"ai-interview-backend/db"
	filestorage "ai-interview-backend/lib/file-storage"
	contentstore "ai-interview-backend/lib/interview/content-store"
	interviewstore "ai-interview-backend/lib/interview/store"
	"ai-interview-backend/lib/smtp"
	"ai-interview-backend/lib/videogen"
	"ai-interview-backend/models"
	interviewapimodels "ai-interview-backend/models/api/interview"
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data interviewapimodels.InterviewData) (id string, err error)
	List() (list []interviewapimodels.InterviewView, err error)
	// GetByID возвращает интервью со всеми сегментами, ссылки bot-видео при необходимости дорезолвливаются и кешируются
	GetByID(ctx context.Context, id string) (view *interviewapimodels.InterviewView, err error)
	Delete(id string) error
	AddContent(ctx context.Context, interviewID string, data interviewapimodels.ContentData, file *interviewapimodels.FileData) (view *interviewapimodels.ContentView, hMsg string, err error)
	UpdateContent(ctx context.Context, contentID string, data interviewapimodels.ContentData, file *interviewapimodels.FileData) (view *interviewapimodels.ContentView, hMsg string, err error)
	DeleteContent(contentID string) (hMsg string, err error)
	// Invite отправляет кандидату письмо с публичной ссылкой на прохождение интервью
	Invite(interviewID, email string) (hMsg string, err error)
	// GenerateVideo запрашивает генерацию аватарного видео без привязки к сегменту
	GenerateVideo(ctx context.Context, data interviewapimodels.GenerateVideoData) (videoID string, err error)
	// ResolveVideo дожидается готовности видео по заданию генерации
	ResolveVideo(ctx context.Context, videoID string) (url string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		interviewStore: interviewstore.NewInstance(db.DB),
		contentStore:   contentstore.NewInstance(db.DB),
		videoGen:       videogen.Instance,
		fileStorage:    filestorage.Instance,
	}
}

type impl struct {
	interviewStore interviewstore.Provider
	contentStore   contentstore.Provider
	videoGen       videogen.Provider
	fileStorage    filestorage.Provider
}

func (i impl) Create(data interviewapimodels.InterviewData) (id string, err error) {
	rec := dbmodels.Interview{
		PositionTitle: data.PositionTitle,
	}
	id, err = i.interviewStore.Save(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения интервью")
	}
	return id, nil
}

func (i impl) List() (list []interviewapimodels.InterviewView, err error) {
	recs, err := i.interviewStore.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка интервью")
	}
	list = make([]interviewapimodels.InterviewView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByID(ctx context.Context, id string) (*interviewapimodels.InterviewView, error) {
	rec, err := i.interviewStore.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения интервью")
	}
	if rec == nil {
		return nil, nil
	}
	for idx := range rec.Contents {
		content := &rec.Contents[idx]
		if content.Mode != models.DeliveryModeBot || content.VideoID == "" || content.VideoUrl != "" {
			continue
		}
		url, err := i.videoGen.ResolveVideoURL(ctx, content.VideoID)
		if err != nil {
			// сегмент остается без видео, авторинг/прохождение не блокируем
			log.WithError(err).
				WithField("content_id", content.ID).
				WithField("video_id", content.VideoID).
				Warn("ошибка получения ссылки на сгенерированное видео")
			continue
		}
		content.VideoUrl = url
		if err = i.contentStore.SetVideoUrl(content.ID, url); err != nil {
			log.WithError(err).
				WithField("content_id", content.ID).
				Warn("ошибка кеширования ссылки на видео")
		}
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) Delete(id string) error {
	return i.interviewStore.Delete(id)
}

func (i impl) AddContent(ctx context.Context, interviewID string, data interviewapimodels.ContentData, file *interviewapimodels.FileData) (view *interviewapimodels.ContentView, hMsg string, err error) {
	interviewRec, err := i.interviewStore.GetByID(interviewID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения интервью")
	}
	if interviewRec == nil {
		return nil, "интервью не найдено", nil
	}
	if hMsg, err = i.checkContentUnique(interviewID, "", data); hMsg != "" || err != nil {
		return nil, hMsg, err
	}

	rec := dbmodels.InterviewContent{
		InterviewID: interviewID,
		Kind:        data.Kind,
		Title:       data.Title,
		Text:        data.Text,
		Mode:        data.Mode,
		OrderNo:     data.OrderNo,
	}
	hMsg, err = i.fillMedia(ctx, &rec, data, file)
	if hMsg != "" || err != nil {
		return nil, hMsg, err
	}
	id, err := i.contentStore.Save(rec)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка сохранения сегмента")
	}
	rec.ID = id
	result := rec.ToModel()
	return &result, "", nil
}

func (i impl) UpdateContent(ctx context.Context, contentID string, data interviewapimodels.ContentData, file *interviewapimodels.FileData) (view *interviewapimodels.ContentView, hMsg string, err error) {
	rec, err := i.contentStore.GetByID(contentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения сегмента")
	}
	if rec == nil {
		return nil, "сегмент не найден", nil
	}
	if hMsg, err = i.checkContentUnique(rec.InterviewID, contentID, data); hMsg != "" || err != nil {
		return nil, hMsg, err
	}

	textChanged := rec.Text != data.Text
	rec.Kind = data.Kind
	rec.Title = data.Title
	rec.Text = data.Text
	rec.OrderNo = data.OrderNo
	if rec.Mode != data.Mode || (data.Mode == models.DeliveryModeBot && textChanged) {
		// при смене режима или текста прежнее видео неактуально
		rec.VideoID = ""
		rec.VideoUrl = ""
	}
	rec.Mode = data.Mode
	hMsg, err = i.fillMedia(ctx, rec, data, file)
	if hMsg != "" || err != nil {
		return nil, hMsg, err
	}
	if _, err = i.contentStore.Save(*rec); err != nil {
		return nil, "", errors.Wrap(err, "ошибка сохранения сегмента")
	}
	result := rec.ToModel()
	return &result, "", nil
}

// fillMedia заполняет источник видео сегмента: загруженный файл для human, задание генерации для bot
func (i impl) fillMedia(ctx context.Context, rec *dbmodels.InterviewContent, data interviewapimodels.ContentData, file *interviewapimodels.FileData) (hMsg string, err error) {
	switch data.Mode {
	case models.DeliveryModeHuman:
		if file == nil {
			return "", nil
		}
		url, err := i.fileStorage.UploadContentVideo(ctx, rec.InterviewID, rec.Kind, file.Name, file.ContentType, file.Data)
		if err != nil {
			return "", errors.Wrap(err, "ошибка загрузки видео сегмента")
		}
		rec.VideoID = ""
		rec.VideoUrl = url
	case models.DeliveryModeBot:
		if data.VideoID != "" {
			rec.VideoID = data.VideoID
			return "", nil
		}
		if rec.VideoID != "" {
			// генерация уже запрошена ранее
			return "", nil
		}
		videoID, err := i.videoGen.RequestGeneration(ctx, rec.ID, data.Text, "", "")
		if err != nil {
			// ошибку провайдера отдаем как есть, сегмент остается без видео
			return err.Error(), nil
		}
		rec.VideoID = videoID
	}
	return "", nil
}

func (i impl) checkContentUnique(interviewID, contentID string, data interviewapimodels.ContentData) (hMsg string, err error) {
	if data.Kind != models.ContentKindQuestion {
		// приветствие и прощание встречаются не более одного раза
		existedRec, err := i.contentStore.GetByKind(interviewID, data.Kind)
		if err != nil {
			return "", errors.Wrap(err, "ошибка проверки уникальности сегмента")
		}
		if existedRec != nil && existedRec.ID != contentID {
			return fmt.Sprintf("сегмент типа %v уже существует в интервью", data.Kind), nil
		}
	}
	existedRec, err := i.contentStore.GetByOrderNo(interviewID, data.OrderNo)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки порядкового номера")
	}
	if existedRec != nil && existedRec.ID != contentID {
		return fmt.Sprintf("порядковый номер %v уже занят", data.OrderNo), nil
	}
	return "", nil
}

func (i impl) DeleteContent(contentID string) (hMsg string, err error) {
	rec, err := i.contentStore.GetByID(contentID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сегмента")
	}
	if rec == nil {
		return "сегмент не найден", nil
	}
	if err = i.contentStore.Delete(contentID); err != nil {
		return "", errors.Wrap(err, "ошибка удаления сегмента")
	}
	return "", nil
}

func (i impl) Invite(interviewID, email string) (hMsg string, err error) {
	rec, err := i.interviewStore.GetByID(interviewID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения интервью")
	}
	if rec == nil {
		return "интервью не найдено", nil
	}
	link := config.Conf.UIParams.InterviewPath + interviewID
	message := fmt.Sprintf("Добрый день!\r\nПриглашаем вас пройти видеоинтервью на позицию \"%v\".\r\nСсылка для прохождения: %v", rec.PositionTitle, link)
	err = smtp.Instance.SendEMail(config.Conf.Smtp.User, email, message, "Приглашение на видеоинтервью")
	if err != nil {
		return "", errors.Wrap(err, "ошибка отправки приглашения")
	}
	log.WithField("interview_id", interviewID).
		WithField("email", email).
		Info("Кандидату отправлена ссылка на интервью")
	return "", nil
}

func (i impl) GenerateVideo(ctx context.Context, data interviewapimodels.GenerateVideoData) (videoID string, err error) {
	return i.videoGen.RequestGeneration(ctx, "", data.Text, data.AvatarID, data.VoiceID)
}

func (i impl) ResolveVideo(ctx context.Context, videoID string) (url string, err error) {
	return i.videoGen.ResolveVideoURL(ctx, videoID)
}
