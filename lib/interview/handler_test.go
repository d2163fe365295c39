package interview

import (
	"context"
	"strconv"
	"testing"

	"ai-interview-backend/models"
	interviewapimodels "ai-interview-backend/models/api/interview"
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeInterviewStore struct {
	recs map[string]*dbmodels.Interview
}

func (f *fakeInterviewStore) Save(rec dbmodels.Interview) (string, error) {
	if rec.ID == "" {
		rec.ID = "interview-" + strconv.Itoa(len(f.recs)+1)
	}
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeInterviewStore) GetByID(id string) (*dbmodels.Interview, error) {
	return f.recs[id], nil
}

func (f *fakeInterviewStore) List() ([]dbmodels.Interview, error) {
	list := []dbmodels.Interview{}
	for _, rec := range f.recs {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeInterviewStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

type fakeContentStore struct {
	recs map[string]*dbmodels.InterviewContent
}

func (f *fakeContentStore) Save(rec dbmodels.InterviewContent) (string, error) {
	if rec.ID == "" {
		rec.ID = "content-" + strconv.Itoa(len(f.recs)+1)
	}
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeContentStore) GetByID(id string) (*dbmodels.InterviewContent, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeContentStore) GetByInterviewID(interviewID string) ([]dbmodels.InterviewContent, error) {
	list := []dbmodels.InterviewContent{}
	for _, rec := range f.recs {
		if rec.InterviewID == interviewID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeContentStore) GetByOrderNo(interviewID string, orderNo int) (*dbmodels.InterviewContent, error) {
	for _, rec := range f.recs {
		if rec.InterviewID == interviewID && rec.OrderNo == orderNo {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeContentStore) GetByKind(interviewID string, kind models.ContentKind) (*dbmodels.InterviewContent, error) {
	for _, rec := range f.recs {
		if rec.InterviewID == interviewID && rec.Kind == kind {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeContentStore) GetUnresolved() ([]dbmodels.InterviewContent, error) {
	return nil, nil
}

func (f *fakeContentStore) SetVideoUrl(id, videoUrl string) error {
	if rec, ok := f.recs[id]; ok {
		rec.VideoUrl = videoUrl
	}
	return nil
}

func (f *fakeContentStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

type fakeVideoGen struct {
	requested int
	failMsg   string
}

func (f *fakeVideoGen) RequestGeneration(_ context.Context, contentID, text, avatarID, voiceID string) (string, error) {
	if f.failMsg != "" {
		return "", errors.New(f.failMsg)
	}
	f.requested++
	return "video-" + strconv.Itoa(f.requested), nil
}

func (f *fakeVideoGen) ResolveVideoURL(_ context.Context, videoID string) (string, error) {
	return "https://cdn/" + videoID + ".mp4", nil
}

func (f *fakeVideoGen) CheckStatus(_ context.Context, videoID string) (models.VideoGenStatus, string, error) {
	return models.VideoGenStatusCompleted, "https://cdn/" + videoID + ".mp4", nil
}

type fakeFileStorage struct {
	uploads int
}

func (f *fakeFileStorage) UploadContentVideo(_ context.Context, interviewID string, kind models.ContentKind, fileName, contentType string, data []byte) (string, error) {
	f.uploads++
	return "https://s3.local/" + interviewID + "/" + fileName, nil
}

func (f *fakeFileStorage) UploadAnswerVideo(_ context.Context, interviewID string, orderNo int, fileName, contentType string, data []byte) (string, error) {
	return "", nil
}

func (f *fakeFileStorage) MakeBucket(_ context.Context) error {
	return nil
}

func newTestHandler() (impl, *fakeInterviewStore, *fakeContentStore, *fakeVideoGen, *fakeFileStorage) {
	interviews := &fakeInterviewStore{recs: map[string]*dbmodels.Interview{}}
	contents := &fakeContentStore{recs: map[string]*dbmodels.InterviewContent{}}
	videoGen := &fakeVideoGen{}
	storage := &fakeFileStorage{}
	h := impl{
		interviewStore: interviews,
		contentStore:   contents,
		videoGen:       videoGen,
		fileStorage:    storage,
	}
	return h, interviews, contents, videoGen, storage
}

func TestInterviewHandler(t *testing.T) {
	ctx := context.Background()

	t.Run(`уникальность приветствия check`, func(t *testing.T) {
		h, _, _, _, _ := newTestHandler()
		id, err := h.Create(interviewapimodels.InterviewData{PositionTitle: "Go разработчик"})
		require.Nil(t, err)

		data := interviewapimodels.ContentData{
			Kind:    models.ContentKindIntroduction,
			Text:    "привет",
			Mode:    models.DeliveryModeHuman,
			OrderNo: 1,
		}
		view, hMsg, err := h.AddContent(ctx, id, data, nil)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.NotNil(t, view)

		// второе приветствие отклоняется
		data.OrderNo = 2
		view, hMsg, err = h.AddContent(ctx, id, data, nil)
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)
		require.Nil(t, view)
	})

	t.Run(`уникальность порядкового номера check`, func(t *testing.T) {
		h, _, _, _, _ := newTestHandler()
		id, err := h.Create(interviewapimodels.InterviewData{PositionTitle: "Go разработчик"})
		require.Nil(t, err)

		data := interviewapimodels.ContentData{
			Kind:    models.ContentKindQuestion,
			Text:    "вопрос 1",
			Mode:    models.DeliveryModeHuman,
			OrderNo: 1,
		}
		_, hMsg, err := h.AddContent(ctx, id, data, nil)
		require.Nil(t, err)
		require.Empty(t, hMsg)

		data.Text = "вопрос 2"
		_, hMsg, err = h.AddContent(ctx, id, data, nil)
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`human сегмент с файлом check`, func(t *testing.T) {
		h, _, _, _, storage := newTestHandler()
		id, err := h.Create(interviewapimodels.InterviewData{PositionTitle: "Go разработчик"})
		require.Nil(t, err)

		data := interviewapimodels.ContentData{
			Kind:    models.ContentKindQuestion,
			Text:    "вопрос",
			Mode:    models.DeliveryModeHuman,
			OrderNo: 1,
		}
		file := &interviewapimodels.FileData{Name: "q1.mp4", ContentType: "video/mp4", Data: []byte("video")}
		view, hMsg, err := h.AddContent(ctx, id, data, file)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, 1, storage.uploads)
		require.NotEmpty(t, view.VideoUrl)
		require.Empty(t, view.VideoID)
	})

	t.Run(`bot сегмент запрашивает генерацию check`, func(t *testing.T) {
		h, _, _, videoGen, _ := newTestHandler()
		id, err := h.Create(interviewapimodels.InterviewData{PositionTitle: "Go разработчик"})
		require.Nil(t, err)

		data := interviewapimodels.ContentData{
			Kind:    models.ContentKindQuestion,
			Text:    "вопрос",
			Mode:    models.DeliveryModeBot,
			OrderNo: 1,
		}
		view, hMsg, err := h.AddContent(ctx, id, data, nil)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, 1, videoGen.requested)
		require.Equal(t, "video-1", view.VideoID)
	})

	t.Run(`ошибка провайдера генерации check`, func(t *testing.T) {
		h, _, _, videoGen, _ := newTestHandler()
		videoGen.failMsg = "недостаточно кредитов"
		id, err := h.Create(interviewapimodels.InterviewData{PositionTitle: "Go разработчик"})
		require.Nil(t, err)

		data := interviewapimodels.ContentData{
			Kind:    models.ContentKindQuestion,
			Text:    "вопрос",
			Mode:    models.DeliveryModeBot,
			OrderNo: 1,
		}
		// сообщение провайдера уходит рекрутеру как есть
		view, hMsg, err := h.AddContent(ctx, id, data, nil)
		require.Nil(t, err)
		require.Equal(t, "недостаточно кредитов", hMsg)
		require.Nil(t, view)
	})

	t.Run(`смена текста сбрасывает видео check`, func(t *testing.T) {
		h, _, contents, videoGen, _ := newTestHandler()
		id, err := h.Create(interviewapimodels.InterviewData{PositionTitle: "Go разработчик"})
		require.Nil(t, err)

		data := interviewapimodels.ContentData{
			Kind:    models.ContentKindQuestion,
			Text:    "старый текст",
			Mode:    models.DeliveryModeBot,
			OrderNo: 1,
		}
		view, hMsg, err := h.AddContent(ctx, id, data, nil)
		require.Nil(t, err)
		require.Empty(t, hMsg)

		data.Text = "новый текст"
		updated, hMsg, err := h.UpdateContent(ctx, view.ID, data, nil)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		// прежнее задание неактуально, запрошена новая генерация
		require.Equal(t, 2, videoGen.requested)
		require.Equal(t, "video-2", updated.VideoID)

		rec, err := contents.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, "video-2", rec.VideoID)
	})

	t.Run(`получение интервью кеширует ссылки check`, func(t *testing.T) {
		h, _, contents, _, _ := newTestHandler()
		id, err := h.Create(interviewapimodels.InterviewData{PositionTitle: "Go разработчик"})
		require.Nil(t, err)
		contentID, err := contents.Save(dbmodels.InterviewContent{
			InterviewID: id,
			Kind:        models.ContentKindQuestion,
			Text:        "вопрос",
			Mode:        models.DeliveryModeBot,
			OrderNo:     1,
			VideoID:     "video-9",
		})
		require.Nil(t, err)

		h.interviewStore.(*fakeInterviewStore).recs[id].Contents = []dbmodels.InterviewContent{*contents.recs[contentID]}
		view, err := h.GetByID(ctx, id)
		require.Nil(t, err)
		require.Equal(t, "https://cdn/video-9.mp4", view.Contents[0].VideoUrl)

		rec, err := contents.GetByID(contentID)
		require.Nil(t, err)
		require.Equal(t, "https://cdn/video-9.mp4", rec.VideoUrl)
	})
}
