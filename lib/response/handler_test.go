package response

import (
	"bytes"
	"testing"

	xlsexport "ai-interview-backend/lib/export/xls"
	"ai-interview-backend/models"
	responseapimodels "ai-interview-backend/models/api/response"
	dbmodels "ai-interview-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	recs     map[string]*dbmodels.InterviewResponse
	gotPage  int
	gotLimit int
}

func (f *fakeStore) Save(rec dbmodels.InterviewResponse) (string, error) {
	if rec.ID == "" {
		rec.ID = "response-1"
	}
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.InterviewResponse, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeStore) ListByInterviewID(interviewID, search string, page, limit int) ([]dbmodels.InterviewResponse, int64, error) {
	f.gotPage = page
	f.gotLimit = limit
	if page > 1 {
		return nil, 0, nil
	}
	list := []dbmodels.InterviewResponse{}
	for _, rec := range f.recs {
		if rec.InterviewID == interviewID {
			list = append(list, *rec)
		}
	}
	return list, int64(len(list)), nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

type fakeInterviewStore struct{}

func (fakeInterviewStore) Save(rec dbmodels.Interview) (string, error) { return "", nil }

func (fakeInterviewStore) GetByID(id string) (*dbmodels.Interview, error) {
	return &dbmodels.Interview{PositionTitle: "Go разработчик"}, nil
}

func (fakeInterviewStore) List() ([]dbmodels.Interview, error) { return nil, nil }

func (fakeInterviewStore) Delete(id string) error { return nil }

func newTestResponse() dbmodels.InterviewResponse {
	return dbmodels.InterviewResponse{
		InterviewID:    "interview-1",
		ApplicantName:  "Иванов Иван",
		ApplicantEmail: "ivanov@example.com",
		Progress:       models.ProgressCompleted,
		Status:         models.VerdictNotScored,
		Answers: dbmodels.ResponseAnswers{Answers: []dbmodels.ResponseAnswer{
			{AnswerID: "answer-1", OrderNo: 1, QuestionText: "вопрос 1", AnswerVideoUrl: "https://s3.local/a1.webm", Verdict: models.VerdictNotScored},
			{AnswerID: "answer-2", OrderNo: 2, QuestionText: "вопрос 2", Verdict: models.VerdictNotScored},
		}},
	}
}

func newTestHandler() (impl, *fakeStore) {
	store := &fakeStore{recs: map[string]*dbmodels.InterviewResponse{}}
	xlsexport.NewHandler()
	h := impl{
		store:          store,
		interviewStore: fakeInterviewStore{},
		xlsExport:      xlsexport.Instance,
	}
	return h, store
}

func TestResponseHandler(t *testing.T) {
	t.Run(`вердикт по ответу check`, func(t *testing.T) {
		h, store := newTestHandler()
		id, err := h.Add(newTestResponse())
		require.Nil(t, err)

		hMsg, err := h.MarkAnswer(id, "answer-2", models.VerdictPass)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec, _ := store.GetByID(id)
		require.Equal(t, models.VerdictPass, rec.Answers.Answers[1].Verdict)
		// остальные ответы не затронуты
		require.Equal(t, models.VerdictNotScored, rec.Answers.Answers[0].Verdict)

		hMsg, err = h.MarkAnswer(id, "missing", models.VerdictFail)
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`вердикт по интервью check`, func(t *testing.T) {
		h, store := newTestHandler()
		id, err := h.Add(newTestResponse())
		require.Nil(t, err)

		hMsg, err := h.MarkInterview(id, models.VerdictFail)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec, _ := store.GetByID(id)
		require.Equal(t, models.VerdictFail, rec.Status)

		hMsg, err = h.MarkInterview("missing", models.VerdictPass)
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`список с фильтром check`, func(t *testing.T) {
		h, _ := newTestHandler()
		_, err := h.Add(newTestResponse())
		require.Nil(t, err)

		list, rowCount, err := h.ListByInterview("interview-1", responseapimodels.ListFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Len(t, list, 1)
		require.Equal(t, "Иванов Иван", list[0].ApplicantName)
		require.Len(t, list[0].Answers, 2)
	})

	t.Run(`пагинация списка check`, func(t *testing.T) {
		h, store := newTestHandler()
		_, err := h.Add(newTestResponse())
		require.Nil(t, err)

		// пустой фильтр дает значения по умолчанию
		_, _, err = h.ListByInterview("interview-1", responseapimodels.ListFilter{})
		require.Nil(t, err)
		require.Equal(t, 1, store.gotPage)
		require.Equal(t, 10, store.gotLimit)

		filter := responseapimodels.ListFilter{}
		filter.Page = 3
		filter.Limit = 500
		_, _, err = h.ListByInterview("interview-1", filter)
		require.Nil(t, err)
		require.Equal(t, 3, store.gotPage)
		require.Equal(t, 100, store.gotLimit)
	})

	t.Run(`выгрузка в excel check`, func(t *testing.T) {
		h, _ := newTestHandler()
		_, err := h.Add(newTestResponse())
		require.Nil(t, err)

		data, err := h.ExportXls("interview-1")
		require.Nil(t, err)
		require.NotNil(t, data)
		// xlsx это zip архив
		require.True(t, bytes.HasPrefix(data.Bytes(), []byte("PK")))
	})
}
