package response

import (
	"bytes"

	"ai-interview-backend/db"
	pdfexport "ai-interview-backend/lib/export/pdf"
	xlsexport "ai-interview-backend/lib/export/xls"
	interviewstore "ai-interview-backend/lib/interview/store"
	responsestore "ai-interview-backend/lib/response/store"
	"ai-interview-backend/models"
	responseapimodels "ai-interview-backend/models/api/response"
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	// Add сохраняет результат прохождения интервью кандидатом
	Add(rec dbmodels.InterviewResponse) (id string, err error)
	GetByID(id string) (view *responseapimodels.ResponseView, err error)
	ListByInterview(interviewID string, filter responseapimodels.ListFilter) (list []responseapimodels.ResponseView, rowCount int64, err error)
	// MarkAnswer выставляет вердикт по отдельному ответу
	MarkAnswer(responseID, answerID string, verdict models.Verdict) (hMsg string, err error)
	// MarkInterview выставляет вердикт по интервью в целом
	MarkInterview(responseID string, verdict models.Verdict) (hMsg string, err error)
	ExportXls(interviewID string) (*bytes.Buffer, error)
	ExportPdf(responseID string) (pdfFile []byte, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          responsestore.NewInstance(db.DB),
		interviewStore: interviewstore.NewInstance(db.DB),
		xlsExport:      xlsexport.Instance,
	}
}

type impl struct {
	store          responsestore.Provider
	interviewStore interviewstore.Provider
	xlsExport      xlsexport.Provider
}

func (i impl) Add(rec dbmodels.InterviewResponse) (id string, err error) {
	id, err = i.store.Save(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения результата интервью")
	}
	return id, nil
}

func (i impl) GetByID(id string) (*responseapimodels.ResponseView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения результата интервью")
	}
	if rec == nil {
		return nil, nil
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) ListByInterview(interviewID string, filter responseapimodels.ListFilter) (list []responseapimodels.ResponseView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recs, rowCount, err := i.store.ListByInterviewID(interviewID, filter.Search, page, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка результатов")
	}
	list = make([]responseapimodels.ResponseView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, rowCount, nil
}

func (i impl) MarkAnswer(responseID, answerID string, verdict models.Verdict) (hMsg string, err error) {
	rec, err := i.store.GetByID(responseID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения результата интервью")
	}
	if rec == nil {
		return "результат интервью не найден", nil
	}
	found := false
	for idx := range rec.Answers.Answers {
		if rec.Answers.Answers[idx].AnswerID == answerID {
			rec.Answers.Answers[idx].Verdict = verdict
			found = true
			break
		}
	}
	if !found {
		return "ответ не найден", nil
	}
	if _, err = i.store.Save(*rec); err != nil {
		return "", errors.Wrap(err, "ошибка сохранения вердикта")
	}
	return "", nil
}

func (i impl) MarkInterview(responseID string, verdict models.Verdict) (hMsg string, err error) {
	rec, err := i.store.GetByID(responseID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения результата интервью")
	}
	if rec == nil {
		return "результат интервью не найден", nil
	}
	rec.Status = verdict
	if _, err = i.store.Save(*rec); err != nil {
		return "", errors.Wrap(err, "ошибка сохранения вердикта")
	}
	return "", nil
}

func (i impl) ExportXls(interviewID string) (*bytes.Buffer, error) {
	positionTitle := ""
	interviewRec, err := i.interviewStore.GetByID(interviewID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения интервью")
	}
	if interviewRec != nil {
		positionTitle = interviewRec.PositionTitle
	}
	// выгружаем все записи, постранично
	list := []dbmodels.InterviewResponse{}
	page := 1
	for {
		recs, _, err := i.store.ListByInterviewID(interviewID, "", page, 100)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка получения списка результатов")
		}
		list = append(list, recs...)
		if len(recs) < 100 {
			break
		}
		page++
	}
	return i.xlsExport.ExportResponseList(positionTitle, list)
}

func (i impl) ExportPdf(responseID string) (pdfFile []byte, hMsg string, err error) {
	rec, err := i.store.GetByID(responseID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения результата интервью")
	}
	if rec == nil {
		return nil, "результат интервью не найден", nil
	}
	positionTitle := ""
	interviewRec, err := i.interviewStore.GetByID(rec.InterviewID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения интервью")
	}
	if interviewRec != nil {
		positionTitle = interviewRec.PositionTitle
	}
	pdfFile, err = pdfexport.GenerateResponseReport(positionTitle, *rec)
	if err != nil {
		return nil, "", err
	}
	return pdfFile, "", nil
}
