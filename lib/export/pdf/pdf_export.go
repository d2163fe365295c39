package pdfexport

import (
	"bytes"
	"fmt"

	dbmodels "ai-interview-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateResponseReport формирует pdf-отчет по прохождению интервью кандидатом
func GenerateResponseReport(positionTitle string, rec dbmodels.InterviewResponse) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateResponseReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Видеоинтервью: %v", positionTitle), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Кандидат: %v (%v)", rec.ApplicantName, rec.ApplicantEmail), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Начато: %v", rec.CreatedAt.Format("02.01.2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Прогресс: %v", rec.Progress), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Вердикт: %v", rec.Status), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, answer := range rec.Answers.Answers {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 7, fmt.Sprintf("Вопрос %v. %v", answer.OrderNo, answer.QuestionText), "", "L", false)
		pdf.SetFont("Arial", "", 11)
		if answer.AnswerVideoUrl != "" {
			pdf.MultiCell(0, 6, fmt.Sprintf("Видео ответа: %v", answer.AnswerVideoUrl), "", "L", false)
		} else {
			pdf.MultiCell(0, 6, "Ответ не записан", "", "L", false)
		}
		pdf.MultiCell(0, 6, fmt.Sprintf("Вердикт: %v", answer.Verdict), "", "L", false)
		pdf.Ln(2)
	}

	buf := bytes.Buffer{}
	if err = pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}
