package xlsexport

import (
	"bytes"
	"fmt"

	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportResponseList(positionTitle string, list []dbmodels.InterviewResponse) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var responseHeaders = []string{"Кандидат", "Почта", "Начато", "Завершено", "Прогресс", "Вердикт", "Ответы с видео", "Всего вопросов"}

func (i impl) ExportResponseList(positionTitle string, list []dbmodels.InterviewResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, responseHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeResponseData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	sheetName := positionTitle
	if sheetName == "" {
		sheetName = "Отклики"
	}
	f.SetSheetName(sheet, sheetName)
	return f.WriteToBuffer()
}

func writeResponseData(f *excelize.File, sheet string, list []dbmodels.InterviewResponse, row int) (int, error) {
	for _, item := range list {
		row++
		col := 1
		// "Кандидат"
		if err := writeColumn(f, sheet, col, row, item.ApplicantName); err != nil {
			return row, err
		}

		// "Почта"
		col++
		if err := writeColumn(f, sheet, col, row, item.ApplicantEmail); err != nil {
			return row, err
		}

		// "Начато"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		// "Завершено"
		col++
		if err := writeColumn(f, sheet, col, row, item.UpdatedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		// "Прогресс"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Progress)); err != nil {
			return row, err
		}

		// "Вердикт"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "Ответы с видео"
		col++
		withVideo := 0
		for _, answer := range item.Answers.Answers {
			if answer.AnswerVideoUrl != "" {
				withVideo++
			}
		}
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v", withVideo)); err != nil {
			return row, err
		}

		// "Всего вопросов"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v", len(item.Answers.Answers))); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return row, err
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return row, err
		}
		if err = f.SetCellValue(sheet, cell, header); err != nil {
			return row, err
		}
		if err = f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
