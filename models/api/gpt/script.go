package gptapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type ScriptDraftData struct {
	PositionTitle string `json:"position_title"` // Название позиции
	Topic         string `json:"topic"`          // Тема вопроса/сегмента
}

func (r ScriptDraftData) Validate() error {
	if strings.TrimSpace(r.PositionTitle) == "" {
		return errors.New("не указано название позиции")
	}
	if strings.TrimSpace(r.Topic) == "" {
		return errors.New("не указана тема")
	}
	return nil
}

type ScriptDraftView struct {
	Text string `json:"text"` // Сгенерированный текст сценария
}
