package gpthandler

import (
	"fmt"
	"strings"

	"ai-interview-backend/config"
	yagptclient "ai-interview-backend/lib/gpt/yagpt-client"

	"github.com/pkg/errors"
)

const scriptDraftPromt = "Ты помощник рекрутера. Составь короткий текст сценария для видеоинтервью: " +
	"один вопрос кандидату по заданной теме, вежливо и профессионально, на русском языке, без приветствия и прощания. " +
	"В ответе только текст вопроса."

type Provider interface {
	// GenerateScriptDraft генерирует черновик текста сегмента интервью
	GenerateScriptDraft(positionTitle, topic string) (text string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: yagptclient.NewClient(config.Conf.AI.YaGptToken, config.Conf.AI.YaGptCatalog),
	}
}

type impl struct {
	client yagptclient.Provider
}

func (i impl) GenerateScriptDraft(positionTitle, topic string) (string, error) {
	text := fmt.Sprintf("Позиция: %v. Тема вопроса: %v.", positionTitle, topic)
	generated, err := i.client.GenerateByPromtAndText(scriptDraftPromt, text)
	if err != nil {
		return "", errors.Wrap(err, "ошибка генерации черновика сценария")
	}
	generated = strings.TrimSpace(generated)
	if generated == "" {
		return "", errors.New("модель вернула пустой ответ")
	}
	return generated, nil
}
