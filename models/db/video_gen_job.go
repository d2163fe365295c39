package dbmodels

import (
	"ai-interview-backend/models"
)

// VideoGenJob - задание генерации аватарного видео в HeyGen
type VideoGenJob struct {
	BaseModel
	VideoID    string                `gorm:"type:varchar(64);index"` // Идентификатор задания у провайдера
	ContentID  string                `gorm:"type:varchar(36);index"` // Сегмент, для которого запрошена генерация
	SourceText string                // Текст сценария, отправленный на генерацию
	Status     models.VideoGenStatus `gorm:"type:varchar(20)"`
	ResultUrl  string                // Ссылка на готовое видео, заполняется при completed
	Attempts   int                   // Кол-во выполненных опросов статуса
	LastError  string                // Последняя ошибка опроса/генерации
}
