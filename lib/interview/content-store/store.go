package contentstore

import (
	"ai-interview-backend/models"
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.InterviewContent) (id string, err error)
	GetByID(id string) (rec *dbmodels.InterviewContent, err error)
	GetByInterviewID(interviewID string) (list []dbmodels.InterviewContent, err error)
	GetByOrderNo(interviewID string, orderNo int) (rec *dbmodels.InterviewContent, err error)
	GetByKind(interviewID string, kind models.ContentKind) (rec *dbmodels.InterviewContent, err error)
	GetUnresolved() (list []dbmodels.InterviewContent, err error)
	SetVideoUrl(id, videoUrl string) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.InterviewContent) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.InterviewContent, error) {
	rec := dbmodels.InterviewContent{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByInterviewID(interviewID string) (list []dbmodels.InterviewContent, err error) {
	list = []dbmodels.InterviewContent{}
	err = i.db.
		Model(dbmodels.InterviewContent{}).
		Where("interview_id = ?", interviewID).
		Order("order_no ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByOrderNo(interviewID string, orderNo int) (*dbmodels.InterviewContent, error) {
	rec := dbmodels.InterviewContent{}
	err := i.db.
		Where("interview_id = ?", interviewID).
		Where("order_no = ?", orderNo).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByKind(interviewID string, kind models.ContentKind) (*dbmodels.InterviewContent, error) {
	rec := dbmodels.InterviewContent{}
	err := i.db.
		Where("interview_id = ?", interviewID).
		Where("kind = ?", kind).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// GetUnresolved возвращает bot-сегменты с запрошенной генерацией, но без закешированной ссылки
func (i impl) GetUnresolved() (list []dbmodels.InterviewContent, err error) {
	list = []dbmodels.InterviewContent{}
	err = i.db.
		Model(dbmodels.InterviewContent{}).
		Where("mode = ?", models.DeliveryModeBot).
		Where("video_id <> ''").
		Where("video_url = ''").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetVideoUrl(id, videoUrl string) error {
	return i.db.
		Model(dbmodels.InterviewContent{}).
		Where("id = ?", id).
		Update("video_url", videoUrl).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.InterviewContent{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}
