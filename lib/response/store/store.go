package responsestore

import (
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.InterviewResponse) (id string, err error)
	GetByID(id string) (rec *dbmodels.InterviewResponse, err error)
	ListByInterviewID(interviewID, search string, page, limit int) (list []dbmodels.InterviewResponse, rowCount int64, err error)
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

func (i impl) Save(rec dbmodels.InterviewResponse) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.InterviewResponse, error) {
	rec := dbmodels.InterviewResponse{}
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

func (i impl) ListByInterviewID(interviewID, search string, page, limit int) (list []dbmodels.InterviewResponse, rowCount int64, err error) {
	list = []dbmodels.InterviewResponse{}
	tx := i.db.
		Model(dbmodels.InterviewResponse{}).
		Where("interview_id = ?", interviewID)
	if search != "" {
		searchValue := "%" + search + "%"
		tx = tx.Where("applicant_name ILIKE ? OR applicant_email ILIKE ?", searchValue, searchValue)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.InterviewResponse{
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
