package videogenstore

import (
	dbmodels "ai-interview-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.VideoGenJob) (id string, err error)
	GetByVideoID(videoID string) (rec *dbmodels.VideoGenJob, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.VideoGenJob) (id string, err error) {
	if rec.ID == "" {
		existedRec, err := i.GetByVideoID(rec.VideoID)
		if err != nil {
			return "", err
		}
		if existedRec != nil {
			rec.ID = existedRec.ID
		}
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByVideoID(videoID string) (*dbmodels.VideoGenJob, error) {
	rec := dbmodels.VideoGenJob{}
	err := i.db.
		Where("video_id = ?", videoID).
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
