package dbmodels

import (
	interviewapimodels "ai-interview-backend/models/api/interview"
)

type Interview struct {
	BaseModel
	PositionTitle string             `gorm:"type:varchar(255)"` // Название позиции
	Contents      []InterviewContent `gorm:"foreignKey:InterviewID"`
}

func (i Interview) ToModel() interviewapimodels.InterviewView {
	view := interviewapimodels.InterviewView{
		ID:            i.ID,
		PositionTitle: i.PositionTitle,
		CreatedAt:     i.CreatedAt,
		Contents:      make([]interviewapimodels.ContentView, 0, len(i.Contents)),
	}
	for _, content := range i.Contents {
		view.Contents = append(view.Contents, content.ToModel())
	}
	return view
}
