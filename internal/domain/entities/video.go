package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostingUserID      uuid.UUID `gorm:"type:uuid;not null"`
	Title              string    `gorm:"type:text;not null"`
	Description        string    `gorm:"type:text;not null"`
	VideoLengthSeconds int32     `gorm:"not null"`
	VideoURL           string    `gorm:"column:video_url;type:text;not null"`
}

func (Video) TableName() string {
	return "videos"
}

func (v *Video) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
