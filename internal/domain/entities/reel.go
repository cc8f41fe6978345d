package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PostingUserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title             string    `gorm:"type:text;not null"`
	Description       string    `gorm:"type:text;not null"`
	CreationTimestamp time.Time `gorm:"not null;index"`
}

func (Reel) TableName() string {
	return "reels"
}

func (r *Reel) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreationTimestamp.IsZero() {
		// Postgres keeps microseconds; truncate so a read-back compares equal.
		r.CreationTimestamp = time.Now().UTC().Truncate(time.Microsecond)
	}
	return
}
