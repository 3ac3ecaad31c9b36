package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content is one uploaded PDF: its extracted text and metadata.
// Written once at upload time, read-only afterward.
type Content struct {
	ID            string         `gorm:"type:uuid;primarykey" json:"content_id"`
	UserID        string         `gorm:"not null;index" json:"user_id"`
	FileName      string         `gorm:"not null" json:"file_name"`
	FilePath      string         `gorm:"not null" json:"-"`
	ExtractedText string         `gorm:"type:text" json:"-"`
	PageCount     int            `json:"page_count"`
	Status        string         `gorm:"default:'processed'" json:"status"`
	UploadedAt    time.Time      `gorm:"autoCreateTime" json:"uploaded_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
