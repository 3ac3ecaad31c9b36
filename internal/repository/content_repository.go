package repository

import (
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(content *model.Content) error
	FindByID(id string) (*model.Content, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *model.Content) error {
	return r.db.Create(content).Error
}

func (r *contentRepository) FindByID(id string) (*model.Content, error) {
	var content model.Content
	if err := r.db.First(&content, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}
