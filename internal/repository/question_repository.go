package repository

import (
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	CreateBatch(questions []model.Question) error
	FindByID(id string) (*model.Question, error)
	// FindRandomByContentID returns up to limit questions for a content id,
	// uniformly sampled with no reproducibility guarantee. A nil difficulty
	// means no difficulty filter.
	FindRandomByContentID(contentID string, difficulty *model.Difficulty, limit int) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) CreateBatch(questions []model.Question) error {
	return r.db.Create(&questions).Error
}

func (r *questionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindRandomByContentID(contentID string, difficulty *model.Difficulty, limit int) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Where("content_id = ?", contentID)
	if difficulty != nil {
		query = query.Where("difficulty = ?", *difficulty)
	}
	// RANDOM() is understood by both sqlite and postgres.
	if err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
