package repository

import (
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository is the message store access interface.
// Messages are append-only; only the read flag is ever updated.
type MessageRepository interface {
	Create(msg *domain.Message) error
	FindByID(id uint64) (*domain.Message, error)
	FindForUser(userID uint64) ([]domain.Message, error)
	MarkAsRead(id uint64) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

func (r *messageRepository) FindByID(id uint64) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.Where("id = ?", id).First(&msg).Error
	return &msg, err
}

// FindForUser returns every message the user sent or received,
// in insertion order. The conversation deriver does its own sorting.
func (r *messageRepository) FindForUser(userID uint64) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("id ASC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) MarkAsRead(id uint64) error {
	return r.db.Model(&domain.Message{}).Where("id = ?", id).
		Update("is_read", true).Error
}
