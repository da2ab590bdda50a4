package repositories

import (
	"errors"

	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrChatRequestNotFound = errors.New("chat request not found")
	ErrMessageNotFound     = errors.New("message not found")
)

type ChatRepository interface {
	// Chat requests
	CreateRequest(req *models.ChatRequest) error
	FindRequestByID(id string) (*models.ChatRequest, error)
	FindRequestBetween(userA, userB string) (*models.ChatRequest, error)
	UpdateRequestStatus(id string, status models.ChatRequestStatus) error
	FindIncomingRequests(userID string) ([]models.ChatRequest, error)
	FindOutgoingRequests(userID string) ([]models.ChatRequest, error)
	HasApprovedRequestBetween(userA, userB string) (bool, error)

	// Messages
	CreateMessage(msg *models.Message) error
	FindMessagesByConversation(conversationID string, limit, offset int) ([]models.Message, error)
	MarkConversationRead(conversationID, readerID string) error
	CountUnread(userID string) (int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// ---------------- Chat requests ----------------

func (r *chatRepository) CreateRequest(req *models.ChatRequest) error {
	return r.db.Create(req).Error
}

func (r *chatRepository) FindRequestByID(id string) (*models.ChatRequest, error) {
	var req models.ChatRequest
	err := r.db.Preload("Sender").Preload("Receiver").
		First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindRequestBetween looks up a request in either direction.
func (r *chatRepository) FindRequestBetween(userA, userB string) (*models.ChatRequest, error) {
	var req models.ChatRequest
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *chatRepository) UpdateRequestStatus(id string, status models.ChatRequestStatus) error {
	return r.db.Model(&models.ChatRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *chatRepository) FindIncomingRequests(userID string) ([]models.ChatRequest, error) {
	var requests []models.ChatRequest
	err := r.db.Preload("Sender").
		Where("receiver_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *chatRepository) FindOutgoingRequests(userID string) ([]models.ChatRequest, error) {
	var requests []models.ChatRequest
	err := r.db.Preload("Receiver").
		Where("sender_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *chatRepository) HasApprovedRequestBetween(userA, userB string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ChatRequest{}).
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND status = ?",
			userA, userB, userB, userA, models.ChatRequestStatusApproved).
		Count(&count).Error
	return count > 0, err
}

// ---------------- Messages ----------------

func (r *chatRepository) CreateMessage(msg *models.Message) error {
	return r.db.Create(msg).Error
}

func (r *chatRepository) FindMessagesByConversation(conversationID string, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

// MarkConversationRead flags everything addressed to the reader as read.
func (r *chatRepository) MarkConversationRead(conversationID, readerID string) error {
	return r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND receiver_id = ? AND read = false", conversationID, readerID).
		Update("read", true).Error
}

func (r *chatRepository) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = false", userID).
		Count(&count).Error
	return count, err
}
