package services

import (
	"errors"
	"sort"
	"strings"

	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

// ChatService mediates messaging: two users may only exchange messages
// once a chat request between them has been approved.
type ChatService interface {
	SendRequest(senderID string, req dto.SendChatRequestRequest) (*models.ChatRequest, error)
	RespondToRequest(userID, requestID string, approve bool) (*models.ChatRequest, error)
	ListIncomingRequests(userID string) ([]models.ChatRequest, error)
	ListOutgoingRequests(userID string) ([]models.ChatRequest, error)
	SendMessage(senderID string, req dto.SendMessageRequest) (*models.Message, error)
	GetConversation(userID, otherID string, limit, offset int) ([]models.Message, error)
	UnreadCount(userID string) (int64, error)
}

type chatService struct {
	chatRepo repositories.ChatRepository
	userRepo repositories.UserRepository
	notifier Notifier
}

func NewChatService(
	chatRepo repositories.ChatRepository,
	userRepo repositories.UserRepository,
	notifier Notifier,
) ChatService {
	return &chatService{
		chatRepo: chatRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// ConversationID derives the shared conversation key for two users.
// Sorting makes it independent of who sends first.
func ConversationID(userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}

func (s *chatService) SendRequest(senderID string, req dto.SendChatRequestRequest) (*models.ChatRequest, error) {
	if senderID == req.ReceiverID {
		return nil, apperrors.ErrSelfChatNotAllowed
	}

	receiver, err := s.userRepo.FindByID(req.ReceiverID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	existing, err := s.chatRepo.FindRequestBetween(senderID, req.ReceiverID)
	if err != nil && !errors.Is(err, repositories.ErrChatRequestNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil && existing.Status != models.ChatRequestStatusDeclined {
		return nil, apperrors.ErrChatRequestExists
	}

	request := &models.ChatRequest{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Status:     models.ChatRequestStatusPending,
	}
	if err := s.chatRepo.CreateRequest(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifier.SendToUser(receiver.Email, EventNewChatRequest, request)
	return request, nil
}

func (s *chatService) RespondToRequest(userID, requestID string, approve bool) (*models.ChatRequest, error) {
	request, err := s.chatRepo.FindRequestByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrChatRequestNotFound) {
			return nil, apperrors.ErrChatRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if request.ReceiverID != userID {
		return nil, apperrors.ErrNotChatReceiver
	}
	if request.Status != models.ChatRequestStatusPending {
		return nil, apperrors.ErrConflict(nil, "chat", "Chat request has already been answered")
	}

	status := models.ChatRequestStatusDeclined
	if approve {
		status = models.ChatRequestStatusApproved
	}
	if err := s.chatRepo.UpdateRequestStatus(request.ID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	request.Status = status
	return request, nil
}

func (s *chatService) ListIncomingRequests(userID string) ([]models.ChatRequest, error) {
	requests, err := s.chatRepo.FindIncomingRequests(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

func (s *chatService) ListOutgoingRequests(userID string) ([]models.ChatRequest, error) {
	requests, err := s.chatRepo.FindOutgoingRequests(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

func (s *chatService) SendMessage(senderID string, req dto.SendMessageRequest) (*models.Message, error) {
	if senderID == req.ReceiverID {
		return nil, apperrors.ErrSelfChatNotAllowed
	}

	approved, err := s.chatRepo.HasApprovedRequestBetween(senderID, req.ReceiverID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !approved {
		return nil, apperrors.ErrChatNotApproved
	}

	message := &models.Message{
		ConversationID: ConversationID(senderID, req.ReceiverID),
		SenderID:       senderID,
		ReceiverID:     req.ReceiverID,
		Content:        req.Content,
	}
	if err := s.chatRepo.CreateMessage(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if receiver, err := s.userRepo.FindByID(req.ReceiverID); err == nil {
		s.notifier.SendToUser(receiver.Email, EventNewMessage, message)
	} else {
		logger.SideEffectLog("chat", "notify new message", err)
	}

	return message, nil
}

// GetConversation returns the shared history and marks everything
// addressed to the caller as read.
func (s *chatService) GetConversation(userID, otherID string, limit, offset int) ([]models.Message, error) {
	approved, err := s.chatRepo.HasApprovedRequestBetween(userID, otherID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !approved {
		return nil, apperrors.ErrChatNotApproved
	}

	conversationID := ConversationID(userID, otherID)
	messages, err := s.chatRepo.FindMessagesByConversation(conversationID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.chatRepo.MarkConversationRead(conversationID, userID); err != nil {
		logger.SideEffectLog("chat", "mark conversation read", err)
	}
	return messages, nil
}

func (s *chatService) UnreadCount(userID string) (int64, error) {
	count, err := s.chatRepo.CountUnread(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
