package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lejebolig/lejebolig-backend/internal/common"
	"github.com/lejebolig/lejebolig-backend/internal/conversation"
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"github.com/lejebolig/lejebolig-backend/internal/repository"
	"github.com/lejebolig/lejebolig-backend/pkg/logger"
	"gorm.io/gorm"
)

// MessageService handles message submission and the inbox view
type MessageService struct {
	messageRepo  repository.MessageRepository
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
) *MessageService {
	return &MessageService{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
	}
}

// Send validates and appends a message to the store.
// The insert is a single atomic row; there is no retry on ambiguous
// failure since sending is not idempotent by content alone.
func (s *MessageService) Send(fromUserID uint64, req domain.SendMessageRequest) (*domain.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: empty content", common.ErrValidationFailed)
	}
	if fromUserID == req.ToUserID {
		return nil, fmt.Errorf("%w: cannot message yourself", common.ErrValidationFailed)
	}

	if _, err := s.userRepo.FindByID(req.ToUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	if req.PropertyID != nil {
		exists, err := s.propertyRepo.Exists(*req.PropertyID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, common.ErrPropertyNotFound
		}
	}

	msg := &domain.Message{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		PropertyID: req.PropertyID,
		Content:    content,
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

// ListForUser returns all of the user's messages with sender/recipient
// names and property titles resolved, for clients that render the raw log.
func (s *MessageService) ListForUser(userID uint64) ([]domain.EnrichedMessage, error) {
	messages, err := s.messageRepo.FindForUser(userID)
	if err != nil {
		return nil, err
	}

	userSet := make(map[uint64]struct{})
	propSet := make(map[uint64]struct{})
	for _, m := range messages {
		userSet[m.FromUserID] = struct{}{}
		userSet[m.ToUserID] = struct{}{}
		if m.PropertyID != nil {
			propSet[*m.PropertyID] = struct{}{}
		}
	}

	names, err := s.userRepo.FindNamesByIDs(setToSlice(userSet))
	if err != nil {
		return nil, err
	}
	titles, err := s.propertyRepo.FindTitlesByIDs(setToSlice(propSet))
	if err != nil {
		return nil, err
	}

	enriched := make([]domain.EnrichedMessage, 0, len(messages))
	for _, m := range messages {
		em := domain.EnrichedMessage{
			Message:      m,
			FromUserName: names[m.FromUserID],
			ToUserName:   names[m.ToUserID],
		}
		if m.PropertyID != nil {
			if title, ok := titles[*m.PropertyID]; ok {
				em.PropertyTitle = &title
			}
		}
		enriched = append(enriched, em)
	}
	return enriched, nil
}

// Conversations returns the user's inbox grouped into threads,
// ordered by recency, with display fields resolved.
func (s *MessageService) Conversations(viewerID uint64) ([]conversation.Conversation, error) {
	messages, err := s.messageRepo.FindForUser(viewerID)
	if err != nil {
		return nil, err
	}

	convs := conversation.Derive(viewerID, messages, logger.GetLogger())

	if err := conversation.Enrich(convs, &repoResolver{
		userRepo:     s.userRepo,
		propertyRepo: s.propertyRepo,
	}); err != nil {
		return nil, err
	}
	return convs, nil
}

// MarkRead flags a message as read. Only the recipient may mark.
func (s *MessageService) MarkRead(messageID, userID uint64) error {
	msg, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrMessageNotFound
		}
		return err
	}
	if msg.ToUserID != userID {
		return common.ErrForbidden
	}
	if msg.Read {
		return nil
	}
	return s.messageRepo.MarkAsRead(messageID)
}

// repoResolver adapts the user/property repositories to the
// conversation enrichment interface.
type repoResolver struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
}

func (r *repoResolver) ResolveDisplayNames(userIDs []uint64) (map[uint64]string, error) {
	return r.userRepo.FindNamesByIDs(userIDs)
}

func (r *repoResolver) ResolvePropertyTitles(propertyIDs []uint64) (map[uint64]string, error) {
	return r.propertyRepo.FindTitlesByIDs(propertyIDs)
}

func setToSlice(set map[uint64]struct{}) []uint64 {
	ids := make([]uint64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
