package services

import (
	"context"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/api"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/store"
	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

// ChatService only tracks the unread-message badge; the message transport
// itself is the realtime listener's concern.
type ChatService interface {
	RefreshUnreadCount(ctx context.Context) error
}

type chatService struct {
	client api.Client
	store  *store.Store
	log    logging.Logger
}

func NewChatService(client api.Client, st *store.Store, log logging.Logger) ChatService {
	return &chatService{client: client, store: st, log: log}
}

func (s *chatService) RefreshUnreadCount(ctx context.Context) error {
	n, err := s.client.UnreadCount(ctx)
	if err != nil {
		s.log.Warn(ctx, "unread count fetch failed", "error", err)
		return err
	}
	s.store.SetUnreadCount(n)
	return nil
}
