package app

import (
	"context"
	"log/slog"

	"github.com/Biz-Hub01/pureez/internal/cart/domain"
	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/session"
	"github.com/Biz-Hub01/pureez/internal/storage"
)

// Service hands out one hydrated Manager per shopper session.
type Service struct {
	store    storage.Store
	notifier notify.Notifier
	log      *slog.Logger
	sessions *session.Registry[*Manager]
}

func NewService(store storage.Store, notifier notify.Notifier, log *slog.Logger) *Service {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Service{
		store:    store,
		notifier: notifier,
		log:      log,
	}
	s.sessions = session.NewRegistry(s.open)
	return s
}

func (s *Service) open(ctx context.Context, id string) (*Manager, error) {
	m := NewManager(
		storage.NewScoped(s.store, id),
		notify.Scoped(s.notifier, id),
		s.log.With(slog.String("session", id)),
	)
	if err := m.Load(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetOrCreate(ctx context.Context, sessionID string) (*Manager, error) {
	return s.sessions.GetOrCreate(ctx, sessionID)
}

func (s *Service) GetCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	m, err := s.GetOrCreate(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}
	id, _ := session.Parse(sessionID)
	return domain.Cart{SessionID: id, Lines: m.Lines()}, nil
}
