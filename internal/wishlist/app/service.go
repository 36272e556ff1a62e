package app

import (
	"context"
	"log/slog"

	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/session"
	"github.com/Biz-Hub01/pureez/internal/storage"
	"github.com/Biz-Hub01/pureez/internal/wishlist/domain"
)

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
	s := &Service{store: store, notifier: notifier, log: log}
	s.sessions = session.NewRegistry(func(ctx context.Context, id string) (*Manager, error) {
		m := NewManager(
			storage.NewScoped(s.store, id),
			notify.Scoped(s.notifier, id),
			s.log.With(slog.String("session", id)),
		)
		if err := m.Load(ctx); err != nil {
			return nil, err
		}
		return m, nil
	})
	return s
}

func (s *Service) GetOrCreate(ctx context.Context, sessionID string) (*Manager, error) {
	return s.sessions.GetOrCreate(ctx, sessionID)
}

func (s *Service) GetWishlist(ctx context.Context, sessionID string) (domain.Wishlist, error) {
	m, err := s.GetOrCreate(ctx, sessionID)
	if err != nil {
		return domain.Wishlist{}, err
	}
	id, _ := session.Parse(sessionID)
	return domain.Wishlist{SessionID: id, Entries: m.Entries()}, nil
}
