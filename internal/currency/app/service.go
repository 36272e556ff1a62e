package app

import (
	"context"
	"log/slog"

	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/session"
	"github.com/Biz-Hub01/pureez/internal/storage"
)

// Service shares one Rates across the per-session currency managers.
type Service struct {
	rates    *Rates
	store    storage.Store
	notifier notify.Notifier
	log      *slog.Logger
	sessions *session.Registry[*Manager]
}

func NewService(rates *Rates, store storage.Store, notifier notify.Notifier, log *slog.Logger) *Service {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Service{rates: rates, store: store, notifier: notifier, log: log}
	s.sessions = session.NewRegistry(func(ctx context.Context, id string) (*Manager, error) {
		m := NewManager(
			s.rates,
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

func (s *Service) Rates() *Rates { return s.rates }

func (s *Service) GetOrCreate(ctx context.Context, sessionID string) (*Manager, error) {
	return s.sessions.GetOrCreate(ctx, sessionID)
}
