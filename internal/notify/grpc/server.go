package grpc

import (
	"encoding/json"
	"log/slog"

	notifyv1 "github.com/Biz-Hub01/pureez/api/notify/v1"
	"github.com/Biz-Hub01/pureez/internal/notify"
	"github.com/Biz-Hub01/pureez/internal/session"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server streams hub events for one session until the client goes away or
// the hub closes.
type Server struct {
	hub *notify.Hub
	log *slog.Logger
}

func NewServer(hub *notify.Hub, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{hub: hub, log: log}
}

func (s *Server) Subscribe(req *notifyv1.SubscribeRequest, stream *notifyv1.NotificationService_SubscribeServer) error {
	id, err := session.Parse(req.SessionId)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	events, cancel := s.hub.Subscribe(id)
	defer cancel()

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return status.Error(codes.Unavailable, "notification hub closed")
			}
			if err := stream.Send(toProto(ev)); err != nil {
				s.log.DebugContext(ctx, "notification send failed", slog.String("session", id), slog.Any("err", err))
				return err
			}
		}
	}
}

func toProto(ev notify.Event) *notifyv1.Event {
	out := &notifyv1.Event{
		SessionId: ev.Session,
		Kind:      ev.Kind,
		Message:   ev.Message,
		AtUnixMs:  ev.At.UnixMilli(),
	}
	if ev.Payload != nil {
		if b, err := json.Marshal(ev.Payload); err == nil {
			out.Payload = b
		}
	}
	return out
}
