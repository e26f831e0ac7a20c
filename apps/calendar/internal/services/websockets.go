package services

import (
	"context"
	"log/slog"
	"net/http"

	wstools "github.com/xdoubleu/essentia/v2/pkg/communication/wstools"
	"techcal.asiaclass.dev/apps/calendar/internal/dtos"
)

// CalendarTopic is the single subscription subject: the controller
// snapshot, pushed after every mutation.
const CalendarTopic = "calendar"

type WebSocketService struct {
	handler *wstools.WebSocketHandler[dtos.SubscribeMessageDto]
	topic   *wstools.Topic
}

func NewWebSocketService(
	logger *slog.Logger,
	allowedOrigins []string,
	snapshot func() dtos.SnapshotDto,
) *WebSocketService {
	handler := wstools.CreateWebSocketHandler[dtos.SubscribeMessageDto](
		logger,
		1,
		100, //nolint:mnd //no magic number
	)

	service := &WebSocketService{
		handler: &handler,
		topic:   nil,
	}

	// Subscribers receive the current snapshot immediately on subscribe.
	topic, err := service.handler.AddTopic(
		CalendarTopic,
		allowedOrigins,
		func(_ context.Context, _ *wstools.Topic) (any, error) {
			return snapshot(), nil
		},
	)
	if err != nil {
		panic(err)
	}
	service.topic = topic

	return service
}

func (service *WebSocketService) Handler() http.HandlerFunc {
	return service.handler.Handler()
}

func (service *WebSocketService) Broadcast(snapshot dtos.SnapshotDto) {
	service.topic.EnqueueEvent(snapshot)
}
