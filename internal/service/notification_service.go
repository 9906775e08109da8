package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/citizen-services/internal/config"
	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/events"
)

// NotificationService turns domain events into outbound notifications. Delivery
// is logged only; no mail or webhook client is wired yet.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventDeskTicketStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventDeskTicketUpdated, n.handleDeskUpdated)
	n.dispatcher.Subscribe(events.EventDeskTicketFlagged, n.handleFlagged)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCreated", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	n.sendEmail(ctx, event, "Your request has been received")
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handleStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("DeskTicketStatusChanged", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	if payload, ok := event.Payload.(events.DeskTicketStatusChangedPayload); ok && payload.NewStatus == domain.TicketStatusResolved {
		n.sendEmail(ctx, event, "Your request has been resolved")
	}
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) handleDeskUpdated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DeskTicketUpdatedPayload)
	if ok && payload.HasResponse {
		n.sendEmail(ctx, event, "An employee replied to your request")
	}
	return nil
}

func (n *NotificationService) handleFlagged(ctx context.Context, event events.Event) error {
	n.logger.Info("DeskTicketFlagged", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) sendEmail(_ context.Context, event events.Event, subject string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmail",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject", subject),
		zap.String("ticket_id", event.TicketID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhook(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhook",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("ticket_id", event.TicketID),
		zap.String("event_type", string(event.Type)))
}
