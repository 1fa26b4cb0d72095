package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/visualpath/visualpath-api/internal/config"
	"github.com/visualpath/visualpath-api/internal/events"
)

// NotificationService handles emitting notifications for domain events.
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
	n.dispatcher.Subscribe(events.EventSubmissionReceived, n.handleSubmissionReceived)
	n.dispatcher.Subscribe(events.EventStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventSubmissionDeleted, n.handleSubmissionDeleted)
}

func (n *NotificationService) handleSubmissionReceived(ctx context.Context, event events.Event) error {
	n.logger.Info("SubmissionReceived",
		zap.String("resource", event.Resource),
		zap.String("record_id", event.RecordID),
		zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("StatusChanged",
		zap.String("resource", event.Resource),
		zap.String("record_id", event.RecordID),
		zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSubmissionDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("SubmissionDeleted",
		zap.String("resource", event.Resource),
		zap.String("record_id", event.RecordID))
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("resource", event.Resource),
		zap.String("record_id", event.RecordID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("resource", event.Resource),
		zap.String("record_id", event.RecordID),
		zap.String("event_type", string(event.Type)))
}
