// Package notifications carries domain events out of the engines. The only
// dispatcher shipped here logs structured events; email/push delivery hangs
// off the same port without touching the engines.
package notifications

import (
	"context"

	"servicehub/internal/domain/events"
	"servicehub/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type LogDispatcher struct {
	logger *zap.Logger
}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogDispatcher{logger: logger}
}

// Publish never blocks the emitting operation: logging is synchronous but
// cheap, and reconciliation mismatches are raised to error level so the
// out-of-band repair job can alert on them.
func (d *LogDispatcher) Publish(ctx context.Context, ev events.Event) {
	fields := []zap.Field{
		zap.String("event", string(ev.Name)),
		zap.String("booking_id", ev.BookingID),
		zap.Time("occurred_at", ev.OccurredAt),
	}
	if ev.TransactionID != "" {
		fields = append(fields, zap.String("transaction_id", ev.TransactionID))
	}
	if ev.Detail != "" {
		fields = append(fields, zap.String("detail", ev.Detail))
	}

	if ev.Name == events.ReconciliationMismatch {
		d.logger.Error("domain event", fields...)
		return
	}
	d.logger.Info("domain event", fields...)
}
