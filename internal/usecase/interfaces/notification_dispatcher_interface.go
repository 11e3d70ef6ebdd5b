package interfaces

import (
	"context"

	"servicehub/internal/domain/events"
)

// INotificationDispatcher receives domain events emitted by the engines.
// Delivery channels (email, push) live entirely behind this port; publishing
// must not block the emitting operation on delivery.
type INotificationDispatcher interface {
	Publish(ctx context.Context, ev events.Event)
}
