package interfaces

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface_mock.go -package=mock_interfaces

import (
	"context"

	"studioo/internal/domain/entities"
	"studioo/internal/domain/pricing"
)

// INotifier tells the studio operators about new requests and catalog
// problems. Delivery is best effort.
type INotifier interface {
	NotifyQuoteRequest(ctx context.Context, r entities.QuoteRequest) error
	NotifyPricingAnomalies(ctx context.Context, sessionID string, anomalies []pricing.Anomaly) error
}
