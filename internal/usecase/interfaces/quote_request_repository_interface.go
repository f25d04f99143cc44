package interfaces

//go:generate mockgen -source=quote_request_repository_interface.go -destination=mocks/quote_request_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"errors"

	"studioo/internal/domain/entities"
)

// ErrQuoteNumberTaken is returned by Create when a request with the same
// quote number is already stored.
var ErrQuoteNumberTaken = errors.New("quote number already stored")

// IQuoteRequestRepository persists submitted quotes. Quote numbers are unique
// in the store.
type IQuoteRequestRepository interface {
	Create(ctx context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByQuoteNumber(ctx context.Context, quoteNumber string) (entities.QuoteRequest, error)
}
