package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openquant/derivativepricing/internal/instrument/application"
	"github.com/openquant/derivativepricing/internal/instrument/domain"
)

type memQuoteRepo struct {
	quotes map[string]*domain.UnderlyingQuote
}

func (r *memQuoteRepo) SaveQuote(ctx context.Context, quote *domain.UnderlyingQuote) error {
	if r.quotes == nil {
		r.quotes = make(map[string]*domain.UnderlyingQuote)
	}
	r.quotes[quote.Symbol] = quote
	return nil
}

func (r *memQuoteRepo) GetLatestQuote(ctx context.Context, symbol string) (*domain.UnderlyingQuote, error) {
	return r.quotes[symbol], nil
}

func TestHandleQuoteUpdated(t *testing.T) {
	repo := &memQuoteRepo{}
	projector := application.NewInstrumentProjectionService(repo, slog.Default())
	handler := NewQuoteProjectionHandler(projector, slog.Default())

	payload, err := json.Marshal(domain.QuoteUpdatedEvent{
		Symbol:    "AAPL",
		BidPrice:  "109.98",
		AskPrice:  "110.02",
		LastPrice: "110.00",
		Timestamp: 1735689600,
	})
	require.NoError(t, err)

	err = handler.Handle(context.Background(), kafka.Message{
		Topic: domain.QuoteUpdatedEventType,
		Value: payload,
	})
	require.NoError(t, err)

	quote := repo.quotes["AAPL"]
	require.NotNil(t, quote)
	assert.True(t, quote.Last.Equal(decimal.RequireFromString("110.00")))
	assert.Equal(t, int64(1735689600), quote.Timestamp)
}

func TestHandleMalformedPayload(t *testing.T) {
	projector := application.NewInstrumentProjectionService(&memQuoteRepo{}, slog.Default())
	handler := NewQuoteProjectionHandler(projector, slog.Default())

	err := handler.Handle(context.Background(), kafka.Message{
		Topic: domain.QuoteUpdatedEventType,
		Value: []byte("{not json"),
	})
	assert.Error(t, err)
}

func TestHandleUnknownTopic(t *testing.T) {
	projector := application.NewInstrumentProjectionService(&memQuoteRepo{}, slog.Default())
	handler := NewQuoteProjectionHandler(projector, slog.Default())

	err := handler.Handle(context.Background(), kafka.Message{Topic: "other.topic", Value: []byte("{}")})
	assert.NoError(t, err)
}
