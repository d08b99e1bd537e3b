package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/openquant/derivativepricing/internal/instrument/application"
	"github.com/openquant/derivativepricing/internal/instrument/domain"
)

type QuoteProjectionHandler struct {
	projector *application.InstrumentProjectionService
	logger    *slog.Logger
}

func NewQuoteProjectionHandler(projector *application.InstrumentProjectionService, logger *slog.Logger) *QuoteProjectionHandler {
	return &QuoteProjectionHandler{projector: projector, logger: logger}
}

func (h *QuoteProjectionHandler) Handle(ctx context.Context, msg kafka.Message) error {
	switch msg.Topic {
	case domain.QuoteUpdatedEventType:
		var event domain.QuoteUpdatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			h.logger.ErrorContext(ctx, "failed to unmarshal quote event", "error", err)
			return err
		}
		quote := &domain.UnderlyingQuote{
			Symbol:    event.Symbol,
			Bid:       mustDecimal(event.BidPrice),
			Ask:       mustDecimal(event.AskPrice),
			Last:      mustDecimal(event.LastPrice),
			Timestamp: event.Timestamp,
		}
		return h.projector.ProjectQuote(ctx, quote)
	default:
		h.logger.WarnContext(ctx, "unknown instrument event topic", "topic", msg.Topic)
		return nil
	}
}

func mustDecimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}
