package application

import (
	"context"
	"log/slog"

	"github.com/openquant/derivativepricing/internal/instrument/domain"
)

// InstrumentProjectionService 维护标的行情读模型
type InstrumentProjectionService struct {
	quotes domain.QuoteRepository
	logger *slog.Logger
}

func NewInstrumentProjectionService(quotes domain.QuoteRepository, logger *slog.Logger) *InstrumentProjectionService {
	return &InstrumentProjectionService{quotes: quotes, logger: logger}
}

// ProjectQuote 投影一条标的行情
func (s *InstrumentProjectionService) ProjectQuote(ctx context.Context, quote *domain.UnderlyingQuote) error {
	if err := s.quotes.SaveQuote(ctx, quote); err != nil {
		s.logger.ErrorContext(ctx, "failed to project quote", "symbol", quote.Symbol, "error", err)
		return err
	}
	return nil
}
