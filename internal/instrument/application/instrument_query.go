package application

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openquant/derivativepricing/internal/instrument/domain"
)

// InstrumentQueryService 处理定价相关的查询操作
type InstrumentQueryService struct {
	binder *domain.EngineBinder
	repo   domain.PricingResultRepository
	quotes domain.QuoteRepository
}

// NewInstrumentQueryService 创建查询服务实例
func NewInstrumentQueryService(binder *domain.EngineBinder, repo domain.PricingResultRepository, quotes domain.QuoteRepository) *InstrumentQueryService {
	return &InstrumentQueryService{
		binder: binder,
		repo:   repo,
		quotes: quotes,
	}
}

// Payoff 计算给定标的价格下的行权收益
func (s *InstrumentQueryService) Payoff(ctx context.Context, q PayoffQuery) (decimal.Decimal, error) {
	contract, err := buildContract(q.Underlying, domain.ContractTerms{
		OptionType: domain.OptionType(q.OptionType),
		ExpiryType: domain.ExpiryType(q.ExpiryType),
		Strike:     decimal.NewFromFloat(q.Strike),
		ExpiryDate: q.ExpiryDate,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return contract.Payoff(decimal.NewFromFloat(q.Spot))
}

// ListModels 列出 (标的, 行权方式) 允许的定价模型
func (s *InstrumentQueryService) ListModels(ctx context.Context, underlying, expiryType string) (string, error) {
	u := domain.Underlying(underlying)
	switch u {
	case domain.UnderlyingStock, domain.UnderlyingFutures, domain.UnderlyingFX, domain.UnderlyingCommodity:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnderlying, underlying)
	}
	e := domain.ExpiryType(expiryType)
	if e == "" {
		e = domain.ExpiryTypeEuropean
	}
	if e != domain.ExpiryTypeEuropean && e != domain.ExpiryTypeAmerican {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidExpiryType, expiryType)
	}
	return s.binder.ListModelsFor(u, e)
}

// GetLatestResult 按符号获取最近一次定价结果
func (s *InstrumentQueryService) GetLatestResult(ctx context.Context, symbol string) (*domain.PricingResult, error) {
	return s.repo.GetLatestPricingResult(ctx, symbol)
}

// GetResultHistory 按符号获取定价结果历史
func (s *InstrumentQueryService) GetResultHistory(ctx context.Context, symbol string, limit int) ([]*domain.PricingResult, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.GetPricingResultHistory(ctx, symbol, limit)
}

// GetLatestQuote 获取标的最新行情
func (s *InstrumentQueryService) GetLatestQuote(ctx context.Context, symbol string) (*domain.UnderlyingQuote, error) {
	return s.quotes.GetLatestQuote(ctx, symbol)
}
