package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/contextx"

	"github.com/openquant/derivativepricing/internal/instrument/domain"
)

// InstrumentCommandService 处理定价相关的命令操作，
// 结果落库与领域事件发布在同一事务内完成（Outbox）。
type InstrumentCommandService struct {
	binder    *domain.EngineBinder
	repo      domain.PricingResultRepository
	publisher domain.EventPublisher
}

// NewInstrumentCommandService 创建命令服务实例
func NewInstrumentCommandService(binder *domain.EngineBinder, repo domain.PricingResultRepository, publisher domain.EventPublisher) *InstrumentCommandService {
	return &InstrumentCommandService{
		binder:    binder,
		repo:      repo,
		publisher: publisher,
	}
}

// PriceOption 期权定价。
// 构造合约和标的市场数据，绑定定价引擎并估值，保存定价结果
// 并发布 instrument.option.priced 事件。
func (s *InstrumentCommandService) PriceOption(ctx context.Context, cmd PriceOptionCommand) (*domain.PricingResult, error) {
	if cmd.Symbol == "" {
		return nil, errors.New("symbol is required")
	}

	contract, err := buildContract(cmd.Underlying, domain.ContractTerms{
		OptionType: domain.OptionType(cmd.OptionType),
		ExpiryType: domain.ExpiryType(cmd.ExpiryType),
		Strike:     decimal.NewFromFloat(cmd.Strike),
		ExpiryDate: cmd.ExpiryDate,
	})
	if err != nil {
		return nil, err
	}

	market, err := buildMarket(cmd)
	if err != nil {
		return nil, err
	}

	engine, err := s.binder.Bind(contract, cmd.Model, market)
	if err != nil {
		return nil, err
	}

	premium, err := engine.Price(ctx)
	if err != nil {
		return nil, err
	}
	greeks, err := engine.Greeks(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.PricingResult{
		Symbol:        cmd.Symbol,
		Underlying:    contract.Underlying(),
		OptionType:    contract.OptionType(),
		ExpiryType:    contract.ExpiryType(),
		Strike:        contract.Strike(),
		ExpiryDate:    contract.ExpiryDate(),
		Model:         engine.Model(),
		Premium:       premium,
		SpotOrForward: spotOrForward(cmd),
		Delta:         greeks.Delta,
		Gamma:         greeks.Gamma,
		Theta:         greeks.Theta,
		Vega:          greeks.Vega,
		Rho:           greeks.Rho,
		CalculatedAt:  time.Now().Unix(),
	}

	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.SavePricingResult(txCtx, result); err != nil {
			return err
		}
		if s.publisher == nil {
			return nil
		}
		event := domain.OptionPricedEvent{
			Symbol:       cmd.Symbol,
			Underlying:   string(contract.Underlying()),
			OptionType:   string(contract.OptionType()),
			ExpiryType:   string(contract.ExpiryType()),
			Strike:       contract.Strike().String(),
			ExpiryDate:   contract.ExpiryDate().Format("20060102"),
			Model:        engine.Model(),
			Premium:      premium.String(),
			SpotOrFwd:    result.SpotOrForward.String(),
			Volatility:   cmd.Volatility,
			DomesticRate: domesticRate(cmd),
			CarryYield:   carryYield(cmd),
			CalculatedAt: result.CalculatedAt,
			OccurredOn:   time.Now(),
		}
		tx := contextx.GetTx(txCtx)
		return s.publisher.PublishInTx(txCtx, tx, domain.OptionPricedEventType, cmd.Symbol, event)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// buildContract 按标的类别选择合约构造函数
func buildContract(underlying string, terms domain.ContractTerms) (*domain.VanillaOption, error) {
	switch domain.Underlying(underlying) {
	case domain.UnderlyingStock:
		return domain.NewEquityOption(terms)
	case domain.UnderlyingFutures:
		return domain.NewFuturesOption(terms)
	case domain.UnderlyingFX:
		return domain.NewFXOption(terms)
	case domain.UnderlyingCommodity:
		return domain.NewCommodityOption(terms)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownUnderlying, underlying)
}

// buildMarket 按标的类别组装市场数据
func buildMarket(cmd PriceOptionCommand) (domain.MarketData, error) {
	switch domain.Underlying(cmd.Underlying) {
	case domain.UnderlyingStock:
		schedule := make([]domain.CashFlow, 0, len(cmd.DividendSchedule))
		for _, cf := range cmd.DividendSchedule {
			schedule = append(schedule, domain.CashFlow{
				Date:   cf.Date,
				Amount: decimal.NewFromFloat(cf.Amount),
			})
		}
		return domain.EquityMarket{
			Spot:             decimal.NewFromFloat(cmd.Spot),
			RiskFreeRate:     cmd.RiskFreeRate,
			DividendYield:    cmd.DividendYield,
			DividendSchedule: schedule,
			Volatility:       cmd.Volatility,
			PricingDate:      cmd.PricingDate,
			Extra:            cmd.ModelParams,
		}, nil
	case domain.UnderlyingFutures:
		return domain.FuturesMarket{
			ForwardQuote: decimal.NewFromFloat(cmd.ForwardQuote),
			RiskFreeRate: cmd.RiskFreeRate,
			Volatility:   cmd.Volatility,
			PricingDate:  cmd.PricingDate,
			Extra:        cmd.ModelParams,
		}, nil
	case domain.UnderlyingFX:
		return domain.FXMarket{
			Spot:         decimal.NewFromFloat(cmd.Spot),
			DomesticRate: cmd.DomesticRate,
			ForeignRate:  cmd.ForeignRate,
			Volatility:   cmd.Volatility,
			PricingDate:  cmd.PricingDate,
			Extra:        cmd.ModelParams,
		}, nil
	case domain.UnderlyingCommodity:
		return domain.CommodityMarket{
			Spot:             decimal.NewFromFloat(cmd.Spot),
			RiskFreeRate:     cmd.RiskFreeRate,
			ConvenienceYield: cmd.ConvenienceYield,
			StorageCostYield: cmd.StorageCostYield,
			Volatility:       cmd.Volatility,
			PricingDate:      cmd.PricingDate,
			Extra:            cmd.ModelParams,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownUnderlying, cmd.Underlying)
}

func spotOrForward(cmd PriceOptionCommand) decimal.Decimal {
	if domain.Underlying(cmd.Underlying) == domain.UnderlyingFutures {
		return decimal.NewFromFloat(cmd.ForwardQuote)
	}
	return decimal.NewFromFloat(cmd.Spot)
}

func domesticRate(cmd PriceOptionCommand) float64 {
	if domain.Underlying(cmd.Underlying) == domain.UnderlyingFX {
		return cmd.DomesticRate
	}
	return cmd.RiskFreeRate
}

func carryYield(cmd PriceOptionCommand) float64 {
	switch domain.Underlying(cmd.Underlying) {
	case domain.UnderlyingFutures:
		return cmd.RiskFreeRate
	case domain.UnderlyingFX:
		return cmd.ForeignRate
	case domain.UnderlyingCommodity:
		return cmd.ConvenienceYield
	}
	return cmd.DividendYield
}
