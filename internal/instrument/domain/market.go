package domain

import (
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

// MarketData 标的市场数据
// 每个标的类别各自持有一条规范化规则，这条规则就是适配器的全部内容。
// 可选的利率/收益率字段省略即按 0 处理；必填字段（价格、波动率、
// 定价日）缺失或越界直接报 ErrInvalidMarketValue，绝不静默代入默认值。
type MarketData interface {
	Underlying() Underlying
	Canonicalize() (Params, error)
}

// baseParams 公共必填字段校验与组装
func baseParams(u Underlying, price decimal.Decimal, rate, volatility float64, pricingDate string, extra map[string]any) (Params, error) {
	if !price.IsPositive() {
		return Params{}, fmt.Errorf("%w: %s price %s must be positive", ErrInvalidMarketValue, u, price)
	}
	if volatility <= 0 {
		return Params{}, fmt.Errorf("%w: %s volatility %v must be positive", ErrInvalidMarketValue, u, volatility)
	}
	date, err := ParseCompactDate(pricingDate)
	if err != nil {
		return Params{}, err
	}
	return Params{
		SpotOrForward: price,
		DomesticRate:  rate,
		Volatility:    volatility,
		PricingDate:   date,
		Extra:         maps.Clone(extra),
	}, nil
}

// EquityMarket 股票期权市场数据
type EquityMarket struct {
	Spot             decimal.Decimal
	RiskFreeRate     float64
	DividendYield    float64
	DividendSchedule []CashFlow
	Volatility       float64
	PricingDate      string // YYYYMMDD
	Extra            map[string]any
}

func (m EquityMarket) Underlying() Underlying { return UnderlyingStock }

// Canonicalize 股票映射：持有收益率=连续分红率。
// 离散分红原样放入 Schedule，不做预折现，现金流现值固定为 0，
// 折现交给定价引擎自己处理。
func (m EquityMarket) Canonicalize() (Params, error) {
	p, err := baseParams(m.Underlying(), m.Spot, m.RiskFreeRate, m.Volatility, m.PricingDate, m.Extra)
	if err != nil {
		return Params{}, err
	}
	p.CarryYield = m.DividendYield
	p.DistributionPV = decimal.Zero
	if len(m.DividendSchedule) > 0 {
		p.Schedule = make([]CashDistribution, 0, len(m.DividendSchedule))
		for _, cf := range m.DividendSchedule {
			date, err := ParseCompactDate(cf.Date)
			if err != nil {
				return Params{}, err
			}
			p.Schedule = append(p.Schedule, CashDistribution{Date: date, Amount: cf.Amount})
		}
	}
	return p, nil
}

// FuturesMarket 期货期权市场数据
type FuturesMarket struct {
	ForwardQuote decimal.Decimal
	RiskFreeRate float64
	Volatility   float64
	PricingDate  string // YYYYMMDD
	Extra        map[string]any
}

func (m FuturesMarket) Underlying() Underlying { return UnderlyingFutures }

// Canonicalize 期货映射：持有收益率=无风险利率。
// 期货报价本身已是远期值，净持有成本恒为零，这个等式是期货
// 适配器的定义性质，不是巧合。
func (m FuturesMarket) Canonicalize() (Params, error) {
	p, err := baseParams(m.Underlying(), m.ForwardQuote, m.RiskFreeRate, m.Volatility, m.PricingDate, m.Extra)
	if err != nil {
		return Params{}, err
	}
	p.CarryYield = m.RiskFreeRate
	return p, nil
}

// FXMarket 外汇期权市场数据
type FXMarket struct {
	Spot         decimal.Decimal
	DomesticRate float64
	ForeignRate  float64
	Volatility   float64
	PricingDate  string // YYYYMMDD
	Extra        map[string]any
}

func (m FXMarket) Underlying() Underlying { return UnderlyingFX }

// Canonicalize 外汇映射：Garman-Kohlhagen 惯例，
// 外币利率扮演连续分红率的角色。
func (m FXMarket) Canonicalize() (Params, error) {
	p, err := baseParams(m.Underlying(), m.Spot, m.DomesticRate, m.Volatility, m.PricingDate, m.Extra)
	if err != nil {
		return Params{}, err
	}
	p.CarryYield = m.ForeignRate
	return p, nil
}

// CommodityMarket 商品期权市场数据
type CommodityMarket struct {
	Spot             decimal.Decimal
	RiskFreeRate     float64
	ConvenienceYield float64
	StorageCostYield float64
	Volatility       float64
	PricingDate      string // YYYYMMDD
	Extra            map[string]any
}

func (m CommodityMarket) Underlying() Underlying { return UnderlyingCommodity }

// Canonicalize 商品映射：持有收益率=便利收益率，仓储成本率
// 单独透传。商品是唯一需要第二个收益率项的标的，便利收益与
// 仓储成本是方向相反的两个持有调整项。
func (m CommodityMarket) Canonicalize() (Params, error) {
	p, err := baseParams(m.Underlying(), m.Spot, m.RiskFreeRate, m.Volatility, m.PricingDate, m.Extra)
	if err != nil {
		return Params{}, err
	}
	p.CarryYield = m.ConvenienceYield
	p.StorageCostYield = m.StorageCostYield
	return p, nil
}
