package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OptionType 期权类型
type OptionType string

const (
	OptionTypeCall OptionType = "Call" // 看涨期权
	OptionTypePut  OptionType = "Put"  // 看跌期权
)

// ExpiryType 行权方式
type ExpiryType string

const (
	ExpiryTypeEuropean ExpiryType = "European"
	ExpiryTypeAmerican ExpiryType = "American"
)

// Underlying 标的资产类别
type Underlying string

const (
	UnderlyingStock     Underlying = "Stock"
	UnderlyingFutures   Underlying = "Futures"
	UnderlyingFX        Underlying = "FX"
	UnderlyingCommodity Underlying = "Commodity"
)

// DerivativeType 衍生品合约族
type DerivativeType string

const DerivativeVanillaOption DerivativeType = "Vanilla Option"

// ContractTerms 合约条款
// 空的 OptionType/ExpiryType/DerivativeType 使用默认值，
// 非空但非法的枚举值直接报错，不做任何归一化。
type ContractTerms struct {
	OptionType     OptionType
	ExpiryType     ExpiryType
	Strike         decimal.Decimal
	ExpiryDate     string // YYYYMMDD
	DerivativeType DerivativeType
}

// VanillaOption 香草期权合约
// 构造后不可变，多个 goroutine 可安全地并发读取同一实例。
type VanillaOption struct {
	optionType     OptionType
	expiryType     ExpiryType
	strike         decimal.Decimal
	expiryDate     time.Time
	derivativeType DerivativeType
	underlying     Underlying
}

// newVanillaOption 按标的类别构造合约，underlying 只能由四个具体构造函数设置。
func newVanillaOption(underlying Underlying, terms ContractTerms) (*VanillaOption, error) {
	expiry, err := ParseCompactDate(terms.ExpiryDate)
	if err != nil {
		return nil, err
	}

	optionType := terms.OptionType
	if optionType == "" {
		optionType = OptionTypeCall
	}
	if optionType != OptionTypeCall && optionType != OptionTypePut {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOptionType, terms.OptionType)
	}

	expiryType := terms.ExpiryType
	if expiryType == "" {
		expiryType = ExpiryTypeEuropean
	}
	if expiryType != ExpiryTypeEuropean && expiryType != ExpiryTypeAmerican {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExpiryType, terms.ExpiryType)
	}

	derivativeType := terms.DerivativeType
	if derivativeType == "" {
		derivativeType = DerivativeVanillaOption
	}

	if !terms.Strike.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStrike, terms.Strike)
	}

	return &VanillaOption{
		optionType:     optionType,
		expiryType:     expiryType,
		strike:         terms.Strike,
		expiryDate:     expiry,
		derivativeType: derivativeType,
		underlying:     underlying,
	}, nil
}

// NewEquityOption 创建股票期权合约
func NewEquityOption(terms ContractTerms) (*VanillaOption, error) {
	return newVanillaOption(UnderlyingStock, terms)
}

// NewFuturesOption 创建期货期权合约
func NewFuturesOption(terms ContractTerms) (*VanillaOption, error) {
	return newVanillaOption(UnderlyingFutures, terms)
}

// NewFXOption 创建外汇期权合约
func NewFXOption(terms ContractTerms) (*VanillaOption, error) {
	return newVanillaOption(UnderlyingFX, terms)
}

// NewCommodityOption 创建商品期权合约
func NewCommodityOption(terms ContractTerms) (*VanillaOption, error) {
	return newVanillaOption(UnderlyingCommodity, terms)
}

func (o *VanillaOption) OptionType() OptionType         { return o.optionType }
func (o *VanillaOption) ExpiryType() ExpiryType         { return o.expiryType }
func (o *VanillaOption) Strike() decimal.Decimal        { return o.strike }
func (o *VanillaOption) ExpiryDate() time.Time          { return o.expiryDate }
func (o *VanillaOption) DerivativeType() DerivativeType { return o.derivativeType }
func (o *VanillaOption) Underlying() Underlying         { return o.underlying }

// Direction 看涨为 +1，看跌为 -1
func (o *VanillaOption) Direction() int {
	if o.optionType == OptionTypePut {
		return -1
	}
	return 1
}
