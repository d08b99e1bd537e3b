package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PricingResult 定价结果实体
type PricingResult struct {
	ID            uint            `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Symbol        string          `json:"symbol"`
	Underlying    Underlying      `json:"underlying"`
	OptionType    OptionType      `json:"option_type"`
	ExpiryType    ExpiryType      `json:"expiry_type"`
	Strike        decimal.Decimal `json:"strike"`
	ExpiryDate    time.Time       `json:"expiry_date"`
	Model         string          `json:"model"`
	Premium       decimal.Decimal `json:"premium"`
	SpotOrForward decimal.Decimal `json:"spot_or_forward"`
	Delta         decimal.Decimal `json:"delta"`
	Gamma         decimal.Decimal `json:"gamma"`
	Theta         decimal.Decimal `json:"theta"`
	Vega          decimal.Decimal `json:"vega"`
	Rho           decimal.Decimal `json:"rho"`
	CalculatedAt  int64           `json:"calculated_at"`
}

// UnderlyingQuote 标的行情读模型，由行情事件投影而来。
type UnderlyingQuote struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Symbol    string          `json:"symbol"`
	Bid       decimal.Decimal `json:"bid"`
	Ask       decimal.Decimal `json:"ask"`
	Last      decimal.Decimal `json:"last"`
	Timestamp int64           `json:"timestamp"`
}

// PricingResultRepository 定价结果仓储
type PricingResultRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	SavePricingResult(ctx context.Context, res *PricingResult) error
	GetLatestPricingResult(ctx context.Context, symbol string) (*PricingResult, error)
	GetPricingResultHistory(ctx context.Context, symbol string, limit int) ([]*PricingResult, error)
}

// QuoteRepository 标的行情仓储
type QuoteRepository interface {
	SaveQuote(ctx context.Context, quote *UnderlyingQuote) error
	GetLatestQuote(ctx context.Context, symbol string) (*UnderlyingQuote, error)
}
